package dao

import (
	"Pinboard/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type BoardDAO struct {
	Repo[models.Board]
}

type BoardPinDAO struct {
	Repo[models.BoardPin]
}

func NewBoardDAO(db *gorm.DB) *BoardDAO {
	return &BoardDAO{
		Repo: NewRepo[models.Board](db),
	}
}

func NewBoardPinDAO(db *gorm.DB) *BoardPinDAO {
	return &BoardPinDAO{
		Repo: NewRepo[models.BoardPin](db),
	}
}

// ListByUser includePrivate=false 时过滤私有画板（非本人视角）
func (d *BoardDAO) ListByUser(ctx context.Context, userID int64, includePrivate bool) ([]*models.Board, error) {
	query := d.Db.WithContext(ctx).Where("user_id = ?", userID)
	if !includePrivate {
		query = query.Where("is_private = ?", false)
	}
	var boards []*models.Board
	err := query.Order("created_at DESC").Find(&boards).Error
	return boards, err
}

// CountByUser 用户的画板数（仅公开，主页统计用）
func (d *BoardDAO) CountByUser(ctx context.Context, userID int64) (int64, error) {
	return d.Repo.QueryCount(ctx, "user_id = ? AND is_private = ?", userID, false)
}

// AddPin 同一画板内重复收集同一 Pin 返回 gorm.ErrDuplicatedKey
func (d *BoardPinDAO) AddPin(ctx context.Context, boardID, pinID int64) error {
	row := models.BoardPin{
		BoardID:   boardID,
		PinID:     pinID,
		CreatedAt: time.Now(),
	}
	return d.Db.WithContext(ctx).Create(&row).Error
}

// RemovePin 返回 true 表示确实移除了
func (d *BoardPinDAO) RemovePin(ctx context.Context, boardID, pinID int64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("board_id = ? AND pin_id = ?", boardID, pinID).
		Delete(&models.BoardPin{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListPinIDs 画板里的 Pin，按加入时间倒序
func (d *BoardPinDAO) ListPinIDs(ctx context.Context, boardID int64) ([]int64, error) {
	var ids []int64
	err := d.Db.WithContext(ctx).
		Model(&models.BoardPin{}).
		Where("board_id = ?", boardID).
		Order("created_at DESC").
		Pluck("pin_id", &ids).Error
	return ids, err
}

// BatchCountByBoards 批量取画板的 Pin 数
func (d *BoardPinDAO) BatchCountByBoards(ctx context.Context, boardIDs []int64) (map[int64]int64, error) {
	result := make(map[int64]int64, len(boardIDs))
	if len(boardIDs) == 0 {
		return result, nil
	}

	type row struct {
		BoardID int64 `gorm:"column:board_id"`
		Cnt     int64 `gorm:"column:cnt"`
	}
	var rows []row
	err := d.Db.WithContext(ctx).
		Model(&models.BoardPin{}).
		Select("board_id, COUNT(*) AS cnt").
		Where("board_id IN ?", boardIDs).
		Group("board_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		result[r.BoardID] = r.Cnt
	}
	return result, nil
}

// LatestPinByBoards 每个画板最新加入的 Pin（封面用）
func (d *BoardPinDAO) LatestPinByBoards(ctx context.Context, boardIDs []int64) (map[int64]int64, error) {
	result := make(map[int64]int64, len(boardIDs))
	if len(boardIDs) == 0 {
		return result, nil
	}

	var rows []models.BoardPin
	err := d.Db.WithContext(ctx).
		Where("board_id IN ?", boardIDs).
		Where("id IN (?)", d.Db.Model(&models.BoardPin{}).
			Select("MAX(id)").
			Where("board_id IN ?", boardIDs).
			Group("board_id")).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		result[r.BoardID] = r.PinID
	}
	return result, nil
}
