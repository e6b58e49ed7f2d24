package dao

import (
	"Pinboard/models"
	"context"

	"gorm.io/gorm"
)

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{
		Repo: NewRepo[models.Comment](db),
	}
}

func (d *CommentDAO) WithTx(tx *gorm.DB) *CommentDAO {
	nd := *d
	nd.Db = tx
	return &nd
}

// ListByPin 评论线程按创建时间正序
func (d *CommentDAO) ListByPin(ctx context.Context, pinID int64) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("pin_id = ?", pinID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// CountByPin 评论数从行里数出来
func (d *CommentDAO) CountByPin(ctx context.Context, pinID int64) (int64, error) {
	return d.Repo.QueryCount(ctx, "pin_id = ?", pinID)
}

// BatchCountByPins 批量取多个 Pin 的评论数
func (d *CommentDAO) BatchCountByPins(ctx context.Context, pinIDs []int64) (map[int64]int64, error) {
	result := make(map[int64]int64, len(pinIDs))
	if len(pinIDs) == 0 {
		return result, nil
	}

	type row struct {
		PinID int64 `gorm:"column:pin_id"`
		Cnt   int64 `gorm:"column:cnt"`
	}
	var rows []row
	err := d.Db.WithContext(ctx).
		Model(&models.Comment{}).
		Select("pin_id, COUNT(*) AS cnt").
		Where("pin_id IN ?", pinIDs).
		Group("pin_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		result[r.PinID] = r.Cnt
	}
	return result, nil
}
