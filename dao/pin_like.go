package dao

import (
	"Pinboard/models"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PinLikeDAO struct {
	Repo[models.PinLike]
}

func NewPinLikeDAO(db *gorm.DB) *PinLikeDAO {
	return &PinLikeDAO{
		Repo: NewRepo[models.PinLike](db),
	}
}

func (d *PinLikeDAO) WithTx(tx *gorm.DB) *PinLikeDAO {
	nd := *d
	nd.Db = tx
	return &nd
}

// InsertIgnore 依赖唯一索引 uk_pin_user，并发重复点赞只会成功一次
// 返回 true 表示本次真的插入了
func (d *PinLikeDAO) InsertIgnore(ctx context.Context, pinID, userID int64) (bool, error) {
	like := models.PinLike{
		PinID:     pinID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	res := d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Remove 取消点赞，返回 true 表示确实删除了
func (d *PinLikeDAO) Remove(ctx context.Context, pinID, userID int64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("pin_id = ? AND user_id = ?", pinID, userID).
		Delete(&models.PinLike{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// IsLiked 是否已点赞
func (d *PinLikeDAO) IsLiked(ctx context.Context, pinID, userID int64) (bool, error) {
	return d.Repo.IsExist(ctx, "pin_id = ? AND user_id = ?", pinID, userID)
}

// CountByPin 点赞数从行里数出来，不落冗余计数列
func (d *PinLikeDAO) CountByPin(ctx context.Context, pinID int64) (int64, error) {
	return d.Repo.QueryCount(ctx, "pin_id = ?", pinID)
}

// BatchCountByPins 批量取多个 Pin 的点赞数
func (d *PinLikeDAO) BatchCountByPins(ctx context.Context, pinIDs []int64) (map[int64]int64, error) {
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
		Model(&models.PinLike{}).
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
