package dao

import (
	"Pinboard/models"
	"context"

	"gorm.io/gorm"
)

type PinDAO struct {
	Repo[models.Pin]
}

func NewPinDAO(db *gorm.DB) *PinDAO {
	return &PinDAO{
		Repo: NewRepo[models.Pin](db),
	}
}

func (d *PinDAO) WithTx(tx *gorm.DB) *PinDAO {
	nd := *d
	nd.Db = tx
	return &nd
}

// ListByPage 按创建时间倒序分页；tagID > 0 时只取带该标签的 Pin
func (d *PinDAO) ListByPage(ctx context.Context, tagID uint64, limit, offset int) ([]*models.Pin, int64, error) {
	var (
		pins  []*models.Pin
		total int64
	)

	query := d.Db.WithContext(ctx).Model(&models.Pin{})
	if tagID > 0 {
		query = query.
			Joins("INNER JOIN pin_tags ON pin_tags.pin_id = pins.id").
			Where("pin_tags.tag_id = ?", tagID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("pins.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&pins).Error
	return pins, total, err
}

// ListByUsers 动态流：关注的人的 Pin，按创建时间倒序
func (d *PinDAO) ListByUsers(ctx context.Context, userIDs []int64, limit, offset int) ([]*models.Pin, int64, error) {
	var (
		pins  []*models.Pin
		total int64
	)
	if len(userIDs) == 0 {
		return pins, 0, nil
	}

	query := d.Db.WithContext(ctx).Model(&models.Pin{}).Where("user_id IN ?", userIDs)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&pins).Error
	return pins, total, err
}

// SearchByText 标题/描述包含关键词（大小写不敏感），倒序
func (d *PinDAO) SearchByText(ctx context.Context, keyword string, limit int) ([]*models.Pin, error) {
	var pins []*models.Pin
	pattern := "%" + keyword + "%"
	err := d.Db.WithContext(ctx).
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&pins).Error
	return pins, err
}

// ListByIDs 按 ID 集合查询，倒序
func (d *PinDAO) ListByIDs(ctx context.Context, ids []int64) ([]*models.Pin, error) {
	var pins []*models.Pin
	if len(ids) == 0 {
		return pins, nil
	}
	err := d.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("created_at DESC").
		Find(&pins).Error
	return pins, err
}

// CountByUser 用户发布的 Pin 数
func (d *PinDAO) CountByUser(ctx context.Context, userID int64) (int64, error) {
	return d.Repo.QueryCount(ctx, "user_id = ?", userID)
}
