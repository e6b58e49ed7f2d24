package dao

import (
	"Pinboard/models"
	"context"

	"gorm.io/gorm"
)

type NotificationDAO struct {
	Repo[models.Notification]
}

func NewNotificationDAO(db *gorm.DB) *NotificationDAO {
	return &NotificationDAO{
		Repo: NewRepo[models.Notification](db),
	}
}

func (d *NotificationDAO) WithTx(tx *gorm.DB) *NotificationDAO {
	nd := *d
	nd.Db = tx
	return &nd
}

// ListByUser 按时间倒序取用户的通知
func (d *NotificationDAO) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*models.Notification, error) {
	var list []*models.Notification
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&list).Error
	return list, err
}

func (d *NotificationDAO) MarkAllRead(ctx context.Context, userID int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

func (d *NotificationDAO) CountUnread(ctx context.Context, userID int64) (int64, error) {
	return d.Repo.QueryCount(ctx, "user_id = ? AND is_read = ?", userID, false)
}
