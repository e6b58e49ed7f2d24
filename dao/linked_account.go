package dao

import (
	"Pinboard/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type LinkedAccountDAO struct {
	Repo[models.LinkedAccount]
}

func NewLinkedAccountDAO(db *gorm.DB) *LinkedAccountDAO {
	return &LinkedAccountDAO{
		Repo: NewRepo[models.LinkedAccount](db),
	}
}

// Link 重复关联返回 gorm.ErrDuplicatedKey（TranslateError 统一翻译）
func (d *LinkedAccountDAO) Link(ctx context.Context, managerID, linkedID int64) error {
	link := models.LinkedAccount{
		ManagerID: managerID,
		LinkedID:  linkedID,
		CreatedAt: time.Now(),
	}
	return d.Db.WithContext(ctx).Create(&link).Error
}

// Unlink 返回 true 表示确实删除了关联
func (d *LinkedAccountDAO) Unlink(ctx context.Context, managerID, linkedID int64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("manager_id = ? AND linked_id = ?", managerID, linkedID).
		Delete(&models.LinkedAccount{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (d *LinkedAccountDAO) ListByManager(ctx context.Context, managerID int64) ([]*models.LinkedAccount, error) {
	return d.Repo.FindAllByWhere(ctx, "manager_id = ?", managerID)
}
