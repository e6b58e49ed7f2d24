package dao

import (
	"Pinboard/models"
	"Pinboard/types"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// FindByEmail 邮箱查询
func (u *Users) FindByEmail(ctx context.Context, email string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "email = ?", email)
}

// IsEmailExist 判断邮箱是否已注册
func (u *Users) IsEmailExist(ctx context.Context, email string) bool {
	exist, _ := u.Repo.IsExist(ctx, "email = ?", email)
	return exist
}

// IsUsernameExist 判断用户名是否已占用
func (u *Users) IsUsernameExist(ctx context.Context, username string) bool {
	exist, _ := u.Repo.IsExist(ctx, "username = ?", username)
	return exist
}

func (u *Users) UpdateById(ctx context.Context, id int64, data map[string]any) error {
	if id <= 0 {
		return gorm.ErrRecordNotFound
	}
	if len(data) == 0 {
		return nil
	}
	err := u.Db.WithContext(ctx).
		Model(&models.Users{}).
		Where("id = ?", id).
		Updates(data).Error
	if err != nil {
		return fmt.Errorf("dao.Users.UpdateById error: %w", err)
	}
	return nil
}

// BatchGetSummary 批量取用户摘要，查不到的 ID 不出现在结果里
func (u *Users) BatchGetSummary(ctx context.Context, ids []int64) (map[int64]types.UserSummary, error) {
	result := make(map[int64]types.UserSummary, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var users []models.Users
	err := u.Db.WithContext(ctx).
		Select("id, username, avatar").
		Where("id IN ?", ids).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		result[user.ID] = types.UserSummary{
			ID:       user.ID,
			Username: user.Username,
			Avatar:   user.Avatar,
		}
	}
	return result, nil
}
