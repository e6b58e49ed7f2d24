package dao

import (
	"Pinboard/models"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserFollowDAO struct {
	Repo[models.UserFollow]
}

func NewUserFollowDAO(db *gorm.DB) *UserFollowDAO {
	return &UserFollowDAO{
		Repo: NewRepo[models.UserFollow](db),
	}
}

func (d *UserFollowDAO) WithTx(tx *gorm.DB) *UserFollowDAO {
	nd := *d
	nd.Db = tx
	return &nd
}

// InsertIgnore 依赖唯一索引 uk_follower_followee 做并发兜底
// 返回 true 表示本次真的插入了新关注边，false 表示边已存在
func (d *UserFollowDAO) InsertIgnore(ctx context.Context, followerID, followeeID int64) (bool, error) {
	follow := models.UserFollow{
		FollowerID: followerID,
		FolloweeID: followeeID,
		CreatedAt:  time.Now(),
	}
	res := d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&follow)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Remove 删除关注边，返回 true 表示确实删除了
func (d *UserFollowDAO) Remove(ctx context.Context, followerID, followeeID int64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.UserFollow{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// IsFollowing 检查是否已关注
func (d *UserFollowDAO) IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	return d.Repo.IsExist(ctx, "follower_id = ? AND followee_id = ?", followerID, followeeID)
}

// GetFollowerCount 获取粉丝数，读时刻的最新值
func (d *UserFollowDAO) GetFollowerCount(ctx context.Context, userID int64) (int64, error) {
	return d.Repo.QueryCount(ctx, "followee_id = ?", userID)
}

// GetFollowingCount 获取关注数
func (d *UserFollowDAO) GetFollowingCount(ctx context.Context, userID int64) (int64, error) {
	return d.Repo.QueryCount(ctx, "follower_id = ?", userID)
}

// ListFollowers 粉丝列表（按关注时间倒序）
func (d *UserFollowDAO) ListFollowers(ctx context.Context, userID int64, limit, offset int) ([]*models.UserFollow, error) {
	var follows []*models.UserFollow
	err := d.Db.WithContext(ctx).
		Where("followee_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&follows).Error
	return follows, err
}

// ListFollowing 关注列表（按关注时间倒序）
func (d *UserFollowDAO) ListFollowing(ctx context.Context, userID int64, limit, offset int) ([]*models.UserFollow, error) {
	var follows []*models.UserFollow
	err := d.Db.WithContext(ctx).
		Where("follower_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&follows).Error
	return follows, err
}

// ListFolloweeIDs 关注的人的 ID 集合（动态流用）
func (d *UserFollowDAO) ListFolloweeIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := d.Db.WithContext(ctx).
		Model(&models.UserFollow{}).
		Where("follower_id = ?", userID).
		Pluck("followee_id", &ids).Error
	return ids, err
}
