package models

import (
	"time"
)

// UserFollow 有向关注边，关注不代表互相关注
// 唯一键: follower_id + followee_id，follower != followee 由写入路径保证
type UserFollow struct {
	ID         uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	FollowerID int64     `gorm:"column:follower_id;not null;uniqueIndex:uk_follower_followee,priority:1" json:"follower_id"` // 关注人
	FolloweeID int64     `gorm:"column:followee_id;not null;uniqueIndex:uk_follower_followee,priority:2;index:idx_followee" json:"followee_id"` // 被关注人
	CreatedAt  time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (UserFollow) TableName() string {
	return "user_follows"
}
