package models

import "time"

// PinLike 点赞记录
// 唯一键: pin_id + user_id，行存在即已点赞，取消点赞直接删行
type PinLike struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	PinID     int64     `gorm:"column:pin_id;not null;uniqueIndex:uk_pin_user,priority:1" json:"pin_id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_pin_user,priority:2" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (PinLike) TableName() string { return "pin_likes" }
