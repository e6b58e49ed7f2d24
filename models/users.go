package models

import (
	"time"
)

type Users struct {
	ID       int64  `gorm:"column:id;primary_key" json:"id"`
	Username string `gorm:"column:username;type:varchar(50);not null;uniqueIndex:uk_username" json:"username"`
	Email    string `gorm:"column:email;type:varchar(100);not null;uniqueIndex:uk_email" json:"email"`
	Password string `gorm:"column:password;type:varchar(100);not null" json:"-"`
	Avatar   string `gorm:"column:avatar;type:varchar(255);not null;default:''" json:"avatar"`
	Bio      string `gorm:"column:bio;type:varchar(255);not null;default:''" json:"bio"`

	// 个人偏好：默认页签 + 各类通知开关（注册时置为默认值，不依赖列默认值）
	DefaultTab      string `gorm:"column:default_tab;type:varchar(20);not null;default:'pins'" json:"default_tab"`
	NotifyOnFollow  bool   `gorm:"column:notify_on_follow;not null" json:"notify_on_follow"`
	NotifyOnLike    bool   `gorm:"column:notify_on_like;not null" json:"notify_on_like"`
	NotifyOnComment bool   `gorm:"column:notify_on_comment;not null" json:"notify_on_comment"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}
