package models

import "time"

// Comment 评论只追加不修改，展示时按创建时间正序
type Comment struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	PinID     int64     `gorm:"column:pin_id;not null;index:idx_pin_id" json:"pin_id"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_comments_user_id" json:"user_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Comment) TableName() string { return "comments" }
