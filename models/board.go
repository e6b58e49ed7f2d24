package models

import "time"

type Board struct {
	ID          int64     `gorm:"column:id;primary_key" json:"id"`
	UserID      int64     `gorm:"column:user_id;not null;index:idx_boards_user_id" json:"user_id"`
	Title       string    `gorm:"column:title;type:varchar(100);not null" json:"title"`
	Description string    `gorm:"column:description;type:varchar(255);not null;default:''" json:"description"`
	IsPrivate   bool      `gorm:"column:is_private;not null" json:"is_private"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Board) TableName() string { return "boards" }

// BoardPin 画板与 Pin 的关联
// 唯一键: board_id + pin_id，同一个 Pin 在一个画板里最多出现一次
type BoardPin struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	BoardID   int64     `gorm:"column:board_id;not null;uniqueIndex:uk_board_pin,priority:1" json:"board_id"`
	PinID     int64     `gorm:"column:pin_id;not null;uniqueIndex:uk_board_pin,priority:2" json:"pin_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (BoardPin) TableName() string { return "board_pins" }
