package models

import "time"

// Tag 标签名大小写不敏感唯一：入库前统一 trim + 转小写
type Tag struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(50);not null;uniqueIndex:uk_tag_name" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Tag) TableName() string { return "tags" }

// PinTag 关联表
// 唯一键: pin_id + tag_id
type PinTag struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	PinID     int64     `gorm:"column:pin_id;not null;uniqueIndex:uk_pin_tag,priority:1" json:"pin_id"`
	TagID     uint64    `gorm:"column:tag_id;not null;uniqueIndex:uk_pin_tag,priority:2;index:idx_tag_id" json:"tag_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (PinTag) TableName() string { return "pin_tags" }
