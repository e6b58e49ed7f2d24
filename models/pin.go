package models

import (
	"time"

	"gorm.io/datatypes"
)

type Pin struct {
	ID          int64  `gorm:"column:id;primary_key" json:"id"`
	UserID      int64  `gorm:"column:user_id;not null;index:idx_pins_user_id" json:"user_id"` // 作者，创建后不可变更
	Title       string `gorm:"column:title;type:varchar(100);not null" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description"`
	ImageKey    string `gorm:"column:image_key;type:varchar(255);not null" json:"image_key"` // OSS 对象 key
	Link        string `gorm:"column:link;type:varchar(255);not null;default:''" json:"link"`

	// MediaData 上传时探测到的图片信息 {width, height, format}
	MediaData datatypes.JSON `gorm:"column:media_data" json:"media_data"`

	CreatedAt time.Time `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Pin) TableName() string {
	return "pins"
}
