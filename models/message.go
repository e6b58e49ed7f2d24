package models

import "time"

// Message 私信，只追加；is_read 在对方拉取会话消息时置为已读
type Message struct {
	ID             int64     `gorm:"column:id;primary_key" json:"id"` // Snowflake
	ConversationID int64     `gorm:"column:conversation_id;not null;index:idx_conv_id" json:"conversation_id"`
	SenderID       int64     `gorm:"column:sender_id;not null" json:"sender_id"`
	Content        string    `gorm:"column:content;type:text;not null" json:"content"`
	IsRead         bool      `gorm:"column:is_read;not null" json:"is_read"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}
