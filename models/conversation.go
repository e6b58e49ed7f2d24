package models

import "time"

// Conversation 双人会话
// pair_key = "小ID_大ID"，唯一索引保证同一对用户最多一个会话，
// 并发 initiate 靠它兜底而不是先查后插
type Conversation struct {
	ID            int64     `gorm:"column:id;primary_key" json:"id"`
	PairKey       string    `gorm:"column:pair_key;type:varchar(64);not null;uniqueIndex:uk_pair_key" json:"-"`
	LastMessageAt time.Time `gorm:"column:last_message_at;index:idx_last_message_at" json:"last_message_at"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Conversation) TableName() string { return "conversations" }

// ConversationParticipant 会话成员，双人会话固定两行
type ConversationParticipant struct {
	ID             uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	ConversationID int64     `gorm:"column:conversation_id;not null;uniqueIndex:uk_conv_user,priority:1" json:"conversation_id"`
	UserID         int64     `gorm:"column:user_id;not null;uniqueIndex:uk_conv_user,priority:2;index:idx_conversation_members_user_id" json:"user_id"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

func (ConversationParticipant) TableName() string { return "conversation_participants" }
