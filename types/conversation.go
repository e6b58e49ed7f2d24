package types

import "time"

type InitiateConversationRequest struct {
	RecipientID int64 `json:"recipient_id" binding:"required"`
}

type InitiateConversationResponse struct {
	ConversationID int64 `json:"conversation_id"`
}

// ConversationItem 会话列表项：展示对端用户 + 最近一条消息
type ConversationItem struct {
	ConversationID int64       `json:"conversation_id"`
	Peer           UserSummary `json:"peer"`
	LastMessage    string      `json:"last_message"`
	LastMessageAt  time.Time   `json:"last_message_at"`
	UnreadCount    int64       `json:"unread_count"`
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

type MessageItem struct {
	ID        int64     `json:"id"`
	SenderID  int64     `json:"sender_id"`
	Content   string    `json:"content"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
