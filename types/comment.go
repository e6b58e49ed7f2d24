package types

import "time"

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type CommentItem struct {
	ID        uint64      `json:"id"`
	PinID     int64       `json:"pin_id"`
	Content   string      `json:"content"`
	User      UserSummary `json:"user"`
	CreatedAt time.Time   `json:"created_at"`
}
