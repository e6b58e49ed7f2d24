package types

import "time"

// 通知类型
const (
	NotificationTypeFollow  = "follow"
	NotificationTypeLike    = "like"
	NotificationTypeComment = "comment"
)

// NotificationItem 列表项，like/comment 带目标 Pin 的缩略图
type NotificationItem struct {
	ID        uint64      `json:"id"`
	Type      string      `json:"type"`
	Actor     UserSummary `json:"actor"`
	PinID     *int64      `json:"pin_id,omitempty"`
	PinThumb  string      `json:"pin_thumb,omitempty"`
	IsRead    bool        `json:"is_read"`
	CreatedAt time.Time   `json:"created_at"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
