package types

import "time"

type CreateBoardRequest struct {
	Title       string `json:"title" binding:"required,max=100"`
	Description string `json:"description" binding:"max=255"`
	IsPrivate   bool   `json:"is_private"`
}

type BoardItem struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsPrivate   bool      `json:"is_private"`
	PinCount    int64     `json:"pin_count"`
	CoverURL    string    `json:"cover_url"` // 最新加入的 Pin 的图
	CreatedAt   time.Time `json:"created_at"`
}

// BoardDetail 画板详情（含 Pin 列表）
type BoardDetail struct {
	BoardItem
	User UserSummary `json:"user"`
	Pins []*PinItem  `json:"pins"`
}

type AddBoardPinRequest struct {
	PinID int64 `json:"pin_id" binding:"required"`
}

type CreateBoardResponse struct {
	BoardID int64 `json:"board_id"`
}
