package types

import "time"

// Pagination 分页常量
const (
	DefaultPage     int = 1  // 默认页码
	DefaultPageSize int = 20 // 默认每页数量
	MaxPageSize     int = 50
)

// MediaMeta 上传时探测到的图片信息
type MediaMeta struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}

// ListPinsRequest 首页/分类流
type ListPinsRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Category string `form:"category"` // 标签名，空表示全部
}

// PageRequest 通用分页参数
type PageRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

type Pagination struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
	HasMore  bool  `json:"has_more"`
}

// PinItem 列表项
type PinItem struct {
	ID           int64       `json:"id"`
	Title        string      `json:"title"`
	ImageURL     string      `json:"image_url"`
	Media        *MediaMeta  `json:"media,omitempty"`
	User         UserSummary `json:"user"`
	LikeCount    int64       `json:"like_count"`
	CommentCount int64       `json:"comment_count"`
	CreatedAt    time.Time   `json:"created_at"`
}

type PinListResponse struct {
	Data       []*PinItem `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type CreatePinResponse struct {
	PinID int64 `json:"pin_id"`
}

// CreatePinRequest 表单字段，图片文件另取
type CreatePinRequest struct {
	Title       string   `form:"title" binding:"required,max=100"`
	Description string   `form:"description"`
	Link        string   `form:"link" binding:"max=255"`
	Tags        []string `form:"-"` // 从 tags 表单值按逗号拆出
}

// MaxTagsPerPin 单个 Pin 最多挂的标签数
const MaxTagsPerPin = 10

// PinDetail 详情页聚合
type PinDetail struct {
	ID           int64          `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	ImageURL     string         `json:"image_url"`
	Link         string         `json:"link"`
	Media        *MediaMeta     `json:"media,omitempty"`
	ShareCode    string         `json:"share_code"`
	User         UserSummary    `json:"user"`
	Tags         []string       `json:"tags"`
	LikeCount    int64          `json:"like_count"`
	CommentCount int64          `json:"comment_count"`
	IsLiked      bool           `json:"is_liked"` // 仅登录用户有意义
	Comments     []*CommentItem `json:"comments"`
	CreatedAt    time.Time      `json:"created_at"`
}

// ToggleLikeResponse liked 与 like_count 在同一事务里计算
type ToggleLikeResponse struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"new_like_count"`
}

type SearchPinsRequest struct {
	Query string `form:"query" binding:"required"`
}
