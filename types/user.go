package types

import "time"

// DefaultTab 个人主页默认页签
const (
	DefaultTabPins   = "pins"
	DefaultTabBoards = "boards"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest 指针字段区分"未提交"和"清空"
type UpdateProfileRequest struct {
	Avatar          *string `json:"avatar"`
	Bio             *string `json:"bio"`
	DefaultTab      *string `json:"default_tab"`
	NotifyOnFollow  *bool   `json:"notify_on_follow"`
	NotifyOnLike    *bool   `json:"notify_on_like"`
	NotifyOnComment *bool   `json:"notify_on_comment"`
}

// UserSummary 嵌在列表/详情里的用户摘要
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

type AuthResponse struct {
	User  *UserInfo `json:"user"`
	Token string    `json:"token"`
}

type UserInfo struct {
	ID              int64     `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	Avatar          string    `json:"avatar"`
	Bio             string    `json:"bio"`
	DefaultTab      string    `json:"default_tab"`
	NotifyOnFollow  bool      `json:"notify_on_follow"`
	NotifyOnLike    bool      `json:"notify_on_like"`
	NotifyOnComment bool      `json:"notify_on_comment"`
	CreatedAt       time.Time `json:"created_at"`
}

// ProfileResponse 他人可见的主页信息
type ProfileResponse struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Avatar         string    `json:"avatar"`
	Bio            string    `json:"bio"`
	DefaultTab     string    `json:"default_tab"`
	FollowerCount  int64     `json:"follower_count"`
	FollowingCount int64     `json:"following_count"`
	PinCount       int64     `json:"pin_count"`
	BoardCount     int64     `json:"board_count"`
	IsFollowing    bool      `json:"is_following"` // 当前登录用户是否已关注
	CreatedAt      time.Time `json:"created_at"`
}
