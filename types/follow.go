package types

import "time"

// ToggleFollowResponse 关注开关结果
type ToggleFollowResponse struct {
	Following bool `json:"following"`
}

type FollowCounts struct {
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
}

// FollowUserItem 关注/粉丝列表项
type FollowUserItem struct {
	UserSummary
	FollowedAt time.Time `json:"followed_at"`
}

