package models

import "time"

// Notification 通知记录，由关注/点赞/评论写入时同事务扇出
// 创建后除 is_read 外不再变更
type Notification struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_user_created,priority:1" json:"user_id"` // 接收人
	ActorID   int64     `gorm:"column:actor_id;not null" json:"actor_id"`                                 // 触发人
	Type      string    `gorm:"column:type;type:varchar(20);not null" json:"type"`                        // follow/like/comment
	PinID     *int64    `gorm:"column:pin_id" json:"pin_id,omitempty"`                                    // like/comment 关联的 Pin
	IsRead    bool      `gorm:"column:is_read;not null" json:"is_read"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_user_created,priority:2" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
