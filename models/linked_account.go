package models

import "time"

// LinkedAccount 账号关联，纯声明性，不构成任何权限授予
// 与关注不同：重复关联是冲突而不是开关
type LinkedAccount struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	ManagerID int64     `gorm:"column:manager_id;not null;uniqueIndex:uk_manager_linked,priority:1" json:"manager_id"`
	LinkedID  int64     `gorm:"column:linked_id;not null;uniqueIndex:uk_manager_linked,priority:2" json:"linked_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (LinkedAccount) TableName() string { return "linked_accounts" }
