package dao

import (
	"Pinboard/models"
	"context"

	"gorm.io/gorm"
)

type MessageDAO struct {
	Repo[models.Message]
}

func NewMessageDAO(db *gorm.DB) *MessageDAO {
	return &MessageDAO{
		Repo: NewRepo[models.Message](db),
	}
}

func (d *MessageDAO) WithTx(tx *gorm.DB) *MessageDAO {
	nd := *d
	nd.Db = tx
	return &nd
}

// ListByConversation 会话内消息按创建时间正序
func (d *MessageDAO) ListByConversation(ctx context.Context, conversationID int64) ([]*models.Message, error) {
	var msgs []*models.Message
	err := d.Db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}

// LatestByConversations 每个会话的最近一条消息（会话列表摘要用）
func (d *MessageDAO) LatestByConversations(ctx context.Context, conversationIDs []int64) (map[int64]*models.Message, error) {
	result := make(map[int64]*models.Message, len(conversationIDs))
	if len(conversationIDs) == 0 {
		return result, nil
	}

	var msgs []*models.Message
	err := d.Db.WithContext(ctx).
		Where("conversation_id IN ?", conversationIDs).
		Where("id IN (?)", d.Db.Model(&models.Message{}).
			Select("MAX(id)").
			Where("conversation_id IN ?", conversationIDs).
			Group("conversation_id")).
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	for _, m := range msgs {
		result[m.ConversationID] = m
	}
	return result, nil
}

// MarkReadByPeer 把会话里非本人发送的未读消息置为已读
func (d *MessageDAO) MarkReadByPeer(ctx context.Context, conversationID, readerID int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Message{}).
		Where("conversation_id = ? AND sender_id != ? AND is_read = ?", conversationID, readerID, false).
		Update("is_read", true).Error
}

// CountUnread 会话里对方发来且未读的消息数
func (d *MessageDAO) CountUnread(ctx context.Context, conversationID, userID int64) (int64, error) {
	return d.Repo.QueryCount(ctx, "conversation_id = ? AND sender_id != ? AND is_read = ?", conversationID, userID, false)
}

// BatchCountUnread 批量算未读（会话列表角标）
func (d *MessageDAO) BatchCountUnread(ctx context.Context, conversationIDs []int64, userID int64) (map[int64]int64, error) {
	result := make(map[int64]int64, len(conversationIDs))
	if len(conversationIDs) == 0 {
		return result, nil
	}

	type row struct {
		ConversationID int64 `gorm:"column:conversation_id"`
		Cnt            int64 `gorm:"column:cnt"`
	}
	var rows []row
	err := d.Db.WithContext(ctx).
		Model(&models.Message{}).
		Select("conversation_id, COUNT(*) AS cnt").
		Where("conversation_id IN ? AND sender_id != ? AND is_read = ?", conversationIDs, userID, false).
		Group("conversation_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		result[r.ConversationID] = r.Cnt
	}
	return result, nil
}
