package dao

import (
	"Pinboard/models"
	"Pinboard/pkg/snowflake"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConversationDAO struct {
	Repo[models.Conversation]
}

type ParticipantDAO struct {
	Repo[models.ConversationParticipant]
}

func NewConversationDAO(db *gorm.DB) *ConversationDAO {
	return &ConversationDAO{
		Repo: NewRepo[models.Conversation](db),
	}
}

func NewParticipantDAO(db *gorm.DB) *ParticipantDAO {
	return &ParticipantDAO{
		Repo: NewRepo[models.ConversationParticipant](db),
	}
}

func (d *ConversationDAO) WithTx(tx *gorm.DB) *ConversationDAO {
	nd := *d
	nd.Db = tx
	return &nd
}

// PairKey 无序用户对的规范键: "小ID_大ID"
func PairKey(a, b int64) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d_%d", a, b)
}

// EnsurePair 幂等 find-or-create
// 两个并发 initiate 靠 uk_pair_key 兜底：先 OnConflict DoNothing 插，再按 pair_key 回查，
// 无论谁插成功，双方拿到的都是同一个会话
func (d *ConversationDAO) EnsurePair(ctx context.Context, a, b int64) (*models.Conversation, error) {
	now := time.Now()
	conv := models.Conversation{
		ID:            snowflake.GenID(),
		PairKey:       PairKey(a, b),
		LastMessageAt: now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	res := d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&conv)
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected > 0 {
		// 新会话，补两条成员记录（同样按唯一键幂等）
		rows := []models.ConversationParticipant{
			{ConversationID: conv.ID, UserID: a, CreatedAt: now},
			{ConversationID: conv.ID, UserID: b, CreatedAt: now},
		}
		if err := d.Db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&rows).Error; err != nil {
			return nil, err
		}
		return &conv, nil
	}

	// 冲突说明会话已存在，回查
	var existing models.Conversation
	err := d.Db.WithContext(ctx).
		Where("pair_key = ?", conv.PairKey).
		First(&existing).Error
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

// ListByUser 用户参与的会话，按最近活跃倒序
func (d *ConversationDAO) ListByUser(ctx context.Context, userID int64) ([]*models.Conversation, error) {
	var convs []*models.Conversation
	err := d.Db.WithContext(ctx).
		Joins("INNER JOIN conversation_participants cp ON cp.conversation_id = conversations.id").
		Where("cp.user_id = ?", userID).
		Order("conversations.last_message_at DESC").
		Find(&convs).Error
	return convs, err
}

// BumpLastMessage 每条新消息都要推会话的活跃时间
func (d *ConversationDAO) BumpLastMessage(ctx context.Context, conversationID int64, at time.Time) error {
	return d.Db.WithContext(ctx).
		Model(&models.Conversation{}).
		Where("id = ?", conversationID).
		Updates(map[string]any{
			"last_message_at": at,
			"updated_at":      at,
		}).Error
}

// IsParticipant 鉴权：请求者必须是会话成员
func (d *ParticipantDAO) IsParticipant(ctx context.Context, conversationID, userID int64) (bool, error) {
	return d.Repo.IsExist(ctx, "conversation_id = ? AND user_id = ?", conversationID, userID)
}

// GetPeer 取双人会话里的对端用户 ID
func (d *ParticipantDAO) GetPeer(ctx context.Context, conversationID, userID int64) (int64, error) {
	var peerIDs []int64
	err := d.Db.WithContext(ctx).
		Model(&models.ConversationParticipant{}).
		Where("conversation_id = ? AND user_id != ?", conversationID, userID).
		Limit(1).
		Pluck("user_id", &peerIDs).Error
	if err != nil {
		return 0, err
	}
	if len(peerIDs) == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return peerIDs[0], nil
}

// BatchGetPeers 批量取对端用户 ID（会话列表用）
func (d *ParticipantDAO) BatchGetPeers(ctx context.Context, conversationIDs []int64, userID int64) (map[int64]int64, error) {
	result := make(map[int64]int64, len(conversationIDs))
	if len(conversationIDs) == 0 {
		return result, nil
	}

	var rows []models.ConversationParticipant
	err := d.Db.WithContext(ctx).
		Where("conversation_id IN ? AND user_id != ?", conversationIDs, userID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		result[r.ConversationID] = r.UserID
	}
	return result, nil
}
