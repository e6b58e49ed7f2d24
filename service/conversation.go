package service

import (
	"Pinboard/dao"
	"Pinboard/models"
	"Pinboard/pkg/response"
	"Pinboard/pkg/snowflake"
	"Pinboard/types"
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

var _ IConversationService = (*ConversationService)(nil)

type IConversationService interface {
	// Initiate 幂等：同一对用户重复发起返回同一个会话
	Initiate(ctx context.Context, userID int64, req *types.InitiateConversationRequest) (*types.InitiateConversationResponse, error)
	ListConversations(ctx context.Context, userID int64) ([]*types.ConversationItem, error)
	// GetMessages 拉取会话消息，顺带把对方发来的未读置为已读
	GetMessages(ctx context.Context, userID, conversationID int64) ([]*types.MessageItem, error)
	SendMessage(ctx context.Context, userID, conversationID int64, req *types.SendMessageRequest) (*types.MessageItem, error)
}

type ConversationService struct {
	Db             *gorm.DB
	UserDAO        *dao.Users
	ConvDAO        *dao.ConversationDAO
	ParticipantDAO *dao.ParticipantDAO
	MessageDAO     *dao.MessageDAO
}

func (s *ConversationService) Initiate(ctx context.Context, userID int64, req *types.InitiateConversationRequest) (*types.InitiateConversationResponse, error) {
	if req.RecipientID == userID {
		return nil, response.NewInvalidOperation("不能和自己发起会话")
	}

	exist, err := s.UserDAO.IsExist(ctx, "id = ?", req.RecipientID)
	if err != nil {
		return nil, response.NewInternalError(err)
	}
	if !exist {
		return nil, response.NewNotFound("用户不存在")
	}

	var conv *models.Conversation
	err = s.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		conv, err = s.ConvDAO.WithTx(tx).EnsurePair(ctx, userID, req.RecipientID)
		return err
	})
	if err != nil {
		return nil, response.NewInternalError(err)
	}
	return &types.InitiateConversationResponse{ConversationID: conv.ID}, nil
}

func (s *ConversationService) ListConversations(ctx context.Context, userID int64) ([]*types.ConversationItem, error) {
	convs, err := s.ConvDAO.ListByUser(ctx, userID)
	if err != nil {
		return nil, response.NewInternalError(err)
	}
	if len(convs) == 0 {
		return []*types.ConversationItem{}, nil
	}

	convIDs := make([]int64, 0, len(convs))
	for _, c := range convs {
		convIDs = append(convIDs, c.ID)
	}

	peers, err := s.ParticipantDAO.BatchGetPeers(ctx, convIDs, userID)
	if err != nil {
		return nil, response.NewInternalError(err)
	}
	lastMsgs, err := s.MessageDAO.LatestByConversations(ctx, convIDs)
	if err != nil {
		return nil, response.NewInternalError(err)
	}
	unreads, err := s.MessageDAO.BatchCountUnread(ctx, convIDs, userID)
	if err != nil {
		return nil, response.NewInternalError(err)
	}

	peerIDs := make([]int64, 0, len(peers))
	for _, id := range peers {
		peerIDs = append(peerIDs, id)
	}
	summaries, err := s.UserDAO.BatchGetSummary(ctx, peerIDs)
	if err != nil {
		return nil, response.NewInternalError(err)
	}

	items := make([]*types.ConversationItem, 0, len(convs))
	for _, c := range convs {
		item := &types.ConversationItem{
			ConversationID: c.ID,
			Peer:           summaries[peers[c.ID]],
			LastMessageAt:  c.LastMessageAt,
			UnreadCount:    unreads[c.ID],
		}
		if m, ok := lastMsgs[c.ID]; ok {
			item.LastMessage = m.Content
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *ConversationService) GetMessages(ctx context.Context, userID, conversationID int64) ([]*types.MessageItem, error) {
	if err := s.requireParticipant(ctx, userID, conversationID); err != nil {
		return nil, err
	}

	msgs, err := s.MessageDAO.ListByConversation(ctx, conversationID)
	if err != nil {
		return nil, response.NewInternalError(err)
	}

	// 拉取即已读
	if err := s.MessageDAO.MarkReadByPeer(ctx, conversationID, userID); err != nil {
		return nil, response.NewInternalError(err)
	}

	items := make([]*types.MessageItem, 0, len(msgs))
	for _, m := range msgs {
		items = append(items, &types.MessageItem{
			ID:        m.ID,
			SenderID:  m.SenderID,
			Content:   m.Content,
			IsRead:    m.IsRead,
			CreatedAt: m.CreatedAt,
		})
	}
	return items, nil
}

func (s *ConversationService) SendMessage(ctx context.Context, userID, conversationID int64, req *types.SendMessageRequest) (*types.MessageItem, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, response.NewValidationError("消息内容不能为空")
	}

	if err := s.requireParticipant(ctx, userID, conversationID); err != nil {
		return nil, err
	}

	now := time.Now()
	msg := models.Message{
		ID:             snowflake.GenID(),
		ConversationID: conversationID,
		SenderID:       userID,
		Content:        content,
		CreatedAt:      now,
	}

	err := s.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.MessageDAO.WithTx(tx).Create(ctx, &msg); err != nil {
			return err
		}
		return s.ConvDAO.WithTx(tx).BumpLastMessage(ctx, conversationID, now)
	})
	if err != nil {
		return nil, response.NewInternalError(err)
	}

	return &types.MessageItem{
		ID:        msg.ID,
		SenderID:  msg.SenderID,
		Content:   msg.Content,
		IsRead:    msg.IsRead,
		CreatedAt: msg.CreatedAt,
	}, nil
}

func (s *ConversationService) requireParticipant(ctx context.Context, userID, conversationID int64) error {
	ok, err := s.ParticipantDAO.IsParticipant(ctx, conversationID, userID)
	if err != nil {
		return response.NewInternalError(err)
	}
	if !ok {
		// 非成员不暴露会话存在性
		return response.NewNotFound("会话不存在")
	}
	return nil
}
