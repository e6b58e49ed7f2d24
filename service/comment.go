package service

import (
	"Pinboard/dao"
	"Pinboard/models"
	"Pinboard/pkg/response"
	"Pinboard/types"
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	// AddComment 评论只追加，不支持修改和删除
	AddComment(ctx context.Context, userID, pinID int64, req *types.CreateCommentRequest) (*types.CommentItem, error)
	ListComments(ctx context.Context, pinID int64) ([]*types.CommentItem, error)
}

type CommentService struct {
	Db         *gorm.DB
	PinDAO     *dao.PinDAO
	CommentDAO *dao.CommentDAO
	UserDAO    *dao.Users
	Notify     INotificationService
}

func (s *CommentService) AddComment(ctx context.Context, userID, pinID int64, req *types.CreateCommentRequest) (*types.CommentItem, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, response.NewValidationError("评论内容不能为空")
	}

	pin, err := s.PinDAO.FindById(ctx, pinID)
	if err != nil {
		return nil, response.FromDBError(err, "Pin 不存在", "")
	}

	comment := models.Comment{
		PinID:     pinID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	}

	var notified bool
	err = s.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.CommentDAO.WithTx(tx).Create(ctx, &comment); err != nil {
			return err
		}
		notified, err = s.Notify.Push(ctx, tx, pin.UserID, userID, types.NotificationTypeComment, &pin.ID)
		return err
	})
	if err != nil {
		return nil, response.NewInternalError(err)
	}

	if notified {
		s.Notify.BumpBadge(ctx, pin.UserID)
	}

	summaries, err := s.UserDAO.BatchGetSummary(ctx, []int64{userID})
	if err != nil {
		return nil, response.NewInternalError(err)
	}
	return &types.CommentItem{
		ID:        comment.ID,
		PinID:     comment.PinID,
		Content:   comment.Content,
		User:      summaries[userID],
		CreatedAt: comment.CreatedAt,
	}, nil
}

func (s *CommentService) ListComments(ctx context.Context, pinID int64) ([]*types.CommentItem, error) {
	exist, err := s.PinDAO.IsExist(ctx, "id = ?", pinID)
	if err != nil {
		return nil, response.NewInternalError(err)
	}
	if !exist {
		return nil, response.NewNotFound("Pin 不存在")
	}

	comments, err := s.CommentDAO.ListByPin(ctx, pinID)
	if err != nil {
		return nil, response.NewInternalError(err)
	}

	userIDs := make([]int64, 0, len(comments))
	for _, c := range comments {
		userIDs = append(userIDs, c.UserID)
	}
	summaries, err := s.UserDAO.BatchGetSummary(ctx, userIDs)
	if err != nil {
		return nil, response.NewInternalError(err)
	}

	items := make([]*types.CommentItem, 0, len(comments))
	for _, c := range comments {
		items = append(items, &types.CommentItem{
			ID:        c.ID,
			PinID:     c.PinID,
			Content:   c.Content,
			User:      summaries[c.UserID],
			CreatedAt: c.CreatedAt,
		})
	}
	return items, nil
}
