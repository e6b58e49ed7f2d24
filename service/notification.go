package service

import (
	"Pinboard/dao"
	"Pinboard/models"
	"Pinboard/pkg/response"
	"Pinboard/types"
	"context"
	"time"

	"gorm.io/gorm"
)

// BadgeStore 未读角标缓存，dao/cache.NotifyBadgeStorage 是线上实现
type BadgeStore interface {
	Incr(ctx context.Context, uid int64)
	// Get 缓存缺失返回 -1
	Get(ctx context.Context, uid int64) int64
	Set(ctx context.Context, uid int64, count int64)
	Del(ctx context.Context, uid int64)
}

var _ INotificationService = (*NotificationService)(nil)

type INotificationService interface {
	// Push 写入一条通知，和触发它的写操作同一个事务
	// 自己触发自己 / 接收人关了对应开关时静默跳过，返回是否真的写了
	Push(ctx context.Context, tx *gorm.DB, recipientID, actorID int64, ntype string, pinID *int64) (bool, error)

	// BumpBadge 事务提交成功后推未读角标
	BumpBadge(ctx context.Context, recipientID int64)

	List(ctx context.Context, userID int64, page, pageSize int) ([]*types.NotificationItem, error)
	MarkAllRead(ctx context.Context, userID int64) error
	UnreadCount(ctx context.Context, userID int64) (int64, error)
}

type NotificationService struct {
	UserDAO         *dao.Users
	NotificationDAO *dao.NotificationDAO
	PinDAO          *dao.PinDAO
	Badge           BadgeStore
	Oss             IOssService
}

func (s *NotificationService) Push(ctx context.Context, tx *gorm.DB, recipientID, actorID int64, ntype string, pinID *int64) (bool, error) {
	// 自己的动作不通知自己
	if recipientID == actorID {
		return false, nil
	}

	recipient, err := s.UserDAO.FindById(ctx, recipientID)
	if err != nil {
		return false, err
	}

	// 接收人的偏好开关
	switch ntype {
	case types.NotificationTypeFollow:
		if !recipient.NotifyOnFollow {
			return false, nil
		}
	case types.NotificationTypeLike:
		if !recipient.NotifyOnLike {
			return false, nil
		}
	case types.NotificationTypeComment:
		if !recipient.NotifyOnComment {
			return false, nil
		}
	}

	n := models.Notification{
		UserID:    recipientID,
		ActorID:   actorID,
		Type:      ntype,
		PinID:     pinID,
		CreatedAt: time.Now(),
	}
	if err := s.NotificationDAO.WithTx(tx).Create(ctx, &n); err != nil {
		return false, err
	}
	return true, nil
}

func (s *NotificationService) BumpBadge(ctx context.Context, recipientID int64) {
	s.Badge.Incr(ctx, recipientID)
}

func (s *NotificationService) List(ctx context.Context, userID int64, page, pageSize int) ([]*types.NotificationItem, error) {
	limit, offset := normalizePage(page, pageSize)

	list, err := s.NotificationDAO.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, response.NewInternalError(err)
	}

	// 聚合触发人摘要和目标 Pin 缩略图
	actorIDs := make([]int64, 0, len(list))
	pinIDs := make([]int64, 0, len(list))
	for _, n := range list {
		actorIDs = append(actorIDs, n.ActorID)
		if n.PinID != nil {
			pinIDs = append(pinIDs, *n.PinID)
		}
	}

	actors, err := s.UserDAO.BatchGetSummary(ctx, actorIDs)
	if err != nil {
		return nil, response.NewInternalError(err)
	}

	thumbs := make(map[int64]string, len(pinIDs))
	if len(pinIDs) > 0 {
		pins, err := s.PinDAO.ListByIDs(ctx, pinIDs)
		if err != nil {
			return nil, response.NewInternalError(err)
		}
		for _, p := range pins {
			thumbs[p.ID] = s.Oss.PublicURL(p.ImageKey)
		}
	}

	items := make([]*types.NotificationItem, 0, len(list))
	for _, n := range list {
		item := &types.NotificationItem{
			ID:        n.ID,
			Type:      n.Type,
			Actor:     actors[n.ActorID],
			PinID:     n.PinID,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
		if n.PinID != nil {
			item.PinThumb = thumbs[*n.PinID]
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) error {
	if err := s.NotificationDAO.MarkAllRead(ctx, userID); err != nil {
		return response.NewInternalError(err)
	}
	s.Badge.Del(ctx, userID)
	return nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	// 角标缓存命中直接用，缺失回源 DB 并重建
	if n := s.Badge.Get(ctx, userID); n >= 0 {
		return n, nil
	}

	count, err := s.NotificationDAO.CountUnread(ctx, userID)
	if err != nil {
		return 0, response.NewInternalError(err)
	}
	s.Badge.Set(ctx, userID, count)
	return count, nil
}

// normalizePage 页码参数兜底
func normalizePage(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = types.DefaultPage
	}
	if pageSize < 1 {
		pageSize = types.DefaultPageSize
	}
	if pageSize > types.MaxPageSize {
		pageSize = types.MaxPageSize
	}
	return pageSize, (page - 1) * pageSize
}
