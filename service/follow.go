package service

import (
	"Pinboard/dao"
	"Pinboard/pkg/response"
	"Pinboard/types"
	"context"

	"gorm.io/gorm"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	// ToggleFollow 已关注则取关，未关注则关注，返回切换后的状态
	ToggleFollow(ctx context.Context, followerID, followeeID int64) (*types.ToggleFollowResponse, error)
	GetFollowCounts(ctx context.Context, userID int64) (*types.FollowCounts, error)
	ListFollowers(ctx context.Context, userID int64, page, pageSize int) ([]*types.FollowUserItem, error)
	ListFollowing(ctx context.Context, userID int64, page, pageSize int) ([]*types.FollowUserItem, error)

	// 账号关联：声明性记录，不产生任何权限
	LinkAccount(ctx context.Context, managerID, linkedID int64) error
	UnlinkAccount(ctx context.Context, managerID, linkedID int64) error
	ListLinkedAccounts(ctx context.Context, managerID int64) ([]*types.UserSummary, error)
}

type FollowService struct {
	Db        *gorm.DB
	UserDAO   *dao.Users
	FollowDAO *dao.UserFollowDAO
	LinkedDAO *dao.LinkedAccountDAO
	Notify    INotificationService
}

func (s *FollowService) ToggleFollow(ctx context.Context, followerID, followeeID int64) (*types.ToggleFollowResponse, error) {
	if followerID == followeeID {
		return nil, response.NewInvalidOperation("不能关注自己")
	}

	exist, err := s.UserDAO.IsExist(ctx, "id = ?", followeeID)
	if err != nil {
		return nil, response.NewInternalError(err)
	}
	if !exist {
		return nil, response.NewNotFound("用户不存在")
	}

	var (
		following bool
		notified  bool
	)
	err = s.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 先试插入，插入成功说明切到了已关注；撞唯一键说明已关注，转为取关
		inserted, err := s.FollowDAO.WithTx(tx).InsertIgnore(ctx, followerID, followeeID)
		if err != nil {
			return err
		}
		if inserted {
			following = true
			notified, err = s.Notify.Push(ctx, tx, followeeID, followerID, types.NotificationTypeFollow, nil)
			return err
		}

		if _, err := s.FollowDAO.WithTx(tx).Remove(ctx, followerID, followeeID); err != nil {
			return err
		}
		following = false
		return nil
	})
	if err != nil {
		return nil, response.NewInternalError(err)
	}

	if notified {
		s.Notify.BumpBadge(ctx, followeeID)
	}
	return &types.ToggleFollowResponse{Following: following}, nil
}

func (s *FollowService) GetFollowCounts(ctx context.Context, userID int64) (*types.FollowCounts, error) {
	followers, err := s.FollowDAO.GetFollowerCount(ctx, userID)
	if err != nil {
		return nil, response.NewInternalError(err)
	}
	following, err := s.FollowDAO.GetFollowingCount(ctx, userID)
	if err != nil {
		return nil, response.NewInternalError(err)
	}
	return &types.FollowCounts{FollowerCount: followers, FollowingCount: following}, nil
}

func (s *FollowService) ListFollowers(ctx context.Context, userID int64, page, pageSize int) ([]*types.FollowUserItem, error) {
	limit, offset := normalizePage(page, pageSize)
	follows, err := s.FollowDAO.ListFollowers(ctx, userID, limit, offset)
	if err != nil {
		return nil, response.NewInternalError(err)
	}

	ids := make([]int64, 0, len(follows))
	for _, f := range follows {
		ids = append(ids, f.FollowerID)
	}
	summaries, err := s.UserDAO.BatchGetSummary(ctx, ids)
	if err != nil {
		return nil, response.NewInternalError(err)
	}

	items := make([]*types.FollowUserItem, 0, len(follows))
	for _, f := range follows {
		items = append(items, &types.FollowUserItem{
			UserSummary: summaries[f.FollowerID],
			FollowedAt:  f.CreatedAt,
		})
	}
	return items, nil
}

func (s *FollowService) ListFollowing(ctx context.Context, userID int64, page, pageSize int) ([]*types.FollowUserItem, error) {
	limit, offset := normalizePage(page, pageSize)
	follows, err := s.FollowDAO.ListFollowing(ctx, userID, limit, offset)
	if err != nil {
		return nil, response.NewInternalError(err)
	}

	ids := make([]int64, 0, len(follows))
	for _, f := range follows {
		ids = append(ids, f.FolloweeID)
	}
	summaries, err := s.UserDAO.BatchGetSummary(ctx, ids)
	if err != nil {
		return nil, response.NewInternalError(err)
	}

	items := make([]*types.FollowUserItem, 0, len(follows))
	for _, f := range follows {
		items = append(items, &types.FollowUserItem{
			UserSummary: summaries[f.FolloweeID],
			FollowedAt:  f.CreatedAt,
		})
	}
	return items, nil
}

func (s *FollowService) LinkAccount(ctx context.Context, managerID, linkedID int64) error {
	if managerID == linkedID {
		return response.NewInvalidOperation("不能关联自己")
	}

	exist, err := s.UserDAO.IsExist(ctx, "id = ?", linkedID)
	if err != nil {
		return response.NewInternalError(err)
	}
	if !exist {
		return response.NewNotFound("用户不存在")
	}

	// 重复关联按冲突报错，和关注的开关语义不同
	if err := s.LinkedDAO.Link(ctx, managerID, linkedID); err != nil {
		return response.FromDBError(err, "用户不存在", "账号已关联")
	}
	return nil
}

func (s *FollowService) UnlinkAccount(ctx context.Context, managerID, linkedID int64) error {
	removed, err := s.LinkedDAO.Unlink(ctx, managerID, linkedID)
	if err != nil {
		return response.NewInternalError(err)
	}
	if !removed {
		return response.NewNotFound("关联关系不存在")
	}
	return nil
}

func (s *FollowService) ListLinkedAccounts(ctx context.Context, managerID int64) ([]*types.UserSummary, error) {
	links, err := s.LinkedDAO.ListByManager(ctx, managerID)
	if err != nil {
		return nil, response.NewInternalError(err)
	}

	ids := make([]int64, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.LinkedID)
	}
	summaries, err := s.UserDAO.BatchGetSummary(ctx, ids)
	if err != nil {
		return nil, response.NewInternalError(err)
	}

	items := make([]*types.UserSummary, 0, len(links))
	for _, l := range links {
		if sum, ok := summaries[l.LinkedID]; ok {
			item := sum
			items = append(items, &item)
		}
	}
	return items, nil
}
