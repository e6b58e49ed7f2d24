package service

import (
	"Pinboard/dao"
	"Pinboard/pkg/response"
	"Pinboard/types"
	"context"

	"gorm.io/gorm"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	// ToggleLike 已赞则取消，未赞则点赞
	// liked 和 new_like_count 在同一个事务里算出，保证两者一致
	ToggleLike(ctx context.Context, userID, pinID int64) (*types.ToggleLikeResponse, error)
}

type LikeService struct {
	Db      *gorm.DB
	PinDAO  *dao.PinDAO
	LikeDAO *dao.PinLikeDAO
	Notify  INotificationService
}

func (s *LikeService) ToggleLike(ctx context.Context, userID, pinID int64) (*types.ToggleLikeResponse, error) {
	pin, err := s.PinDAO.FindById(ctx, pinID)
	if err != nil {
		return nil, response.FromDBError(err, "Pin 不存在", "")
	}

	var (
		result   types.ToggleLikeResponse
		notified bool
	)
	err = s.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		likeDAO := s.LikeDAO.WithTx(tx)

		// 插入成功即切到已赞，撞唯一键说明已赞，转为取消
		inserted, err := likeDAO.InsertIgnore(ctx, pinID, userID)
		if err != nil {
			return err
		}
		if inserted {
			result.Liked = true
			notified, err = s.Notify.Push(ctx, tx, pin.UserID, userID, types.NotificationTypeLike, &pin.ID)
			if err != nil {
				return err
			}
		} else {
			if _, err := likeDAO.Remove(ctx, pinID, userID); err != nil {
				return err
			}
			result.Liked = false
		}

		// 计数在同一事务里数出来
		count, err := likeDAO.CountByPin(ctx, pinID)
		if err != nil {
			return err
		}
		result.LikeCount = count
		return nil
	})
	if err != nil {
		return nil, response.NewInternalError(err)
	}

	if notified {
		s.Notify.BumpBadge(ctx, pin.UserID)
	}
	return &result, nil
}
