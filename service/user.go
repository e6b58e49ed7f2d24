package service

import (
	"Pinboard/config"
	"Pinboard/dao"
	"Pinboard/models"
	"Pinboard/pkg/email"
	"Pinboard/pkg/encrypt"
	"Pinboard/pkg/jwt"
	"Pinboard/pkg/log"
	"Pinboard/pkg/response"
	"Pinboard/pkg/snowflake"
	"Pinboard/types"
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const TokenTypeAccess = "access"

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.AuthResponse, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error)
	GetMe(ctx context.Context, userID int64) (*types.UserInfo, error)
	UpdateProfile(ctx context.Context, userID int64, req *types.UpdateProfileRequest) (*types.UserInfo, error)
	// GetProfile viewerID 为 0 表示未登录访客
	GetProfile(ctx context.Context, viewerID, targetID int64) (*types.ProfileResponse, error)
}

type UserService struct {
	Conf      *config.Config
	UserDAO   *dao.Users
	FollowDAO *dao.UserFollowDAO
	PinDAO    *dao.PinDAO
	BoardDAO  *dao.BoardDAO
	Email     email.Sender
}

func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))

	if s.UserDAO.IsEmailExist(ctx, emailAddr) {
		return nil, response.NewConflict("邮箱已被注册")
	}
	if s.UserDAO.IsUsernameExist(ctx, username) {
		return nil, response.NewConflict("用户名已被占用")
	}

	hashed, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, response.NewInternalError(err)
	}

	now := time.Now()
	user := models.Users{
		ID:         snowflake.GenUserID(),
		Username:   username,
		Email:      emailAddr,
		Password:   hashed,
		Avatar:     s.Conf.App.DefaultAvatar,
		DefaultTab: types.DefaultTabPins,
		// 三类通知默认全开
		NotifyOnFollow:  true,
		NotifyOnLike:    true,
		NotifyOnComment: true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.UserDAO.Create(ctx, &user); err != nil {
		// 并发注册撞唯一键
		return nil, response.FromDBError(err, "用户不存在", "邮箱或用户名已被占用")
	}

	// 欢迎邮件尽力而为，不阻塞注册
	go func() {
		_ = s.Email.Send(user.Email, "欢迎加入 Pinboard",
			"<p>你好 "+user.Username+"，欢迎加入 Pinboard！</p>")
	}()

	token, err := s.genToken(user.ID)
	if err != nil {
		return nil, response.NewInternalError(err)
	}
	return &types.AuthResponse{User: toUserInfo(&user), Token: token}, nil
}

func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error) {
	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.UserDAO.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 不区分"用户不存在"和"密码错误"
			return nil, response.NewUnauthorized("邮箱或密码错误")
		}
		return nil, response.NewInternalError(err)
	}

	if !encrypt.VerifyPassword(user.Password, req.Password) {
		return nil, response.NewUnauthorized("邮箱或密码错误")
	}

	token, err := s.genToken(user.ID)
	if err != nil {
		return nil, response.NewInternalError(err)
	}

	log.L.Info("user login", zap.Int64("user_id", user.ID))
	return &types.AuthResponse{User: toUserInfo(user), Token: token}, nil
}

func (s *UserService) GetMe(ctx context.Context, userID int64) (*types.UserInfo, error) {
	user, err := s.UserDAO.FindById(ctx, userID)
	if err != nil {
		return nil, response.FromDBError(err, "用户不存在", "")
	}
	return toUserInfo(user), nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *types.UpdateProfileRequest) (*types.UserInfo, error) {
	data := make(map[string]any)
	if req.Avatar != nil {
		data["avatar"] = *req.Avatar
	}
	if req.Bio != nil {
		data["bio"] = *req.Bio
	}
	if req.DefaultTab != nil {
		if *req.DefaultTab != types.DefaultTabPins && *req.DefaultTab != types.DefaultTabBoards {
			return nil, response.NewValidationError("default_tab 取值无效")
		}
		data["default_tab"] = *req.DefaultTab
	}
	if req.NotifyOnFollow != nil {
		data["notify_on_follow"] = *req.NotifyOnFollow
	}
	if req.NotifyOnLike != nil {
		data["notify_on_like"] = *req.NotifyOnLike
	}
	if req.NotifyOnComment != nil {
		data["notify_on_comment"] = *req.NotifyOnComment
	}

	if len(data) > 0 {
		data["updated_at"] = time.Now()
		if err := s.UserDAO.UpdateById(ctx, userID, data); err != nil {
			return nil, response.NewInternalError(err)
		}
	}
	return s.GetMe(ctx, userID)
}

func (s *UserService) GetProfile(ctx context.Context, viewerID, targetID int64) (*types.ProfileResponse, error) {
	user, err := s.UserDAO.FindById(ctx, targetID)
	if err != nil {
		return nil, response.FromDBError(err, "用户不存在", "")
	}

	followerCount, err := s.FollowDAO.GetFollowerCount(ctx, targetID)
	if err != nil {
		return nil, response.NewInternalError(err)
	}
	followingCount, err := s.FollowDAO.GetFollowingCount(ctx, targetID)
	if err != nil {
		return nil, response.NewInternalError(err)
	}
	pinCount, err := s.PinDAO.CountByUser(ctx, targetID)
	if err != nil {
		return nil, response.NewInternalError(err)
	}
	boardCount, err := s.BoardDAO.CountByUser(ctx, targetID)
	if err != nil {
		return nil, response.NewInternalError(err)
	}

	isFollowing := false
	if viewerID > 0 && viewerID != targetID {
		isFollowing, err = s.FollowDAO.IsFollowing(ctx, viewerID, targetID)
		if err != nil {
			return nil, response.NewInternalError(err)
		}
	}

	return &types.ProfileResponse{
		ID:             user.ID,
		Username:       user.Username,
		Avatar:         user.Avatar,
		Bio:            user.Bio,
		DefaultTab:     user.DefaultTab,
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
		PinCount:       pinCount,
		BoardCount:     boardCount,
		IsFollowing:    isFollowing,
		CreatedAt:      user.CreatedAt,
	}, nil
}

func (s *UserService) genToken(userID int64) (string, error) {
	expire := time.Duration(s.Conf.Jwt.ExpiresTime) * time.Second
	return jwt.GenerateToken([]byte(s.Conf.Jwt.Secret), userID, TokenTypeAccess, expire)
}

func toUserInfo(u *models.Users) *types.UserInfo {
	return &types.UserInfo{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		Avatar:          u.Avatar,
		Bio:             u.Bio,
		DefaultTab:      u.DefaultTab,
		NotifyOnFollow:  u.NotifyOnFollow,
		NotifyOnLike:    u.NotifyOnLike,
		NotifyOnComment: u.NotifyOnComment,
		CreatedAt:       u.CreatedAt,
	}
}
