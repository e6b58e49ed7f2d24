package handler

import (
	"Pinboard/config"
	"Pinboard/middleware"
	"Pinboard/pkg/context"
	"Pinboard/pkg/response"
	"Pinboard/service"
	"Pinboard/types"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
	OssService  service.IOssService
}

func (h *User) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	g := r.Group("/v1/users")
	g.POST("/register", context.Wrap(h.Register))
	g.POST("/login", context.Wrap(h.Login))
	g.GET("/me", authorize, context.Wrap(h.Me))
	g.GET("/:id", optional, context.Wrap(h.Profile))
	g.PUT("/:id", authorize, context.Wrap(h.UpdateProfile))

	r.POST("/v1/upload", authorize, context.Wrap(h.Upload))
}

func (h *User) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError(err.Error())
	}

	resp, err := h.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *User) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError(err.Error())
	}

	resp, err := h.UserService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *User) Me(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}

	info, err := h.UserService.GetMe(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, info)
	return nil
}

func (h *User) Profile(c *gin.Context) error {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.UserService.GetProfile(c.Request.Context(), context.GetOptionalUserID(c), targetID)
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}

func (h *User) UpdateProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	// 只能改自己的资料
	if targetID != userID {
		return response.NewForbidden("无权修改他人资料")
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError(err.Error())
	}

	info, err := h.UserService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, info)
	return nil
}

// Upload 通用图片上传（头像等），返回对象 key 和外链
func (h *User) Upload(c *gin.Context) error {
	header, err := c.FormFile("image")
	if err != nil {
		return response.NewValidationError("缺少图片文件")
	}

	resp, err := h.OssService.UploadImage(c.Request.Context(), header)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
