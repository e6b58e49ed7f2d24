package handler

import (
	"strings"

	"Pinboard/config"
	"Pinboard/middleware"
	"Pinboard/pkg/context"
	"Pinboard/pkg/response"
	"Pinboard/service"
	"Pinboard/types"

	"github.com/gin-gonic/gin"
)

type Pin struct {
	Config         *config.Config
	PinService     service.IPinService
	LikeService    service.ILikeService
	CommentService service.ICommentService
}

func (h *Pin) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	g := r.Group("/v1/pins")
	g.GET("", context.Wrap(h.ListPins))
	g.GET("/feed", authorize, context.Wrap(h.Feed))
	g.GET("/search", context.Wrap(h.Search))
	g.POST("", authorize, context.Wrap(h.CreatePin))
	g.GET("/:id", optional, context.Wrap(h.PinDetail))
	g.POST("/:id/like", authorize, context.Wrap(h.ToggleLike))
	g.GET("/:id/comments", context.Wrap(h.ListComments))
	g.POST("/:id/comments", authorize, context.Wrap(h.AddComment))
}

func (h *Pin) ListPins(c *gin.Context) error {
	var req types.ListPinsRequest
	_ = c.ShouldBindQuery(&req)

	resp, err := h.PinService.ListPins(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Pin) Feed(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	var req types.PageRequest
	_ = c.ShouldBindQuery(&req)

	resp, err := h.PinService.Feed(c.Request.Context(), userID, req.Page, req.PageSize)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Pin) Search(c *gin.Context) error {
	var req types.SearchPinsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewValidationError("缺少 query")
	}

	items, err := h.PinService.Search(c.Request.Context(), req.Query)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

// CreatePin multipart 表单：title/description/link/tags + image 文件
// tags 按逗号分隔
func (h *Pin) CreatePin(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}

	var req types.CreatePinRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.NewValidationError(err.Error())
	}
	if raw := c.PostForm("tags"); raw != "" {
		req.Tags = strings.Split(raw, ",")
	}

	image, err := c.FormFile("image")
	if err != nil {
		return response.NewValidationError("缺少图片文件")
	}

	resp, err := h.PinService.CreatePin(c.Request.Context(), userID, &req, image)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Pin) PinDetail(c *gin.Context) error {
	pinID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.PinService.GetPinDetail(c.Request.Context(), context.GetOptionalUserID(c), pinID)
	if err != nil {
		return err
	}
	response.Success(c, detail)
	return nil
}

func (h *Pin) ToggleLike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	pinID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	resp, err := h.LikeService.ToggleLike(c.Request.Context(), userID, pinID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Pin) ListComments(c *gin.Context) error {
	pinID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	items, err := h.CommentService.ListComments(c.Request.Context(), pinID)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (h *Pin) AddComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	pinID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError(err.Error())
	}

	item, err := h.CommentService.AddComment(c.Request.Context(), userID, pinID, &req)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}
