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

type Follow struct {
	Config        *config.Config
	FollowService service.IFollowService
}

func (h *Follow) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/v1/users")
	g.POST("/:id/follow", authorize, context.Wrap(h.ToggleFollow))
	g.GET("/:id/follow-counts", context.Wrap(h.FollowCounts))
	g.GET("/:id/followers", context.Wrap(h.Followers))
	g.GET("/:id/following", context.Wrap(h.Following))
	g.POST("/:id/link", authorize, context.Wrap(h.LinkAccount))
	g.DELETE("/:id/link", authorize, context.Wrap(h.UnlinkAccount))
	g.GET("/me/linked", authorize, context.Wrap(h.ListLinkedAccounts))
}

// ToggleFollow 关注/取关开关
func (h *Follow) ToggleFollow(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	resp, err := h.FollowService.ToggleFollow(c.Request.Context(), userID, targetID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Follow) FollowCounts(c *gin.Context) error {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	counts, err := h.FollowService.GetFollowCounts(c.Request.Context(), targetID)
	if err != nil {
		return err
	}
	response.Success(c, counts)
	return nil
}

func (h *Follow) Followers(c *gin.Context) error {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req types.PageRequest
	_ = c.ShouldBindQuery(&req)

	items, err := h.FollowService.ListFollowers(c.Request.Context(), targetID, req.Page, req.PageSize)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (h *Follow) Following(c *gin.Context) error {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req types.PageRequest
	_ = c.ShouldBindQuery(&req)

	items, err := h.FollowService.ListFollowing(c.Request.Context(), targetID, req.Page, req.PageSize)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (h *Follow) LinkAccount(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	linkedID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.FollowService.LinkAccount(c.Request.Context(), userID, linkedID); err != nil {
		return err
	}
	response.Success(c, gin.H{"linked": true})
	return nil
}

func (h *Follow) UnlinkAccount(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	linkedID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.FollowService.UnlinkAccount(c.Request.Context(), userID, linkedID); err != nil {
		return err
	}
	response.Success(c, gin.H{"linked": false})
	return nil
}

func (h *Follow) ListLinkedAccounts(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}

	items, err := h.FollowService.ListLinkedAccounts(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}
