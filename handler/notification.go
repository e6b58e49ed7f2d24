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

type Notification struct {
	Config              *config.Config
	NotificationService service.INotificationService
}

func (h *Notification) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/v1/notifications", authorize)
	g.GET("", context.Wrap(h.List))
	g.GET("/unread-count", context.Wrap(h.UnreadCount))
	g.POST("/mark-as-read", context.Wrap(h.MarkAllRead))
}

func (h *Notification) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	var req types.PageRequest
	_ = c.ShouldBindQuery(&req)

	items, err := h.NotificationService.List(c.Request.Context(), userID, req.Page, req.PageSize)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (h *Notification) UnreadCount(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}

	count, err := h.NotificationService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, types.UnreadCountResponse{Count: count})
	return nil
}

func (h *Notification) MarkAllRead(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}

	if err := h.NotificationService.MarkAllRead(c.Request.Context(), userID); err != nil {
		return err
	}
	response.Success(c, gin.H{"marked": true})
	return nil
}
