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

type Conversation struct {
	Config              *config.Config
	ConversationService service.IConversationService
}

func (h *Conversation) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/v1/messages", authorize)
	g.GET("", context.Wrap(h.ListConversations))
	g.POST("/initiate", context.Wrap(h.Initiate))
	g.GET("/:id", context.Wrap(h.GetMessages))
	g.POST("/:id", context.Wrap(h.SendMessage))
}

func (h *Conversation) ListConversations(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}

	items, err := h.ConversationService.ListConversations(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (h *Conversation) Initiate(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}

	var req types.InitiateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError(err.Error())
	}

	resp, err := h.ConversationService.Initiate(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Conversation) GetMessages(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	convID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	items, err := h.ConversationService.GetMessages(c.Request.Context(), userID, convID)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (h *Conversation) SendMessage(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	convID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req types.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError(err.Error())
	}

	item, err := h.ConversationService.SendMessage(c.Request.Context(), userID, convID, &req)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}
