package handler

import (
	"strconv"

	"Pinboard/config"
	"Pinboard/middleware"
	"Pinboard/pkg/context"
	"Pinboard/pkg/response"
	"Pinboard/service"
	"Pinboard/types"

	"github.com/gin-gonic/gin"
)

type Board struct {
	Config       *config.Config
	BoardService service.IBoardService
}

func (h *Board) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	g := r.Group("/v1/boards")
	g.POST("", authorize, context.Wrap(h.CreateBoard))
	g.GET("", optional, context.Wrap(h.ListBoards))
	g.GET("/:id", optional, context.Wrap(h.BoardDetail))
	g.POST("/:id/pins", authorize, context.Wrap(h.AddPin))
	g.DELETE("/:id/pins/:pin_id", authorize, context.Wrap(h.RemovePin))
}

func (h *Board) CreateBoard(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}

	var req types.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError(err.Error())
	}

	resp, err := h.BoardService.CreateBoard(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// ListBoards user_id 不传时默认看自己的
func (h *Board) ListBoards(c *gin.Context) error {
	viewerID := context.GetOptionalUserID(c)

	targetID := viewerID
	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return response.NewValidationError("user_id 格式错误")
		}
		targetID = id
	}
	if targetID <= 0 {
		return response.NewValidationError("缺少 user_id")
	}

	items, err := h.BoardService.ListBoards(c.Request.Context(), viewerID, targetID)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (h *Board) BoardDetail(c *gin.Context) error {
	boardID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.BoardService.GetBoardDetail(c.Request.Context(), context.GetOptionalUserID(c), boardID)
	if err != nil {
		return err
	}
	response.Success(c, detail)
	return nil
}

func (h *Board) AddPin(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	boardID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req types.AddBoardPinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError(err.Error())
	}

	if err := h.BoardService.AddPin(c.Request.Context(), userID, boardID, req.PinID); err != nil {
		return err
	}
	response.Success(c, gin.H{"added": true})
	return nil
}

func (h *Board) RemovePin(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	boardID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	pinID, err := parseIDParam(c, "pin_id")
	if err != nil {
		return err
	}

	if err := h.BoardService.RemovePin(c.Request.Context(), userID, boardID, pinID); err != nil {
		return err
	}
	response.Success(c, gin.H{"removed": true})
	return nil
}
