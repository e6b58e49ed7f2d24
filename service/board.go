package service

import (
	"Pinboard/dao"
	"Pinboard/models"
	"Pinboard/pkg/response"
	"Pinboard/pkg/snowflake"
	"Pinboard/types"
	"context"
	"strings"
	"time"
)

var _ IBoardService = (*BoardService)(nil)

type IBoardService interface {
	CreateBoard(ctx context.Context, userID int64, req *types.CreateBoardRequest) (*types.CreateBoardResponse, error)
	// ListBoards viewerID != targetID 时过滤私有画板
	ListBoards(ctx context.Context, viewerID, targetID int64) ([]*types.BoardItem, error)
	GetBoardDetail(ctx context.Context, viewerID, boardID int64) (*types.BoardDetail, error)
	// AddPin 同一 Pin 在同一画板里只能收集一次
	AddPin(ctx context.Context, userID, boardID int64, pinID int64) error
	RemovePin(ctx context.Context, userID, boardID int64, pinID int64) error
}

type BoardService struct {
	BoardDAO    *dao.BoardDAO
	BoardPinDAO *dao.BoardPinDAO
	PinDAO      *dao.PinDAO
	UserDAO     *dao.Users
	Pin         IPinService
	Oss         IOssService
}

func (s *BoardService) CreateBoard(ctx context.Context, userID int64, req *types.CreateBoardRequest) (*types.CreateBoardResponse, error) {
	now := time.Now()
	board := models.Board{
		ID:          snowflake.GenID(),
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		IsPrivate:   req.IsPrivate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if board.Title == "" {
		return nil, response.NewValidationError("画板标题不能为空")
	}

	if err := s.BoardDAO.Create(ctx, &board); err != nil {
		return nil, response.NewInternalError(err)
	}
	return &types.CreateBoardResponse{BoardID: board.ID}, nil
}

func (s *BoardService) ListBoards(ctx context.Context, viewerID, targetID int64) ([]*types.BoardItem, error) {
	exist, err := s.UserDAO.IsExist(ctx, "id = ?", targetID)
	if err != nil {
		return nil, response.NewInternalError(err)
	}
	if !exist {
		return nil, response.NewNotFound("用户不存在")
	}

	boards, err := s.BoardDAO.ListByUser(ctx, targetID, viewerID == targetID)
	if err != nil {
		return nil, response.NewInternalError(err)
	}
	return s.toBoardItems(ctx, boards)
}

func (s *BoardService) GetBoardDetail(ctx context.Context, viewerID, boardID int64) (*types.BoardDetail, error) {
	board, err := s.BoardDAO.FindById(ctx, boardID)
	if err != nil {
		return nil, response.FromDBError(err, "画板不存在", "")
	}
	if board.IsPrivate && board.UserID != viewerID {
		// 私有画板对外不暴露存在性
		return nil, response.NewNotFound("画板不存在")
	}

	items, err := s.toBoardItems(ctx, []*models.Board{board})
	if err != nil {
		return nil, err
	}

	summaries, err := s.UserDAO.BatchGetSummary(ctx, []int64{board.UserID})
	if err != nil {
		return nil, response.NewInternalError(err)
	}

	pinIDs, err := s.BoardPinDAO.ListPinIDs(ctx, boardID)
	if err != nil {
		return nil, response.NewInternalError(err)
	}
	pinItems, err := s.Pin.PinItemsByIDs(ctx, pinIDs)
	if err != nil {
		return nil, err
	}

	return &types.BoardDetail{
		BoardItem: *items[0],
		User:      summaries[board.UserID],
		Pins:      pinItems,
	}, nil
}

func (s *BoardService) AddPin(ctx context.Context, userID, boardID int64, pinID int64) error {
	board, err := s.BoardDAO.FindById(ctx, boardID)
	if err != nil {
		return response.FromDBError(err, "画板不存在", "")
	}
	if board.UserID != userID {
		return response.NewForbidden("只能向自己的画板收集")
	}

	exist, err := s.PinDAO.IsExist(ctx, "id = ?", pinID)
	if err != nil {
		return response.NewInternalError(err)
	}
	if !exist {
		return response.NewNotFound("Pin 不存在")
	}

	if err := s.BoardPinDAO.AddPin(ctx, boardID, pinID); err != nil {
		return response.FromDBError(err, "Pin 不存在", "该 Pin 已在画板中")
	}
	return nil
}

func (s *BoardService) RemovePin(ctx context.Context, userID, boardID int64, pinID int64) error {
	board, err := s.BoardDAO.FindById(ctx, boardID)
	if err != nil {
		return response.FromDBError(err, "画板不存在", "")
	}
	if board.UserID != userID {
		return response.NewForbidden("只能操作自己的画板")
	}

	removed, err := s.BoardPinDAO.RemovePin(ctx, boardID, pinID)
	if err != nil {
		return response.NewInternalError(err)
	}
	if !removed {
		return response.NewNotFound("该 Pin 不在画板中")
	}
	return nil
}

func (s *BoardService) toBoardItems(ctx context.Context, boards []*models.Board) ([]*types.BoardItem, error) {
	items := make([]*types.BoardItem, 0, len(boards))
	if len(boards) == 0 {
		return items, nil
	}

	boardIDs := make([]int64, 0, len(boards))
	for _, b := range boards {
		boardIDs = append(boardIDs, b.ID)
	}

	counts, err := s.BoardPinDAO.BatchCountByBoards(ctx, boardIDs)
	if err != nil {
		return nil, response.NewInternalError(err)
	}
	coverPins, err := s.BoardPinDAO.LatestPinByBoards(ctx, boardIDs)
	if err != nil {
		return nil, response.NewInternalError(err)
	}

	// 封面取最新加入的 Pin 的图
	coverPinIDs := make([]int64, 0, len(coverPins))
	for _, pinID := range coverPins {
		coverPinIDs = append(coverPinIDs, pinID)
	}
	covers := make(map[int64]string, len(coverPinIDs))
	if len(coverPinIDs) > 0 {
		pins, err := s.PinDAO.ListByIDs(ctx, coverPinIDs)
		if err != nil {
			return nil, response.NewInternalError(err)
		}
		for _, p := range pins {
			covers[p.ID] = s.Oss.PublicURL(p.ImageKey)
		}
	}

	for _, b := range boards {
		item := &types.BoardItem{
			ID:          b.ID,
			Title:       b.Title,
			Description: b.Description,
			IsPrivate:   b.IsPrivate,
			PinCount:    counts[b.ID],
			CreatedAt:   b.CreatedAt,
		}
		if pinID, ok := coverPins[b.ID]; ok {
			item.CoverURL = covers[pinID]
		}
		items = append(items, item)
	}
	return items, nil
}
