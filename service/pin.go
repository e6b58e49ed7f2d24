package service

import (
	"Pinboard/config"
	"Pinboard/dao"
	"Pinboard/models"
	"Pinboard/pkg/response"
	"Pinboard/pkg/snowflake"
	"Pinboard/pkg/utils"
	"Pinboard/types"
	"context"
	"encoding/json"
	"mime/multipart"
	"sort"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"
	"gorm.io/gorm"
)

var _ IPinService = (*PinService)(nil)

type IPinService interface {
	CreatePin(ctx context.Context, userID int64, req *types.CreatePinRequest, image *multipart.FileHeader) (*types.CreatePinResponse, error)
	// ListPins 公共流，category 为标签名筛选
	ListPins(ctx context.Context, req *types.ListPinsRequest) (*types.PinListResponse, error)
	// Feed 关注的人的 Pin
	Feed(ctx context.Context, userID int64, page, pageSize int) (*types.PinListResponse, error)
	// Search 标题/描述文本匹配和标签精确匹配的并集
	Search(ctx context.Context, query string) ([]*types.PinItem, error)
	// GetPinDetail viewerID 为 0 表示未登录访客
	GetPinDetail(ctx context.Context, viewerID, pinID int64) (*types.PinDetail, error)
	// PinItemsByIDs 按 ID 集合取列表项，供画板详情等聚合场景复用
	PinItemsByIDs(ctx context.Context, ids []int64) ([]*types.PinItem, error)
}

type PinService struct {
	Db         *gorm.DB
	Conf       *config.Config
	PinDAO     *dao.PinDAO
	TagDAO     *dao.TagDAO
	PinTagDAO  *dao.PinTagDAO
	LikeDAO    *dao.PinLikeDAO
	CommentDAO *dao.CommentDAO
	UserDAO    *dao.Users
	FollowDAO  *dao.UserFollowDAO
	Oss        IOssService
}

// NormalizeTag 标签大小写不敏感：trim 后统一小写
func NormalizeTag(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// normalizeTags 规范化 + 去重 + 去空，保持输入顺序
func normalizeTags(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		n := NormalizeTag(name)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		result = append(result, n)
	}
	return result
}

func (s *PinService) CreatePin(ctx context.Context, userID int64, req *types.CreatePinRequest, image *multipart.FileHeader) (*types.CreatePinResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, response.NewValidationError("标题不能为空")
	}

	tags := normalizeTags(req.Tags)
	if len(tags) > types.MaxTagsPerPin {
		return nil, response.NewValidationError("标签数量超出限制")
	}

	// 先传图，事务失败时对象成为孤儿，由离线清理任务兜底
	upload, err := s.Oss.UploadImage(ctx, image)
	if err != nil {
		return nil, err
	}

	mediaData, err := json.Marshal(upload.Media)
	if err != nil {
		return nil, response.NewInternalError(err)
	}

	now := time.Now()
	pin := models.Pin{
		ID:          snowflake.GenID(),
		UserID:      userID,
		Title:       title,
		Description: req.Description,
		ImageKey:    upload.Key,
		Link:        strings.TrimSpace(req.Link),
		MediaData:   mediaData,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.PinDAO.WithTx(tx).Create(ctx, &pin); err != nil {
			return err
		}
		if len(tags) == 0 {
			return nil
		}

		ensured, err := s.TagDAO.WithTx(tx).BatchEnsure(ctx, tags)
		if err != nil {
			return err
		}
		tagIDs := make([]uint64, 0, len(tags))
		for _, name := range tags {
			if t, ok := ensured[name]; ok {
				tagIDs = append(tagIDs, t.ID)
			}
		}
		return s.PinTagDAO.WithTx(tx).BatchCreate(ctx, pin.ID, tagIDs)
	})
	if err != nil {
		return nil, response.NewInternalError(err)
	}

	return &types.CreatePinResponse{PinID: pin.ID}, nil
}

func (s *PinService) ListPins(ctx context.Context, req *types.ListPinsRequest) (*types.PinListResponse, error) {
	limit, offset := normalizePage(req.Page, req.PageSize)

	var tagID uint64
	if category := NormalizeTag(req.Category); category != "" {
		tag, err := s.TagDAO.FindByName(ctx, category)
		if err != nil {
			return nil, response.NewInternalError(err)
		}
		if tag == nil {
			// 不存在的分类返回空页而不是报错
			return &types.PinListResponse{
				Data:       []*types.PinItem{},
				Pagination: types.Pagination{Page: req.Page, PageSize: limit},
			}, nil
		}
		tagID = tag.ID
	}

	pins, total, err := s.PinDAO.ListByPage(ctx, tagID, limit, offset)
	if err != nil {
		return nil, response.NewInternalError(err)
	}
	items, err := s.toPinItems(ctx, pins)
	if err != nil {
		return nil, err
	}

	return &types.PinListResponse{
		Data: items,
		Pagination: types.Pagination{
			Page:     maxInt(req.Page, types.DefaultPage),
			PageSize: limit,
			Total:    total,
			HasMore:  int64(offset+len(pins)) < total,
		},
	}, nil
}

func (s *PinService) Feed(ctx context.Context, userID int64, page, pageSize int) (*types.PinListResponse, error) {
	limit, offset := normalizePage(page, pageSize)

	followeeIDs, err := s.FollowDAO.ListFolloweeIDs(ctx, userID)
	if err != nil {
		return nil, response.NewInternalError(err)
	}

	pins, total, err := s.PinDAO.ListByUsers(ctx, followeeIDs, limit, offset)
	if err != nil {
		return nil, response.NewInternalError(err)
	}
	items, err := s.toPinItems(ctx, pins)
	if err != nil {
		return nil, err
	}

	return &types.PinListResponse{
		Data: items,
		Pagination: types.Pagination{
			Page:     maxInt(page, types.DefaultPage),
			PageSize: limit,
			Total:    total,
			HasMore:  int64(offset+len(pins)) < total,
		},
	}, nil
}

const searchLimit = 50

func (s *PinService) Search(ctx context.Context, query string) ([]*types.PinItem, error) {
	keyword := strings.TrimSpace(query)
	if keyword == "" {
		return []*types.PinItem{}, nil
	}

	// 文本匹配
	textPins, err := s.PinDAO.SearchByText(ctx, keyword, searchLimit)
	if err != nil {
		return nil, response.NewInternalError(err)
	}

	// 标签精确匹配
	var tagPins []*models.Pin
	if tag, err := s.TagDAO.FindByName(ctx, NormalizeTag(keyword)); err != nil {
		return nil, response.NewInternalError(err)
	} else if tag != nil {
		ids, err := s.PinTagDAO.ListPinIDsByTag(ctx, tag.ID)
		if err != nil {
			return nil, response.NewInternalError(err)
		}
		tagPins, err = s.PinDAO.ListByIDs(ctx, ids)
		if err != nil {
			return nil, response.NewInternalError(err)
		}
	}

	// 并集去重，按创建时间倒序
	seen := make(map[int64]struct{}, len(textPins)+len(tagPins))
	merged := make([]*models.Pin, 0, len(textPins)+len(tagPins))
	for _, p := range append(textPins, tagPins...) {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		merged = append(merged, p)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	if len(merged) > searchLimit {
		merged = merged[:searchLimit]
	}

	return s.toPinItems(ctx, merged)
}

func (s *PinService) GetPinDetail(ctx context.Context, viewerID, pinID int64) (*types.PinDetail, error) {
	pin, err := s.PinDAO.FindById(ctx, pinID)
	if err != nil {
		return nil, response.FromDBError(err, "Pin 不存在", "")
	}

	detail := &types.PinDetail{
		ID:          pin.ID,
		Title:       pin.Title,
		Description: pin.Description,
		ImageURL:    s.Oss.PublicURL(pin.ImageKey),
		Link:        pin.Link,
		Media:       decodeMedia(pin),
		ShareCode:   utils.GenHashID(s.Conf.App.HashSalt, pin.ID),
		CreatedAt:   pin.CreatedAt,
	}

	// 详情聚合并行取，各块互不依赖
	p := pool.New().WithContext(ctx).WithCancelOnError()

	p.Go(func(ctx context.Context) error {
		summaries, err := s.UserDAO.BatchGetSummary(ctx, []int64{pin.UserID})
		if err != nil {
			return err
		}
		detail.User = summaries[pin.UserID]
		return nil
	})

	p.Go(func(ctx context.Context) error {
		tags, err := s.TagDAO.ListNamesByPinID(ctx, pin.ID)
		if err != nil {
			return err
		}
		detail.Tags = tags
		return nil
	})

	p.Go(func(ctx context.Context) error {
		count, err := s.LikeDAO.CountByPin(ctx, pin.ID)
		if err != nil {
			return err
		}
		detail.LikeCount = count
		return nil
	})

	p.Go(func(ctx context.Context) error {
		comments, err := s.loadComments(ctx, pin.ID)
		if err != nil {
			return err
		}
		detail.Comments = comments
		detail.CommentCount = int64(len(comments))
		return nil
	})

	if viewerID > 0 {
		p.Go(func(ctx context.Context) error {
			liked, err := s.LikeDAO.IsLiked(ctx, pin.ID, viewerID)
			if err != nil {
				return err
			}
			detail.IsLiked = liked
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, response.NewInternalError(err)
	}
	return detail, nil
}

func (s *PinService) PinItemsByIDs(ctx context.Context, ids []int64) ([]*types.PinItem, error) {
	pins, err := s.PinDAO.ListByIDs(ctx, ids)
	if err != nil {
		return nil, response.NewInternalError(err)
	}

	// 保持调用方给定的顺序
	byID := make(map[int64]*models.Pin, len(pins))
	for _, p := range pins {
		byID[p.ID] = p
	}
	ordered := make([]*models.Pin, 0, len(pins))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return s.toPinItems(ctx, ordered)
}

func (s *PinService) loadComments(ctx context.Context, pinID int64) ([]*types.CommentItem, error) {
	comments, err := s.CommentDAO.ListByPin(ctx, pinID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]int64, 0, len(comments))
	for _, c := range comments {
		userIDs = append(userIDs, c.UserID)
	}
	summaries, err := s.UserDAO.BatchGetSummary(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	items := make([]*types.CommentItem, 0, len(comments))
	for _, c := range comments {
		items = append(items, &types.CommentItem{
			ID:        c.ID,
			PinID:     c.PinID,
			Content:   c.Content,
			User:      summaries[c.UserID],
			CreatedAt: c.CreatedAt,
		})
	}
	return items, nil
}

// toPinItems 列表项聚合：作者摘要 + 点赞/评论数批量取
func (s *PinService) toPinItems(ctx context.Context, pins []*models.Pin) ([]*types.PinItem, error) {
	items := make([]*types.PinItem, 0, len(pins))
	if len(pins) == 0 {
		return items, nil
	}

	pinIDs := make([]int64, 0, len(pins))
	userIDs := make([]int64, 0, len(pins))
	for _, p := range pins {
		pinIDs = append(pinIDs, p.ID)
		userIDs = append(userIDs, p.UserID)
	}

	var (
		summaries     map[int64]types.UserSummary
		likeCounts    map[int64]int64
		commentCounts map[int64]int64
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) (err error) {
		summaries, err = s.UserDAO.BatchGetSummary(ctx, userIDs)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		likeCounts, err = s.LikeDAO.BatchCountByPins(ctx, pinIDs)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		commentCounts, err = s.CommentDAO.BatchCountByPins(ctx, pinIDs)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, response.NewInternalError(err)
	}

	for _, pin := range pins {
		items = append(items, &types.PinItem{
			ID:           pin.ID,
			Title:        pin.Title,
			ImageURL:     s.Oss.PublicURL(pin.ImageKey),
			Media:        decodeMedia(pin),
			User:         summaries[pin.UserID],
			LikeCount:    likeCounts[pin.ID],
			CommentCount: commentCounts[pin.ID],
			CreatedAt:    pin.CreatedAt,
		})
	}
	return items, nil
}

func decodeMedia(pin *models.Pin) *types.MediaMeta {
	if len(pin.MediaData) == 0 {
		return nil
	}
	var media types.MediaMeta
	if err := json.Unmarshal(pin.MediaData, &media); err != nil {
		return nil
	}
	return &media
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
