package service

import (
	"Pinboard/config"
	"Pinboard/dao"
	"Pinboard/models"
	"Pinboard/pkg/snowflake"
	"Pinboard/types"
	"context"
	"fmt"
	"mime/multipart"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 内存 sqlite，每个测试独立一份
// 用具名共享内存库：普通 ":memory:" 下连接池里每个连接各自一个空库
var testDBSeq atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.Users{},
		&models.Pin{},
		&models.Tag{},
		&models.PinTag{},
		&models.PinLike{},
		&models.Comment{},
		&models.Board{},
		&models.BoardPin{},
		&models.UserFollow{},
		&models.LinkedAccount{},
		&models.Conversation{},
		&models.ConversationParticipant{},
		&models.Message{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		App: &config.App{
			Env:           "test",
			DefaultAvatar: "https://cdn.test/default-avatar.png",
			HashSalt:      "test-salt",
		},
		Jwt: &config.Jwt{
			Secret:      "test-secret",
			ExpiresTime: 3600,
		},
	}
}

// fakeOss 不走网络，上传只回一个固定模式的 key
type fakeOss struct{}

func (f *fakeOss) UploadImage(ctx context.Context, header *multipart.FileHeader) (*types.UploadImageResp, error) {
	key := fmt.Sprintf("pin/test/%d.jpg", snowflake.GenID())
	return &types.UploadImageResp{
		Key:   key,
		URL:   f.PublicURL(key),
		Media: types.MediaMeta{Width: 640, Height: 480, Format: "jpeg"},
	}, nil
}

func (f *fakeOss) PublicURL(objectKey string) string {
	if objectKey == "" {
		return ""
	}
	return "https://cdn.test/" + objectKey
}

func (f *fakeOss) Delete(ctx context.Context, objectKey string) error { return nil }

// fakeBadge 内存版未读角标
type fakeBadge struct {
	counts map[int64]int64
}

func newFakeBadge() *fakeBadge {
	return &fakeBadge{counts: make(map[int64]int64)}
}

func (b *fakeBadge) Incr(ctx context.Context, uid int64) { b.counts[uid]++ }

func (b *fakeBadge) Get(ctx context.Context, uid int64) int64 {
	if n, ok := b.counts[uid]; ok {
		return n
	}
	return -1
}

func (b *fakeBadge) Set(ctx context.Context, uid int64, count int64) { b.counts[uid] = count }

func (b *fakeBadge) Del(ctx context.Context, uid int64) { delete(b.counts, uid) }

type nopSender struct{}

func (nopSender) Send(to, subject, html string) error { return nil }

// testEnv 全量服务栈，DB 换成 sqlite，外部依赖换成 fake
type testEnv struct {
	db    *gorm.DB
	badge *fakeBadge

	User         IUserService
	Follow       IFollowService
	Pin          IPinService
	Like         ILikeService
	Comment      ICommentService
	Board        IBoardService
	Conversation IConversationService
	Notification INotificationService

	UserDAO         *dao.Users
	TagDAO          *dao.TagDAO
	LikeDAO         *dao.PinLikeDAO
	FollowDAO       *dao.UserFollowDAO
	NotificationDAO *dao.NotificationDAO
	MessageDAO      *dao.MessageDAO
	ConvDAO         *dao.ConversationDAO
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	cfg := newTestConfig()
	ossSvc := &fakeOss{}
	badge := newFakeBadge()

	users := dao.NewUsers(db)
	pinDAO := dao.NewPinDAO(db)
	tagDAO := dao.NewTagDAO(db)
	pinTagDAO := dao.NewPinTagDAO(db)
	likeDAO := dao.NewPinLikeDAO(db)
	commentDAO := dao.NewCommentDAO(db)
	boardDAO := dao.NewBoardDAO(db)
	boardPinDAO := dao.NewBoardPinDAO(db)
	followDAO := dao.NewUserFollowDAO(db)
	linkedDAO := dao.NewLinkedAccountDAO(db)
	convDAO := dao.NewConversationDAO(db)
	participantDAO := dao.NewParticipantDAO(db)
	messageDAO := dao.NewMessageDAO(db)
	notificationDAO := dao.NewNotificationDAO(db)

	notificationSvc := &NotificationService{
		UserDAO:         users,
		NotificationDAO: notificationDAO,
		PinDAO:          pinDAO,
		Badge:           badge,
		Oss:             ossSvc,
	}
	pinSvc := &PinService{
		Db:         db,
		Conf:       cfg,
		PinDAO:     pinDAO,
		TagDAO:     tagDAO,
		PinTagDAO:  pinTagDAO,
		LikeDAO:    likeDAO,
		CommentDAO: commentDAO,
		UserDAO:    users,
		FollowDAO:  followDAO,
		Oss:        ossSvc,
	}

	return &testEnv{
		db:    db,
		badge: badge,
		User: &UserService{
			Conf:      cfg,
			UserDAO:   users,
			FollowDAO: followDAO,
			PinDAO:    pinDAO,
			BoardDAO:  boardDAO,
			Email:     nopSender{},
		},
		Follow: &FollowService{
			Db:        db,
			UserDAO:   users,
			FollowDAO: followDAO,
			LinkedDAO: linkedDAO,
			Notify:    notificationSvc,
		},
		Pin: pinSvc,
		Like: &LikeService{
			Db:      db,
			PinDAO:  pinDAO,
			LikeDAO: likeDAO,
			Notify:  notificationSvc,
		},
		Comment: &CommentService{
			Db:         db,
			PinDAO:     pinDAO,
			CommentDAO: commentDAO,
			UserDAO:    users,
			Notify:     notificationSvc,
		},
		Board: &BoardService{
			BoardDAO:    boardDAO,
			BoardPinDAO: boardPinDAO,
			PinDAO:      pinDAO,
			UserDAO:     users,
			Pin:         pinSvc,
			Oss:         ossSvc,
		},
		Conversation: &ConversationService{
			Db:             db,
			UserDAO:        users,
			ConvDAO:        convDAO,
			ParticipantDAO: participantDAO,
			MessageDAO:     messageDAO,
		},
		Notification:    notificationSvc,
		UserDAO:         users,
		TagDAO:          tagDAO,
		LikeDAO:         likeDAO,
		FollowDAO:       followDAO,
		NotificationDAO: notificationDAO,
		MessageDAO:      messageDAO,
		ConvDAO:         convDAO,
	}
}

// mustRegister 注册一个用户并返回 ID
func (e *testEnv) mustRegister(t *testing.T, username string) int64 {
	t.Helper()

	resp, err := e.User.Register(context.Background(), &types.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return resp.User.ID
}

// mustCreatePin 建一个 Pin，tags 可空
func (e *testEnv) mustCreatePin(t *testing.T, userID int64, title string, tags ...string) int64 {
	t.Helper()

	resp, err := e.Pin.CreatePin(context.Background(), userID, &types.CreatePinRequest{
		Title: title,
		Tags:  tags,
	}, nil)
	if err != nil {
		t.Fatalf("create pin %q: %v", title, err)
	}
	return resp.PinID
}
