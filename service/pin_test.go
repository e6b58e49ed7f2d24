package service

import (
	"Pinboard/models"
	"Pinboard/pkg/response"
	"Pinboard/types"
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestTagNormalization(t *testing.T) {
	env := newTestEnv(t)

	alice := env.mustRegister(t, "alice")

	// 三种写法落到同一个标签
	env.mustCreatePin(t, alice, "pin one", "Art")
	env.mustCreatePin(t, alice, "pin two", "art")
	env.mustCreatePin(t, alice, "pin three", " ART ")

	var tags []models.Tag
	if err := env.db.Find(&tags).Error; err != nil {
		t.Fatal(err)
	}
	if len(tags) != 1 {
		t.Fatalf("tag rows = %d, want 1", len(tags))
	}
	if tags[0].Name != "art" {
		t.Fatalf("tag name = %q, want %q", tags[0].Name, "art")
	}

	var links int64
	env.db.Model(&models.PinTag{}).Where("tag_id = ?", tags[0].ID).Count(&links)
	if links != 3 {
		t.Fatalf("pin_tag rows = %d, want 3", links)
	}
}

func TestCreatePinDuplicateTags(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustRegister(t, "alice")
	pinID := env.mustCreatePin(t, alice, "a pin", "food", "Food", " food ")

	tags, err := env.TagDAO.ListNamesByPinID(ctx, pinID)
	if err != nil {
		t.Fatal(err)
	}
	if len(tags) != 1 || tags[0] != "food" {
		t.Fatalf("tags = %v, want [food]", tags)
	}
}

func TestListPinsByCategory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustRegister(t, "alice")
	env.mustCreatePin(t, alice, "cat pin", "cats")
	env.mustCreatePin(t, alice, "dog pin", "dogs")
	env.mustCreatePin(t, alice, "plain pin")

	all, err := env.Pin.ListPins(ctx, &types.ListPinsRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all.Data) != 3 || all.Pagination.Total != 3 {
		t.Fatalf("all pins = %d (total %d), want 3", len(all.Data), all.Pagination.Total)
	}

	cats, err := env.Pin.ListPins(ctx, &types.ListPinsRequest{Category: "Cats"})
	if err != nil {
		t.Fatal(err)
	}
	if len(cats.Data) != 1 || cats.Data[0].Title != "cat pin" {
		t.Fatalf("unexpected category result: %+v", cats.Data)
	}

	// 不存在的分类返回空页
	none, err := env.Pin.ListPins(ctx, &types.ListPinsRequest{Category: "nothing"})
	if err != nil {
		t.Fatal(err)
	}
	if len(none.Data) != 0 {
		t.Fatalf("unknown category returned %d pins", len(none.Data))
	}
}

func TestSearchTextAndTag(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustRegister(t, "alice")
	env.mustCreatePin(t, alice, "sunset photo", "photography")
	env.mustCreatePin(t, alice, "mountain view")
	// 标题不含关键词，只靠标签命中
	tagOnly := env.mustCreatePin(t, alice, "untitled shot", "sunset")

	items, err := env.Pin.Search(ctx, "sunset")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("search results = %d, want 2", len(items))
	}

	found := false
	for _, item := range items {
		if item.ID == tagOnly {
			found = true
		}
	}
	if !found {
		t.Fatal("tag-only match missing from search results")
	}

	// 大小写不敏感
	upper, err := env.Pin.Search(ctx, "SUNSET")
	if err != nil {
		t.Fatal(err)
	}
	if len(upper) != 2 {
		t.Fatalf("case-insensitive search = %d, want 2", len(upper))
	}
}

func TestPinDetail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustRegister(t, "alice")
	bob := env.mustRegister(t, "bob")
	pinID := env.mustCreatePin(t, alice, "detailed pin", "art", "design")

	if _, err := env.Like.ToggleLike(ctx, bob, pinID); err != nil {
		t.Fatal(err)
	}
	if _, err := env.Comment.AddComment(ctx, bob, pinID, &types.CreateCommentRequest{Content: "nice"}); err != nil {
		t.Fatal(err)
	}

	detail, err := env.Pin.GetPinDetail(ctx, bob, pinID)
	if err != nil {
		t.Fatal(err)
	}
	if detail.User.ID != alice {
		t.Fatalf("author = %d, want %d", detail.User.ID, alice)
	}
	if detail.LikeCount != 1 || detail.CommentCount != 1 {
		t.Fatalf("counts: like=%d comment=%d, want 1/1", detail.LikeCount, detail.CommentCount)
	}
	if !detail.IsLiked {
		t.Fatal("viewer liked the pin")
	}
	if detail.ShareCode == "" {
		t.Fatal("expected share code")
	}
	if detail.ImageURL == "" {
		t.Fatal("expected image url")
	}
	if detail.Media == nil || detail.Media.Format != "jpeg" {
		t.Fatalf("unexpected media meta: %+v", detail.Media)
	}
	if len(detail.Comments) != 1 || detail.Comments[0].User.ID != bob {
		t.Fatalf("unexpected comments: %+v", detail.Comments)
	}

	// 访客视角 is_liked 恒为 false
	anon, err := env.Pin.GetPinDetail(ctx, 0, pinID)
	if err != nil {
		t.Fatal(err)
	}
	if anon.IsLiked {
		t.Fatal("anonymous viewer cannot have liked")
	}
}

func TestCommentNotification(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustRegister(t, "alice")
	bob := env.mustRegister(t, "bob")
	pinID := env.mustCreatePin(t, alice, "a pin")

	item, err := env.Comment.AddComment(ctx, bob, pinID, &types.CreateCommentRequest{Content: "great"})
	if err != nil {
		t.Fatal(err)
	}
	if item.User.ID != bob || item.Content != "great" {
		t.Fatalf("unexpected comment: %+v", item)
	}

	notes, err := env.Notification.List(ctx, alice, 1, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(notes) != 1 || notes[0].Type != types.NotificationTypeComment {
		t.Fatalf("unexpected notifications: %+v", notes)
	}

	// 作者自评不通知
	if _, err := env.Comment.AddComment(ctx, alice, pinID, &types.CreateCommentRequest{Content: "thanks"}); err != nil {
		t.Fatal(err)
	}
	count, _ := env.NotificationDAO.CountUnread(ctx, alice)
	if count != 1 {
		t.Fatalf("unread after self comment = %d, want 1", count)
	}
}

func TestCommentNotificationPreferenceOff(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustRegister(t, "alice")
	bob := env.mustRegister(t, "bob")
	pinID := env.mustCreatePin(t, alice, "a pin")

	off := false
	if _, err := env.User.UpdateProfile(ctx, alice, &types.UpdateProfileRequest{NotifyOnComment: &off}); err != nil {
		t.Fatalf("update profile: %v", err)
	}

	// 评论照常写入
	if _, err := env.Comment.AddComment(ctx, bob, pinID, &types.CreateCommentRequest{Content: "still here"}); err != nil {
		t.Fatal(err)
	}
	comments, err := env.Comment.ListComments(ctx, pinID)
	if err != nil {
		t.Fatal(err)
	}
	if len(comments) != 1 {
		t.Fatalf("comments = %d, want 1", len(comments))
	}

	notes, err := env.Notification.List(ctx, alice, 1, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(notes) != 0 {
		t.Fatalf("notifications = %d, want 0 when preference off", len(notes))
	}
}

func TestCreatePinBlankTitle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustRegister(t, "alice")

	var be *response.BizError
	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := env.Pin.CreatePin(ctx, alice, &types.CreatePinRequest{Title: title}, nil)
		if !errors.As(err, &be) || be.Code != http.StatusBadRequest {
			t.Fatalf("title %q: expected validation error, got %v", title, err)
		}
	}
}

func TestFeedOnlyFollowed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustRegister(t, "alice")
	bob := env.mustRegister(t, "bob")
	carol := env.mustRegister(t, "carol")

	env.mustCreatePin(t, alice, "alice pin")
	env.mustCreatePin(t, bob, "bob pin")

	if _, err := env.Follow.ToggleFollow(ctx, carol, alice); err != nil {
		t.Fatal(err)
	}

	feed, err := env.Pin.Feed(ctx, carol, 1, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(feed.Data) != 1 || feed.Data[0].Title != "alice pin" {
		t.Fatalf("unexpected feed: %+v", feed.Data)
	}

	// 没关注任何人时动态流为空
	empty, err := env.Pin.Feed(ctx, bob, 1, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(empty.Data) != 0 {
		t.Fatalf("feed without follows = %d, want 0", len(empty.Data))
	}
}
