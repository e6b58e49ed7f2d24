package service

import (
	"Pinboard/models"
	"Pinboard/types"
	"context"
	"testing"
)

func TestToggleLike(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustRegister(t, "alice")
	bob := env.mustRegister(t, "bob")
	pinID := env.mustCreatePin(t, alice, "a pin")

	resp, err := env.Like.ToggleLike(ctx, bob, pinID)
	if err != nil {
		t.Fatalf("toggle like: %v", err)
	}
	if !resp.Liked || resp.LikeCount != 1 {
		t.Fatalf("got liked=%v count=%d, want true/1", resp.Liked, resp.LikeCount)
	}

	// 点赞数和点赞行一致
	var rows int64
	env.db.Model(&models.PinLike{}).Where("pin_id = ?", pinID).Count(&rows)
	if rows != resp.LikeCount {
		t.Fatalf("count %d != rows %d", resp.LikeCount, rows)
	}

	// 再切一次取消
	resp, err = env.Like.ToggleLike(ctx, bob, pinID)
	if err != nil {
		t.Fatalf("toggle like again: %v", err)
	}
	if resp.Liked || resp.LikeCount != 0 {
		t.Fatalf("got liked=%v count=%d, want false/0", resp.Liked, resp.LikeCount)
	}

	env.db.Model(&models.PinLike{}).Where("pin_id = ?", pinID).Count(&rows)
	if rows != 0 {
		t.Fatalf("like rows after untoggle = %d, want 0", rows)
	}
}

func TestDoubleToggleRestoresState(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustRegister(t, "alice")
	bob := env.mustRegister(t, "bob")
	carol := env.mustRegister(t, "carol")
	pinID := env.mustCreatePin(t, alice, "a pin")

	// carol 先点上一个赞作为基线
	if _, err := env.Like.ToggleLike(ctx, carol, pinID); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		if _, err := env.Like.ToggleLike(ctx, bob, pinID); err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
	}

	count, err := env.LikeDAO.CountByPin(ctx, pinID)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("count after double toggle = %d, want 1", count)
	}
	liked, _ := env.LikeDAO.IsLiked(ctx, pinID, bob)
	if liked {
		t.Fatal("bob should not be liking after double toggle")
	}
}

func TestSelfLikeNoNotification(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustRegister(t, "alice")
	pinID := env.mustCreatePin(t, alice, "my own pin")

	if _, err := env.Like.ToggleLike(ctx, alice, pinID); err != nil {
		t.Fatalf("self like: %v", err)
	}

	count, _ := env.NotificationDAO.CountUnread(ctx, alice)
	if count != 0 {
		t.Fatalf("self like produced %d notifications, want 0", count)
	}
}

func TestLikeNotification(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustRegister(t, "alice")
	bob := env.mustRegister(t, "bob")
	pinID := env.mustCreatePin(t, alice, "a pin")

	if _, err := env.Like.ToggleLike(ctx, bob, pinID); err != nil {
		t.Fatal(err)
	}

	items, err := env.Notification.List(ctx, alice, 1, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].Type != types.NotificationTypeLike {
		t.Fatalf("unexpected notifications: %+v", items)
	}
	if items[0].PinID == nil || *items[0].PinID != pinID {
		t.Fatalf("notification pin_id = %v, want %d", items[0].PinID, pinID)
	}
	if items[0].PinThumb == "" {
		t.Fatal("expected pin thumb url")
	}
}

func TestLikeNotificationPreferenceOff(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustRegister(t, "alice")
	bob := env.mustRegister(t, "bob")
	pinID := env.mustCreatePin(t, alice, "quiet pin")

	off := false
	if _, err := env.User.UpdateProfile(ctx, alice, &types.UpdateProfileRequest{NotifyOnLike: &off}); err != nil {
		t.Fatalf("update profile: %v", err)
	}

	resp, err := env.Like.ToggleLike(ctx, bob, pinID)
	if err != nil {
		t.Fatalf("like: %v", err)
	}
	// 点赞本身照常生效
	if !resp.Liked || resp.LikeCount != 1 {
		t.Fatalf("unexpected toggle result: %+v", resp)
	}

	notes, err := env.Notification.List(ctx, alice, 1, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(notes) != 0 {
		t.Fatalf("notifications = %d, want 0 when preference off", len(notes))
	}
	count, _ := env.NotificationDAO.CountUnread(ctx, alice)
	if count != 0 {
		t.Fatalf("unread = %d, want 0 when preference off", count)
	}
}

// 注册、发 Pin、点赞的完整链路
func TestRegisterPinLikeScenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.mustRegister(t, "author")
	fan := env.mustRegister(t, "fan")

	pinID := env.mustCreatePin(t, author, "scenic view", "nature", "travel")

	if _, err := env.Follow.ToggleFollow(ctx, fan, author); err != nil {
		t.Fatal(err)
	}
	if _, err := env.Like.ToggleLike(ctx, fan, pinID); err != nil {
		t.Fatal(err)
	}

	detail, err := env.Pin.GetPinDetail(ctx, fan, pinID)
	if err != nil {
		t.Fatal(err)
	}
	if detail.LikeCount != 1 || !detail.IsLiked {
		t.Fatalf("detail like state: count=%d liked=%v", detail.LikeCount, detail.IsLiked)
	}
	if len(detail.Tags) != 2 {
		t.Fatalf("tags = %v, want 2", detail.Tags)
	}

	// 作者收到 follow + like 两条通知
	unread, err := env.Notification.UnreadCount(ctx, author)
	if err != nil {
		t.Fatal(err)
	}
	if unread != 2 {
		t.Fatalf("author unread = %d, want 2", unread)
	}

	// 粉丝的动态流里有这条 Pin
	feed, err := env.Pin.Feed(ctx, fan, 1, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(feed.Data) != 1 || feed.Data[0].ID != pinID {
		t.Fatalf("unexpected feed: %+v", feed.Data)
	}
}
