package service

import (
	"Pinboard/types"
	"context"
	"testing"
)

func TestNotificationList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustRegister(t, "alice")
	bob := env.mustRegister(t, "bob")
	pinID := env.mustCreatePin(t, alice, "sunset")

	// 先关注再点赞，列表应该按时间倒序
	if _, err := env.Follow.ToggleFollow(ctx, bob, alice); err != nil {
		t.Fatal(err)
	}
	if _, err := env.Like.ToggleLike(ctx, bob, pinID); err != nil {
		t.Fatal(err)
	}

	list, err := env.Notification.List(ctx, alice, 1, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("notifications = %d, want 2", len(list))
	}
	if list[0].Type != types.NotificationTypeLike || list[1].Type != types.NotificationTypeFollow {
		t.Fatalf("unexpected order: %s, %s", list[0].Type, list[1].Type)
	}
	for _, n := range list {
		if n.Actor.ID != bob || n.Actor.Username != "bob" {
			t.Fatalf("actor not enriched: %+v", n.Actor)
		}
		if n.IsRead {
			t.Fatal("fresh notification should be unread")
		}
	}
	if list[0].PinID == nil || *list[0].PinID != pinID {
		t.Fatalf("like notification missing pin: %+v", list[0])
	}
	if list[0].PinThumb == "" {
		t.Fatal("like notification missing pin thumb")
	}
	// 关注通知没有 Pin
	if list[1].PinID != nil {
		t.Fatalf("follow notification should not carry pin: %+v", list[1])
	}
}

func TestMarkAllRead(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustRegister(t, "alice")
	bob := env.mustRegister(t, "bob")
	if _, err := env.Follow.ToggleFollow(ctx, bob, alice); err != nil {
		t.Fatal(err)
	}

	count, err := env.Notification.UnreadCount(ctx, alice)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("unread = %d, want 1", count)
	}

	if err := env.Notification.MarkAllRead(ctx, alice); err != nil {
		t.Fatal(err)
	}

	// 角标缓存清掉后回源 DB，应该是 0
	if got := env.badge.Get(ctx, alice); got != -1 {
		t.Fatalf("badge not cleared, got %d", got)
	}
	count, err = env.Notification.UnreadCount(ctx, alice)
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Fatalf("unread after mark = %d, want 0", count)
	}

	list, _ := env.Notification.List(ctx, alice, 1, 20)
	for _, n := range list {
		if !n.IsRead {
			t.Fatalf("notification %d still unread", n.ID)
		}
	}
}

func TestUnreadCountRebuildsBadge(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustRegister(t, "alice")
	bob := env.mustRegister(t, "bob")
	carol := env.mustRegister(t, "carol")
	for _, follower := range []int64{bob, carol} {
		if _, err := env.Follow.ToggleFollow(ctx, follower, alice); err != nil {
			t.Fatal(err)
		}
	}

	// 模拟缓存失效
	env.badge.Del(ctx, alice)

	count, err := env.Notification.UnreadCount(ctx, alice)
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Fatalf("unread = %d, want 2", count)
	}
	// 回源之后角标被重建
	if got := env.badge.Get(ctx, alice); got != 2 {
		t.Fatalf("badge not rebuilt, got %d", got)
	}
}
