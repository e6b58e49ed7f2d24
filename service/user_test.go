package service

import (
	"Pinboard/pkg/response"
	"Pinboard/types"
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestRegisterDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.User.Register(ctx, &types.RegisterRequest{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected token")
	}

	u := resp.User
	if u.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %s", u.Email)
	}
	if u.DefaultTab != types.DefaultTabPins {
		t.Fatalf("default tab: %s", u.DefaultTab)
	}
	if !u.NotifyOnFollow || !u.NotifyOnLike || !u.NotifyOnComment {
		t.Fatal("notification preferences should default to on")
	}
	if u.Avatar == "" {
		t.Fatal("expected default avatar")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.mustRegister(t, "alice")

	_, err := env.User.Register(ctx, &types.RegisterRequest{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "password123",
	})

	var be *response.BizError
	if !errors.As(err, &be) || be.Code != http.StatusConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.mustRegister(t, "alice")

	_, err := env.User.Login(ctx, &types.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	var be *response.BizError
	if !errors.As(err, &be) || be.Code != http.StatusUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}

	// 不存在的邮箱同样报 401，不暴露用户是否存在
	_, err = env.User.Login(ctx, &types.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	if !errors.As(err, &be) || be.Code != http.StatusUnauthorized {
		t.Fatalf("expected unauthorized for unknown email, got %v", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id := env.mustRegister(t, "alice")

	resp, err := env.User.Login(ctx, &types.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.User.ID != id {
		t.Fatalf("user id mismatch: %d != %d", resp.User.ID, id)
	}
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id := env.mustRegister(t, "alice")

	bio := "hello world"
	tab := types.DefaultTabBoards
	off := false
	info, err := env.User.UpdateProfile(ctx, id, &types.UpdateProfileRequest{
		Bio:          &bio,
		DefaultTab:   &tab,
		NotifyOnLike: &off,
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if info.Bio != bio || info.DefaultTab != types.DefaultTabBoards {
		t.Fatalf("profile not updated: %+v", info)
	}
	if info.NotifyOnLike {
		t.Fatal("notify_on_like should be off")
	}
	// 未提交的字段不变
	if !info.NotifyOnFollow {
		t.Fatal("notify_on_follow should stay on")
	}

	badTab := "invalid"
	if _, err := env.User.UpdateProfile(ctx, id, &types.UpdateProfileRequest{DefaultTab: &badTab}); err == nil {
		t.Fatal("expected validation error for bad default_tab")
	}
}

func TestGetProfileCounts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustRegister(t, "alice")
	bob := env.mustRegister(t, "bob")

	env.mustCreatePin(t, alice, "first pin")
	env.mustCreatePin(t, alice, "second pin")

	if _, err := env.Follow.ToggleFollow(ctx, bob, alice); err != nil {
		t.Fatalf("follow: %v", err)
	}

	profile, err := env.User.GetProfile(ctx, bob, alice)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if profile.PinCount != 2 {
		t.Fatalf("pin count = %d, want 2", profile.PinCount)
	}
	if profile.FollowerCount != 1 {
		t.Fatalf("follower count = %d, want 1", profile.FollowerCount)
	}
	if !profile.IsFollowing {
		t.Fatal("viewer should be following")
	}

	// 访客视角
	anon, err := env.User.GetProfile(ctx, 0, alice)
	if err != nil {
		t.Fatalf("get profile anon: %v", err)
	}
	if anon.IsFollowing {
		t.Fatal("anonymous viewer cannot be following")
	}
}
