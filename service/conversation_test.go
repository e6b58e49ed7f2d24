package service

import (
	"Pinboard/pkg/response"
	"Pinboard/types"
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestInitiateIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustRegister(t, "alice")
	bob := env.mustRegister(t, "bob")

	first, err := env.Conversation.Initiate(ctx, alice, &types.InitiateConversationRequest{RecipientID: bob})
	if err != nil {
		t.Fatalf("initiate: %v", err)
	}

	// 同一方向重复发起
	again, err := env.Conversation.Initiate(ctx, alice, &types.InitiateConversationRequest{RecipientID: bob})
	if err != nil {
		t.Fatal(err)
	}
	if again.ConversationID != first.ConversationID {
		t.Fatalf("repeat initiate created new conversation: %d != %d", again.ConversationID, first.ConversationID)
	}

	// 反方向发起也拿到同一个会话
	reverse, err := env.Conversation.Initiate(ctx, bob, &types.InitiateConversationRequest{RecipientID: alice})
	if err != nil {
		t.Fatal(err)
	}
	if reverse.ConversationID != first.ConversationID {
		t.Fatalf("reverse initiate created new conversation: %d != %d", reverse.ConversationID, first.ConversationID)
	}
}

func TestInitiateSelf(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustRegister(t, "alice")

	_, err := env.Conversation.Initiate(ctx, alice, &types.InitiateConversationRequest{RecipientID: alice})
	var be *response.BizError
	if !errors.As(err, &be) || be.Code != http.StatusBadRequest {
		t.Fatalf("expected invalid operation, got %v", err)
	}
}

func TestSendAndListMessages(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustRegister(t, "alice")
	bob := env.mustRegister(t, "bob")

	conv, err := env.Conversation.Initiate(ctx, alice, &types.InitiateConversationRequest{RecipientID: bob})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := env.Conversation.SendMessage(ctx, alice, conv.ConversationID, &types.SendMessageRequest{Content: "hi bob"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := env.Conversation.SendMessage(ctx, bob, conv.ConversationID, &types.SendMessageRequest{Content: "hi alice"}); err != nil {
		t.Fatalf("reply: %v", err)
	}

	msgs, err := env.Conversation.GetMessages(ctx, alice, conv.ConversationID)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 2 {
		t.Fatalf("messages = %d, want 2", len(msgs))
	}
	// 时间正序
	if msgs[0].Content != "hi bob" || msgs[1].Content != "hi alice" {
		t.Fatalf("unexpected order: %+v", msgs)
	}
}

func TestUnreadAndReadOnFetch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustRegister(t, "alice")
	bob := env.mustRegister(t, "bob")

	conv, err := env.Conversation.Initiate(ctx, alice, &types.InitiateConversationRequest{RecipientID: bob})
	if err != nil {
		t.Fatal(err)
	}

	for _, content := range []string{"one", "two"} {
		if _, err := env.Conversation.SendMessage(ctx, alice, conv.ConversationID, &types.SendMessageRequest{Content: content}); err != nil {
			t.Fatal(err)
		}
	}

	// bob 的会话列表里未读 2
	list, err := env.Conversation.ListConversations(ctx, bob)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Fatalf("conversations = %d, want 1", len(list))
	}
	if list[0].UnreadCount != 2 {
		t.Fatalf("unread = %d, want 2", list[0].UnreadCount)
	}
	if list[0].Peer.ID != alice {
		t.Fatalf("peer = %d, want %d", list[0].Peer.ID, alice)
	}
	if list[0].LastMessage != "two" {
		t.Fatalf("last message = %q, want %q", list[0].LastMessage, "two")
	}

	// 拉取即已读
	if _, err := env.Conversation.GetMessages(ctx, bob, conv.ConversationID); err != nil {
		t.Fatal(err)
	}
	list, _ = env.Conversation.ListConversations(ctx, bob)
	if list[0].UnreadCount != 0 {
		t.Fatalf("unread after fetch = %d, want 0", list[0].UnreadCount)
	}

	// 发送方的未读不受影响
	aliceList, _ := env.Conversation.ListConversations(ctx, alice)
	if len(aliceList) != 1 || aliceList[0].UnreadCount != 0 {
		t.Fatalf("unexpected sender list: %+v", aliceList)
	}
}

func TestConversationAccessControl(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustRegister(t, "alice")
	bob := env.mustRegister(t, "bob")
	mallory := env.mustRegister(t, "mallory")

	conv, err := env.Conversation.Initiate(ctx, alice, &types.InitiateConversationRequest{RecipientID: bob})
	if err != nil {
		t.Fatal(err)
	}

	// 非成员读写都报 404，不暴露会话存在性
	var be *response.BizError
	_, err = env.Conversation.GetMessages(ctx, mallory, conv.ConversationID)
	if !errors.As(err, &be) || be.Code != http.StatusNotFound {
		t.Fatalf("expected not found for outsider read, got %v", err)
	}
	_, err = env.Conversation.SendMessage(ctx, mallory, conv.ConversationID, &types.SendMessageRequest{Content: "intrude"})
	if !errors.As(err, &be) || be.Code != http.StatusNotFound {
		t.Fatalf("expected not found for outsider send, got %v", err)
	}
}

func TestConversationOrdering(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustRegister(t, "alice")
	bob := env.mustRegister(t, "bob")
	carol := env.mustRegister(t, "carol")

	convBob, err := env.Conversation.Initiate(ctx, alice, &types.InitiateConversationRequest{RecipientID: bob})
	if err != nil {
		t.Fatal(err)
	}
	convCarol, err := env.Conversation.Initiate(ctx, alice, &types.InitiateConversationRequest{RecipientID: carol})
	if err != nil {
		t.Fatal(err)
	}

	// 先给 carol 发，再给 bob 发，bob 的会话应排前面
	if _, err := env.Conversation.SendMessage(ctx, alice, convCarol.ConversationID, &types.SendMessageRequest{Content: "to carol"}); err != nil {
		t.Fatal(err)
	}
	if _, err := env.Conversation.SendMessage(ctx, alice, convBob.ConversationID, &types.SendMessageRequest{Content: "to bob"}); err != nil {
		t.Fatal(err)
	}

	list, err := env.Conversation.ListConversations(ctx, alice)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("conversations = %d, want 2", len(list))
	}
	if list[0].ConversationID != convBob.ConversationID {
		t.Fatalf("expected most recently active first, got %d", list[0].ConversationID)
	}
}
