package engine

import (
	"context"
	"errors"
	"testing"
)

func TestSendRequestValidation(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	mustRegister(t, svc, "alice", "bob")

	if err := svc.SendRequest(ctx, "alice", "   "); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("blank target: err=%v, want ErrEmptyInput", err)
	}
	if err := svc.SendRequest(ctx, "alice", "alice"); !errors.Is(err, ErrSelfReference) {
		t.Fatalf("self request: err=%v, want ErrSelfReference", err)
	}
	if err := svc.SendRequest(ctx, "alice", "mallory"); !errors.Is(err, ErrUnknownUser) {
		t.Fatalf("unknown target: err=%v, want ErrUnknownUser", err)
	}

	if err := svc.SendRequest(ctx, "alice", "bob"); err != nil {
		t.Fatalf("first request: %v", err)
	}
	if err := svc.SendRequest(ctx, "alice", "bob"); !errors.Is(err, ErrAlreadyRequested) {
		t.Fatalf("duplicate request: err=%v, want ErrAlreadyRequested", err)
	}

	if err := svc.AcceptRequest(ctx, "bob", "alice"); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if err := svc.SendRequest(ctx, "alice", "bob"); !errors.Is(err, ErrAlreadyFriends) {
		t.Fatalf("request to friend: err=%v, want ErrAlreadyFriends", err)
	}
}

func TestAcceptRequest(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	mustRegister(t, svc, "alice", "bob")
	if err := svc.SendRequest(ctx, "alice", "bob"); err != nil {
		t.Fatalf("request: %v", err)
	}
	if err := svc.AcceptRequest(ctx, "bob", "alice"); err != nil {
		t.Fatalf("accept: %v", err)
	}

	assertSymmetric(t, svc, "alice", "bob")

	pending, err := svc.Requests(ctx, "bob")
	if err != nil {
		t.Fatalf("requests: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("pending=%v, want empty after accept", pending)
	}

	// Accepting again must not create duplicate entries.
	if err := svc.AcceptRequest(ctx, "bob", "alice"); err != nil {
		t.Fatalf("second accept: %v", err)
	}
	assertSymmetric(t, svc, "alice", "bob")
	friends, err := svc.Friends(ctx, "bob")
	if err != nil {
		t.Fatalf("friends: %v", err)
	}
	if len(friends) != 1 {
		t.Fatalf("friends=%v, want exactly one entry", friends)
	}
}

func TestRejectRequest(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	mustRegister(t, svc, "alice", "bob")
	if err := svc.SendRequest(ctx, "alice", "bob"); err != nil {
		t.Fatalf("request: %v", err)
	}
	if err := svc.RejectRequest(ctx, "bob", "alice"); err != nil {
		t.Fatalf("reject: %v", err)
	}

	pending, err := svc.Requests(ctx, "bob")
	if err != nil {
		t.Fatalf("requests: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("pending=%v, want empty after reject", pending)
	}
	friends, err := svc.Friends(ctx, "bob")
	if err != nil {
		t.Fatalf("friends: %v", err)
	}
	if len(friends) != 0 {
		t.Fatalf("friends=%v, reject must not create a friendship", friends)
	}

	// The sender may try again after a rejection.
	if err := svc.SendRequest(ctx, "alice", "bob"); err != nil {
		t.Fatalf("re-request after reject: %v", err)
	}
}

func TestUnfriendRemovesBothSides(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	mustRegister(t, svc, "alice", "bob", "carol")
	befriend(t, svc, "alice", "bob")
	befriend(t, svc, "alice", "carol")

	if err := svc.Unfriend(ctx, "alice", "bob"); err != nil {
		t.Fatalf("unfriend: %v", err)
	}

	aliceFriends, err := svc.Friends(ctx, "alice")
	if err != nil {
		t.Fatalf("friends: %v", err)
	}
	if len(aliceFriends) != 1 || aliceFriends[0] != "carol" {
		t.Fatalf("alice friends=%v, want [carol]", aliceFriends)
	}
	bobFriends, err := svc.Friends(ctx, "bob")
	if err != nil {
		t.Fatalf("friends: %v", err)
	}
	if len(bobFriends) != 0 {
		t.Fatalf("bob friends=%v, want empty", bobFriends)
	}
	assertSymmetric(t, svc, "alice", "bob", "carol")
}

func TestFriendshipStaysSymmetric(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	mustRegister(t, svc, "alice", "bob", "carol", "dave")

	befriend(t, svc, "alice", "bob")
	befriend(t, svc, "bob", "carol")
	if err := svc.SendRequest(ctx, "dave", "alice"); err != nil {
		t.Fatalf("request: %v", err)
	}
	if err := svc.RejectRequest(ctx, "alice", "dave"); err != nil {
		t.Fatalf("reject: %v", err)
	}
	befriend(t, svc, "carol", "alice")
	if err := svc.Unfriend(ctx, "bob", "alice"); err != nil {
		t.Fatalf("unfriend: %v", err)
	}
	befriend(t, svc, "dave", "bob")

	assertSymmetric(t, svc, "alice", "bob", "carol", "dave")
}
