package storage

import (
	"context"
	"testing"
	"time"
)

func TestFeedRepoLoadLegacyDocument(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()
	repo := NewFeedRepo(store)

	legacy := `[
		{
			"id": "a1",
			"username": "alice",
			"task": "Run 5k",
			"description": "felt great",
			"date": "2025-07-01T09:00:00Z",
			"likes": 3,
			"comments": ["nice!", "congrats"]
		}
	]`
	if err := store.Put(ctx, keyCompletedTasks, []byte(legacy)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	posts, migrated, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !migrated {
		t.Fatalf("legacy document not flagged for write-back")
	}
	if len(posts) != 1 {
		t.Fatalf("len(posts)=%d, want 1", len(posts))
	}
	p := posts[0]
	if p.ID != "a1" || p.Author != "alice" || p.Task != "Run 5k" {
		t.Fatalf("post fields=%+v", p)
	}
	if p.LikedBy == nil || len(p.LikedBy) != 0 {
		t.Fatalf("likedBy=%v, want empty non-nil set", p.LikedBy)
	}
	if len(p.Comments) != 2 {
		t.Fatalf("comments=%+v, want 2", p.Comments)
	}
	if p.Comments[0].Text != "nice!" || p.Comments[0].Author != "" {
		t.Fatalf("comment=%+v, want text kept and author empty", p.Comments[0])
	}
}

func TestFeedRepoRoundTrip(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()
	repo := NewFeedRepo(store)

	in := []Post{
		{
			ID:          "p1",
			Author:      "alice",
			Task:        "Run 5k",
			Description: "felt great",
			Image:       []byte{1, 2, 3},
			CreatedAt:   time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC),
			LikedBy:     []string{"bob"},
			Comments:    []Comment{{Author: "carol", Text: "way to go"}},
		},
	}
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, migrated, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if migrated {
		t.Fatalf("current-schema document flagged as legacy")
	}
	if len(out) != 1 {
		t.Fatalf("len(posts)=%d, want 1", len(out))
	}
	p := out[0]
	if p.ID != "p1" || len(p.LikedBy) != 1 || p.LikedBy[0] != "bob" {
		t.Fatalf("post=%+v", p)
	}
	if len(p.Comments) != 1 || p.Comments[0].Author != "carol" || p.Comments[0].Text != "way to go" {
		t.Fatalf("comments=%+v", p.Comments)
	}
	if !p.CreatedAt.Equal(in[0].CreatedAt) {
		t.Fatalf("createdAt=%v, want %v", p.CreatedAt, in[0].CreatedAt)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	out, _, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if out != nil {
		t.Fatalf("posts=%v after clear, want none", out)
	}
}

func TestFeedRepoLoadCorruptDocument(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()
	repo := NewFeedRepo(store)

	if err := store.Put(ctx, keyCompletedTasks, []byte("{broken")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, _, err := repo.Load(ctx); err == nil {
		t.Fatalf("corrupt feed decoded without error")
	}
}
