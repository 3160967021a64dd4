package engine

import (
	"context"
	"reflect"
	"testing"
	"time"
)

// A feed document from the old schema: integer like counts and comments as
// plain strings.
const legacyFeedDoc = `[
	{
		"id": "a1",
		"username": "alice",
		"task": "Run 5k",
		"description": "felt great",
		"date": "2025-07-01T09:00:00Z",
		"likes": 3,
		"comments": ["nice!", "congrats"]
	},
	{
		"id": "b2",
		"username": "bob",
		"task": "Read",
		"description": "two chapters",
		"date": "2025-07-01T08:00:00Z",
		"likes": 0,
		"comments": []
	}
]`

func TestLegacyFeedMigration(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	if err := svc.store.Put(ctx, "completedTasks", []byte(legacyFeedDoc)); err != nil {
		t.Fatalf("seed legacy feed: %v", err)
	}

	if err := svc.MigrateLegacyFeed(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	once, _, err := svc.feed.Load(ctx)
	if err != nil {
		t.Fatalf("load after migrate: %v", err)
	}

	if len(once) != 2 {
		t.Fatalf("len(posts)=%d, want 2 (no duplicates)", len(once))
	}
	// Like authorship is unrecoverable; the set starts empty.
	if len(once[0].LikedBy) != 0 {
		t.Fatalf("likedBy=%v, want empty after migration", once[0].LikedBy)
	}
	// Comment text survives with no author.
	if len(once[0].Comments) != 2 || once[0].Comments[0].Text != "nice!" || once[0].Comments[0].Author != "" {
		t.Fatalf("comments=%+v, want preserved text with empty authors", once[0].Comments)
	}
	if once[0].Author != "alice" || once[0].Task != "Run 5k" {
		t.Fatalf("post fields lost in migration: %+v", once[0])
	}

	// Running it again is a no-op.
	if err := svc.MigrateLegacyFeed(ctx); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	twice, migrated, err := svc.feed.Load(ctx)
	if err != nil {
		t.Fatalf("load after second migrate: %v", err)
	}
	if migrated {
		t.Fatalf("already-migrated feed flagged for migration again")
	}
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("migration not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestCurrentSchemaFeedUntouched(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	now := time.Now()

	mustRegister(t, svc, "alice")
	submitPost(t, svc, "alice", "Run 5k", now)

	before, _, err := svc.feed.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := svc.MigrateLegacyFeed(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	after, migrated, err := svc.feed.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if migrated {
		t.Fatalf("current-schema feed flagged as legacy")
	}
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("migration changed a current-schema feed")
	}
}
