package engine

import (
	"context"
	"path/filepath"
	"testing"

	"forgeyourday/internal/storage"
)

func newTestService(t *testing.T) (*Service, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	svc := NewService(db)
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup
}

func mustRegister(t *testing.T, svc *Service, names ...string) {
	t.Helper()
	ctx := context.Background()
	for _, n := range names {
		if err := svc.Register(ctx, n, "forge-it"); err != nil {
			t.Fatalf("register %s: %v", n, err)
		}
	}
}

func befriend(t *testing.T, svc *Service, a, b string) {
	t.Helper()
	ctx := context.Background()
	if err := svc.SendRequest(ctx, a, b); err != nil {
		t.Fatalf("send request %s->%s: %v", a, b, err)
	}
	if err := svc.AcceptRequest(ctx, b, a); err != nil {
		t.Fatalf("accept request %s<-%s: %v", b, a, err)
	}
}

func assertSymmetric(t *testing.T, svc *Service, users ...string) {
	t.Helper()
	ctx := context.Background()
	sets := map[string]map[string]bool{}
	for _, u := range users {
		friends, err := svc.Friends(ctx, u)
		if err != nil {
			t.Fatalf("friends of %s: %v", u, err)
		}
		set := map[string]bool{}
		for _, f := range friends {
			if set[f] {
				t.Fatalf("duplicate friend %q in friends(%s)", f, u)
			}
			set[f] = true
		}
		sets[u] = set
	}
	for _, a := range users {
		for _, b := range users {
			if sets[a][b] != sets[b][a] {
				t.Fatalf("asymmetric edge: %s∈friends(%s)=%v but %s∈friends(%s)=%v",
					b, a, sets[a][b], a, b, sets[b][a])
			}
		}
	}
}
