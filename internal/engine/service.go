package engine

import (
	"database/sql"
	"strings"
	"sync"

	"forgeyourday/internal/storage"
)

// Service is the domain layer behind every screen: identity, daily tasks,
// the shared feed and the friend graph. All mutating operations are
// serialized through a single mutex; the backing store is read-modify-write
// over whole collections, so overlapping writers would lose updates.
type Service struct {
	mu sync.Mutex

	store    *storage.Store
	registry *storage.RegistryRepo
	tasks    *storage.TaskRepo
	friends  *storage.FriendRepo
	feed     *storage.FeedRepo
}

func NewService(db *sql.DB) *Service {
	kv := storage.NewStore(db)
	return &Service{
		store:    kv,
		registry: storage.NewRegistryRepo(kv),
		tasks:    storage.NewTaskRepo(kv),
		friends:  storage.NewFriendRepo(kv),
		feed:     storage.NewFeedRepo(kv),
	}
}

func normalizeInput(s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", ErrEmptyInput
	}
	return t, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func remove(list []string, s string) []string {
	out := list[:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}

// union appends the items of extra that a does not already contain,
// preserving order.
func union(a, extra []string) []string {
	out := append([]string(nil), a...)
	for _, v := range extra {
		if !contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
