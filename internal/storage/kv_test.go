package storage

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestStore(t *testing.T) (*Store, func()) {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return NewStore(db), func() { _ = db.Close() }
}

func TestStorePutGetDelete(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	if _, ok, err := store.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing)=(ok=%v, err=%v), want absent with no error", ok, err)
	}

	if err := store.Put(ctx, "loggedInUsername", []byte("alice")); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, ok, err := store.Get(ctx, "loggedInUsername")
	if err != nil || !ok {
		t.Fatalf("Get=(ok=%v, err=%v), want present", ok, err)
	}
	if !bytes.Equal(got, []byte("alice")) {
		t.Fatalf("value=%q, want alice", got)
	}

	// Put on an existing key overwrites.
	if err := store.Put(ctx, "loggedInUsername", []byte("bob")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, err = store.Get(ctx, "loggedInUsername")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !bytes.Equal(got, []byte("bob")) {
		t.Fatalf("value=%q, want bob after overwrite", got)
	}

	if err := store.Delete(ctx, "loggedInUsername"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, err := store.Get(ctx, "loggedInUsername"); err != nil || ok {
		t.Fatalf("Get after delete=(ok=%v, err=%v), want absent", ok, err)
	}
	// Deleting an absent key is fine.
	if err := store.Delete(ctx, "loggedInUsername"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}

func TestStoreKeysPrefix(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	seed := map[string]string{
		"friends_alice":       "[]",
		"friends_bob":         "[]",
		"friendRequests_bob":  "[]",
		"dailyTasksArray_bob": "[]",
	}
	for k, v := range seed {
		if err := store.Put(ctx, k, []byte(v)); err != nil {
			t.Fatalf("put %s: %v", k, err)
		}
	}

	keys, err := store.Keys(ctx, "friends_")
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	want := []string{"friends_alice", "friends_bob"}
	if !reflect.DeepEqual(keys, want) {
		t.Fatalf("keys=%v, want %v", keys, want)
	}
}

func TestStoreUpdateCommitsAndRollsBack(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	err := store.Update(ctx, func(kv KV) error {
		if err := kv.Put(ctx, "friends_alice", []byte(`["bob"]`)); err != nil {
			return err
		}
		return kv.Put(ctx, "friends_bob", []byte(`["alice"]`))
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	for _, k := range []string{"friends_alice", "friends_bob"} {
		if _, ok, err := store.Get(ctx, k); err != nil || !ok {
			t.Fatalf("%s missing after commit (ok=%v, err=%v)", k, ok, err)
		}
	}

	boom := errors.New("boom")
	err = store.Update(ctx, func(kv KV) error {
		if err := kv.Delete(ctx, "friends_alice"); err != nil {
			return err
		}
		if err := kv.Put(ctx, "friends_carol", []byte(`["alice"]`)); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("update err=%v, want boom", err)
	}
	// Neither the delete nor the put survived.
	if _, ok, err := store.Get(ctx, "friends_alice"); err != nil || !ok {
		t.Fatalf("friends_alice gone after rollback (ok=%v, err=%v)", ok, err)
	}
	if _, ok, err := store.Get(ctx, "friends_carol"); err != nil || ok {
		t.Fatalf("friends_carol present after rollback (ok=%v, err=%v)", ok, err)
	}
}

func TestGetJSONReportsCorruptValue(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	if err := store.Put(ctx, "registeredUsernames", []byte("{not json")); err != nil {
		t.Fatalf("put: %v", err)
	}

	var names []string
	_, err := getJSON(ctx, store, "registeredUsernames", &names)
	if err == nil {
		t.Fatalf("corrupt value decoded without error")
	}
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("err=%T, want *StorageError", err)
	}
	if serr.Key != "registeredUsernames" {
		t.Fatalf("StorageError.Key=%q, want registeredUsernames", serr.Key)
	}
}
