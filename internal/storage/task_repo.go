package storage

import (
	"context"
	"time"
)

// TaskRepo persists each user's daily task list under two keys: the task
// array and the timestamp it was last saved.
type TaskRepo struct {
	kv KV
}

func NewTaskRepo(kv KV) *TaskRepo {
	return &TaskRepo{kv: kv}
}

// Load returns the user's task list, or nil when either backing key is
// absent (the list was never set or was expired away).
func (r *TaskRepo) Load(ctx context.Context, username string) (*TaskList, error) {
	var tasks []string
	ok, err := getJSON(ctx, r.kv, taskListKey(username), &tasks)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var savedAt time.Time
	ok, err = getJSON(ctx, r.kv, taskDateKey(username), &savedAt)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &TaskList{Tasks: tasks, SavedAt: savedAt}, nil
}

func (r *TaskRepo) Save(ctx context.Context, username string, list TaskList) error {
	if err := putJSON(ctx, r.kv, taskListKey(username), list.Tasks); err != nil {
		return err
	}
	return putJSON(ctx, r.kv, taskDateKey(username), list.SavedAt)
}

// Delete removes both backing keys.
func (r *TaskRepo) Delete(ctx context.Context, username string) error {
	if err := r.kv.Delete(ctx, taskListKey(username)); err != nil {
		return err
	}
	return r.kv.Delete(ctx, taskDateKey(username))
}
