package storage

import (
	"context"
	"encoding/json"
	"time"
)

// FeedRepo persists the shared completed-task feed as a single JSON document
// (array of posts, newest-first).
//
// Two schema generations exist on disk. The current one carries a likedBy
// username set and structured comments; the legacy one carried a bare like
// count and comments as plain strings. Load transparently upgrades legacy
// posts: like authorship is unrecoverable so likedBy starts empty, and
// legacy comments keep their text with an empty author.
type FeedRepo struct {
	kv KV
}

func NewFeedRepo(kv KV) *FeedRepo {
	return &FeedRepo{kv: kv}
}

// rawPost is the decode target covering both schema generations. A post is
// legacy exactly when likedBy is absent.
type rawPost struct {
	ID          string          `json:"id"`
	Author      string          `json:"username"`
	Task        string          `json:"task"`
	Description string          `json:"description"`
	Image       []byte          `json:"imageData"`
	CreatedAt   time.Time       `json:"date"`
	Likes       *int            `json:"likes"`
	LikedBy     *[]string       `json:"likedBy"`
	Comments    json.RawMessage `json:"comments"`
}

// Load returns the feed. The second result reports whether any post was
// upgraded from the legacy shape, i.e. the document should be written back.
func (r *FeedRepo) Load(ctx context.Context) ([]Post, bool, error) {
	data, ok, err := r.kv.Get(ctx, keyCompletedTasks)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	var raw []rawPost
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false, &StorageError{Key: keyCompletedTasks, Err: err}
	}

	posts := make([]Post, 0, len(raw))
	migrated := false
	for _, rp := range raw {
		p := Post{
			ID:          rp.ID,
			Author:      rp.Author,
			Task:        rp.Task,
			Description: rp.Description,
			Image:       rp.Image,
			CreatedAt:   rp.CreatedAt,
		}
		if rp.LikedBy != nil {
			p.LikedBy = *rp.LikedBy
		} else {
			p.LikedBy = []string{}
			migrated = true
		}
		comments, upgraded, err := decodeComments(rp.Comments)
		if err != nil {
			return nil, false, &StorageError{Key: keyCompletedTasks, Err: err}
		}
		p.Comments = comments
		migrated = migrated || upgraded
		posts = append(posts, p)
	}
	return posts, migrated, nil
}

func decodeComments(raw json.RawMessage) ([]Comment, bool, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []Comment{}, false, nil
	}
	var comments []Comment
	if err := json.Unmarshal(raw, &comments); err == nil {
		return comments, false, nil
	}

	// Legacy shape: plain strings with no recorded author.
	var texts []string
	if err := json.Unmarshal(raw, &texts); err != nil {
		return nil, false, err
	}
	comments = make([]Comment, 0, len(texts))
	for _, t := range texts {
		comments = append(comments, Comment{Text: t})
	}
	return comments, true, nil
}

func (r *FeedRepo) Save(ctx context.Context, posts []Post) error {
	return putJSON(ctx, r.kv, keyCompletedTasks, posts)
}

// Clear removes the backing record entirely.
func (r *FeedRepo) Clear(ctx context.Context) error {
	return r.kv.Delete(ctx, keyCompletedTasks)
}
