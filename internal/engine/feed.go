package engine

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"forgeyourday/internal/storage"
)

// Posts hard-expire from every feed 24 hours after creation, viewed or not.
const postVisibilityWindow = 24 * time.Hour

// SubmitInput is a completed daily task on its way into the shared feed.
type SubmitInput struct {
	Author      string
	Task        string
	Description string
	Image       []byte
	Now         time.Time
}

// SubmitPost creates a post at the head of the shared feed and strikes the
// task off the author's daily list. Description and image are both required.
func (s *Service) SubmitPost(ctx context.Context, in SubmitInput) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return "", ErrMissingDescription
	}
	if len(in.Image) == 0 {
		return "", ErrMissingImage
	}

	posts, err := s.loadFeed(ctx)
	if err != nil {
		return "", err
	}
	post := storage.Post{
		ID:          uuid.NewString(),
		Author:      in.Author,
		Task:        in.Task,
		Description: desc,
		Image:       in.Image,
		CreatedAt:   in.Now,
		LikedBy:     []string{},
		Comments:    []storage.Comment{},
	}
	posts = append([]storage.Post{post}, posts...)
	if err := s.feed.Save(ctx, posts); err != nil {
		return "", err
	}

	if err := s.markTaskDone(ctx, in.Author, in.Task); err != nil {
		return "", err
	}
	return post.ID, nil
}

// MigrateLegacyFeed upgrades any posts still stored in the old like-count
// shape and persists the result. Safe to run any number of times; a feed
// already in the current shape is untouched.
func (s *Service) MigrateLegacyFeed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.loadFeed(ctx)
	return err
}

// loadFeed reads the shared feed, writing it back once when the decode
// upgraded legacy posts.
func (s *Service) loadFeed(ctx context.Context) ([]storage.Post, error) {
	posts, migrated, err := s.feed.Load(ctx)
	if err != nil {
		return nil, err
	}
	if migrated {
		if err := s.feed.Save(ctx, posts); err != nil {
			return nil, err
		}
	}
	return posts, nil
}

// VisibleFeed returns the posts username may see: their own and their
// friends', newer than 24 hours. Storage order (newest-first) is preserved.
func (s *Service) VisibleFeed(ctx context.Context, username string, now time.Time) ([]storage.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	friends, err := s.friends.Friends(ctx, username)
	if err != nil {
		return nil, err
	}
	posts, err := s.loadFeed(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := now.Add(-postVisibilityWindow)
	visible := make([]storage.Post, 0, len(posts))
	for _, p := range posts {
		if p.Author != username && !contains(friends, p.Author) {
			continue
		}
		if !p.CreatedAt.After(cutoff) {
			continue
		}
		visible = append(visible, p)
	}
	return visible, nil
}

// ToggleLike adds username to the post's like set, or removes it when
// already present.
func (s *Service) ToggleLike(ctx context.Context, postID, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.loadFeed(ctx)
	if err != nil {
		return err
	}
	for i := range posts {
		if posts[i].ID != postID {
			continue
		}
		if contains(posts[i].LikedBy, username) {
			posts[i].LikedBy = remove(posts[i].LikedBy, username)
		} else {
			posts[i].LikedBy = append(posts[i].LikedBy, username)
		}
		return s.feed.Save(ctx, posts)
	}
	return ErrPostNotFound
}

// AddComment appends a comment to the post. Blank comments are rejected.
func (s *Service) AddComment(ctx context.Context, postID, username, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := normalizeInput(text)
	if err != nil {
		return err
	}
	posts, err := s.loadFeed(ctx)
	if err != nil {
		return err
	}
	for i := range posts {
		if posts[i].ID != postID {
			continue
		}
		posts[i].Comments = append(posts[i].Comments, storage.Comment{Author: username, Text: t})
		return s.feed.Save(ctx, posts)
	}
	return ErrPostNotFound
}

// ClearFeed empties the shared feed and removes the backing record.
func (s *Service) ClearFeed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feed.Clear(ctx)
}

// CompletedToday counts the user's own posts from the last 24 hours, for
// the profile screen.
func (s *Service) CompletedToday(ctx context.Context, username string, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.loadFeed(ctx)
	if err != nil {
		return 0, err
	}
	cutoff := now.Add(-postVisibilityWindow)
	n := 0
	for _, p := range posts {
		if p.Author == username && p.CreatedAt.After(cutoff) {
			n++
		}
	}
	return n, nil
}
