package engine

import (
	"context"

	"forgeyourday/internal/storage"
)

// migrateUsername rewrites every record keyed by or referencing oldName.
// Every step merges via set union rather than overwriting, so a partial
// prior run (or running the whole migration twice) converges to the same
// state.
//
// Order: the user's own records first (friends, requests, tasks), then
// references held by other users, then the shared feed.
func migrateUsername(ctx context.Context, kv storage.KV, oldName, newName string) error {
	friends := storage.NewFriendRepo(kv)
	tasks := storage.NewTaskRepo(kv)
	feed := storage.NewFeedRepo(kv)
	reg := storage.NewRegistryRepo(kv)

	// Friend list: union into the new name's list, drop the old record.
	oldFriends, err := friends.Friends(ctx, oldName)
	if err != nil {
		return err
	}
	if len(oldFriends) > 0 {
		newFriends, err := friends.Friends(ctx, newName)
		if err != nil {
			return err
		}
		if err := friends.SaveFriends(ctx, newName, union(newFriends, oldFriends)); err != nil {
			return err
		}
	}
	if err := friends.DeleteFriends(ctx, oldName); err != nil {
		return err
	}

	// Pending requests, same treatment.
	oldRequests, err := friends.Requests(ctx, oldName)
	if err != nil {
		return err
	}
	if len(oldRequests) > 0 {
		newRequests, err := friends.Requests(ctx, newName)
		if err != nil {
			return err
		}
		if err := friends.SaveRequests(ctx, newName, union(newRequests, oldRequests)); err != nil {
			return err
		}
	}
	if err := friends.DeleteRequests(ctx, oldName); err != nil {
		return err
	}

	// Daily tasks: union of task strings; the saved timestamp carries over
	// only when the new name has none of its own.
	oldList, err := tasks.Load(ctx, oldName)
	if err != nil {
		return err
	}
	if oldList != nil {
		newList, err := tasks.Load(ctx, newName)
		if err != nil {
			return err
		}
		if newList == nil {
			newList = &storage.TaskList{SavedAt: oldList.SavedAt}
		}
		newList.Tasks = union(newList.Tasks, oldList.Tasks)
		if err := tasks.Save(ctx, newName, *newList); err != nil {
			return err
		}
	}
	if err := tasks.Delete(ctx, oldName); err != nil {
		return err
	}

	// Every other user's adjacency and pending lists.
	names, err := reg.Usernames(ctx)
	if err != nil {
		return err
	}
	for _, u := range names {
		if u == oldName || u == newName {
			continue
		}
		fl, err := friends.Friends(ctx, u)
		if err != nil {
			return err
		}
		if replaced, changed := replaceName(fl, oldName, newName); changed {
			if err := friends.SaveFriends(ctx, u, replaced); err != nil {
				return err
			}
		}
		rl, err := friends.Requests(ctx, u)
		if err != nil {
			return err
		}
		if replaced, changed := replaceName(rl, oldName, newName); changed {
			if err := friends.SaveRequests(ctx, u, replaced); err != nil {
				return err
			}
		}
	}

	// The shared feed: authorship, like sets and comment authors. Persisted
	// once, and only if something actually changed.
	posts, _, err := feed.Load(ctx)
	if err != nil {
		return err
	}
	changed := false
	for i := range posts {
		if posts[i].Author == oldName {
			posts[i].Author = newName
			changed = true
		}
		if replaced, c := replaceName(posts[i].LikedBy, oldName, newName); c {
			posts[i].LikedBy = replaced
			changed = true
		}
		for j := range posts[i].Comments {
			if posts[i].Comments[j].Author == oldName {
				posts[i].Comments[j].Author = newName
				changed = true
			}
		}
	}
	if changed {
		return feed.Save(ctx, posts)
	}
	return nil
}

// replaceName swaps oldName for newName in list, deduplicating in case both
// were already present. The bool reports whether anything changed.
func replaceName(list []string, oldName, newName string) ([]string, bool) {
	if !contains(list, oldName) {
		return list, false
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v == oldName {
			v = newName
		}
		if !contains(out, v) {
			out = append(out, v)
		}
	}
	return out, true
}
