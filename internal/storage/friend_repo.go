package storage

import "context"

// FriendRepo persists the friend graph as per-user adjacency lists plus
// per-user pending request lists. A friendship A–B appears in both
// friends_<A> and friends_<B>; keeping those two lists in agreement is the
// engine's job.
type FriendRepo struct {
	kv KV
}

func NewFriendRepo(kv KV) *FriendRepo {
	return &FriendRepo{kv: kv}
}

func (r *FriendRepo) Friends(ctx context.Context, username string) ([]string, error) {
	var friends []string
	if _, err := getJSON(ctx, r.kv, friendsKey(username), &friends); err != nil {
		return nil, err
	}
	return friends, nil
}

func (r *FriendRepo) SaveFriends(ctx context.Context, username string, friends []string) error {
	return putJSON(ctx, r.kv, friendsKey(username), friends)
}

func (r *FriendRepo) DeleteFriends(ctx context.Context, username string) error {
	return r.kv.Delete(ctx, friendsKey(username))
}

// Requests returns the pending requesters for username, in arrival order.
func (r *FriendRepo) Requests(ctx context.Context, username string) ([]string, error) {
	var requests []string
	if _, err := getJSON(ctx, r.kv, requestsKey(username), &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *FriendRepo) SaveRequests(ctx context.Context, username string, requests []string) error {
	return putJSON(ctx, r.kv, requestsKey(username), requests)
}

func (r *FriendRepo) DeleteRequests(ctx context.Context, username string) error {
	return r.kv.Delete(ctx, requestsKey(username))
}
