package engine

import (
	"context"

	"forgeyourday/internal/storage"
)

// Friends returns the user's friend set, in insertion order.
func (s *Service) Friends(ctx context.Context, username string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.friends.Friends(ctx, username)
}

// Requests returns the pending requesters for the user, in arrival order.
func (s *Service) Requests(ctx context.Context, username string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.friends.Requests(ctx, username)
}

// SendRequest appends from to to's pending list. The target must be a
// registered user, not the sender, not already a friend, and not already
// holding a pending request from the sender.
func (s *Service) SendRequest(ctx context.Context, from, to string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, err := normalizeInput(to)
	if err != nil {
		return err
	}
	if target == from {
		return ErrSelfReference
	}

	names, err := s.registry.Usernames(ctx)
	if err != nil {
		return err
	}
	if !contains(names, target) {
		return ErrUnknownUser
	}

	mine, err := s.friends.Friends(ctx, from)
	if err != nil {
		return err
	}
	if contains(mine, target) {
		return ErrAlreadyFriends
	}

	pending, err := s.friends.Requests(ctx, target)
	if err != nil {
		return err
	}
	if contains(pending, from) {
		return ErrAlreadyRequested
	}
	return s.friends.SaveRequests(ctx, target, append(pending, from))
}

// AcceptRequest adds each side to the other's friend list and removes the
// pending entry. Idempotent: an edge that already exists on either side is
// not duplicated. Both adjacency lists are written in one transaction so the
// relation stays symmetric.
func (s *Service) AcceptRequest(ctx context.Context, self, requester string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Update(ctx, func(kv storage.KV) error {
		fr := storage.NewFriendRepo(kv)

		mine, err := fr.Friends(ctx, self)
		if err != nil {
			return err
		}
		if !contains(mine, requester) {
			if err := fr.SaveFriends(ctx, self, append(mine, requester)); err != nil {
				return err
			}
		}

		theirs, err := fr.Friends(ctx, requester)
		if err != nil {
			return err
		}
		if !contains(theirs, self) {
			if err := fr.SaveFriends(ctx, requester, append(theirs, self)); err != nil {
				return err
			}
		}

		pending, err := fr.Requests(ctx, self)
		if err != nil {
			return err
		}
		return fr.SaveRequests(ctx, self, remove(pending, requester))
	})
}

// RejectRequest drops the pending entry; no friendship is created.
func (s *Service) RejectRequest(ctx context.Context, self, requester string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := s.friends.Requests(ctx, self)
	if err != nil {
		return err
	}
	return s.friends.SaveRequests(ctx, self, remove(pending, requester))
}

// Unfriend removes the edge from both adjacency lists together.
func (s *Service) Unfriend(ctx context.Context, self, other string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Update(ctx, func(kv storage.KV) error {
		fr := storage.NewFriendRepo(kv)

		mine, err := fr.Friends(ctx, self)
		if err != nil {
			return err
		}
		if err := fr.SaveFriends(ctx, self, remove(mine, other)); err != nil {
			return err
		}

		theirs, err := fr.Friends(ctx, other)
		if err != nil {
			return err
		}
		return fr.SaveFriends(ctx, other, remove(theirs, self))
	})
}
