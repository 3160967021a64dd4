package engine

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"forgeyourday/internal/storage"
)

// Register adds a new username to the registry with a bcrypt-hashed
// credential. The username is trimmed first; empty or already-taken names
// are rejected.
func (s *Service) Register(ctx context.Context, username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, err := normalizeInput(username)
	if err != nil {
		return err
	}
	if password == "" {
		return ErrEmptyInput
	}

	names, err := s.registry.Usernames(ctx)
	if err != nil {
		return err
	}
	if contains(names, name) {
		return ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.registry.SetPasswordHash(ctx, name, hash); err != nil {
		return err
	}
	return s.registry.SaveUsernames(ctx, append(names, name))
}

// Authenticate checks the credential and opens a session. The session token
// is the username itself; there is no separate session id.
func (s *Service) Authenticate(ctx context.Context, username, password string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := strings.TrimSpace(username)
	if name == "" {
		return "", ErrInvalidCredentials
	}
	names, err := s.registry.Usernames(ctx)
	if err != nil {
		return "", err
	}
	if !contains(names, name) {
		return "", ErrInvalidCredentials
	}

	hash, ok, err := s.registry.PasswordHash(ctx, name)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	if err := s.registry.SetSession(ctx, name); err != nil {
		return "", err
	}
	return name, nil
}

func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.ClearSession(ctx)
}

// CurrentUser returns the logged-in username or ErrNotLoggedIn.
func (s *Service) CurrentUser(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, ok, err := s.registry.Session(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNotLoggedIn
	}
	return name, nil
}

// Rename changes oldName to newName in the registry and rewrites every
// record that references the old name (friend lists, pending requests, the
// daily task list, feed authorship, likes and comments). The whole rewrite
// runs in one transaction so a failure leaves the old state intact.
func (s *Service) Rename(ctx context.Context, oldName, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, err := normalizeInput(newName)
	if err != nil {
		return err
	}
	if name == oldName {
		return nil
	}

	return s.store.Update(ctx, func(kv storage.KV) error {
		reg := storage.NewRegistryRepo(kv)

		names, err := reg.Usernames(ctx)
		if err != nil {
			return err
		}
		if !contains(names, oldName) {
			return ErrUnknownUser
		}
		if contains(names, name) {
			return ErrUsernameTaken
		}

		for i, n := range names {
			if n == oldName {
				names[i] = name
			}
		}
		if err := reg.SaveUsernames(ctx, names); err != nil {
			return err
		}

		// Credentials and session follow the registry entry.
		hash, ok, err := reg.PasswordHash(ctx, oldName)
		if err != nil {
			return err
		}
		if ok {
			if err := reg.SetPasswordHash(ctx, name, hash); err != nil {
				return err
			}
		}
		if err := reg.DeletePassword(ctx, oldName); err != nil {
			return err
		}
		session, ok, err := reg.Session(ctx)
		if err != nil {
			return err
		}
		if ok && session == oldName {
			if err := reg.SetSession(ctx, name); err != nil {
				return err
			}
		}

		return migrateUsername(ctx, kv, oldName, name)
	})
}
