package storage

import "context"

// RegistryRepo owns the set of registered usernames, their credentials and
// the current session.
type RegistryRepo struct {
	kv KV
}

func NewRegistryRepo(kv KV) *RegistryRepo {
	return &RegistryRepo{kv: kv}
}

// Usernames returns every ever-registered username, in registration order.
func (r *RegistryRepo) Usernames(ctx context.Context) ([]string, error) {
	var names []string
	if _, err := getJSON(ctx, r.kv, keyRegisteredUsernames, &names); err != nil {
		return nil, err
	}
	return names, nil
}

func (r *RegistryRepo) SaveUsernames(ctx context.Context, names []string) error {
	return putJSON(ctx, r.kv, keyRegisteredUsernames, names)
}

func (r *RegistryRepo) PasswordHash(ctx context.Context, username string) ([]byte, bool, error) {
	return r.kv.Get(ctx, passwordKey(username))
}

func (r *RegistryRepo) SetPasswordHash(ctx context.Context, username string, hash []byte) error {
	return r.kv.Put(ctx, passwordKey(username), hash)
}

func (r *RegistryRepo) DeletePassword(ctx context.Context, username string) error {
	return r.kv.Delete(ctx, passwordKey(username))
}

// Session returns the logged-in username, if any.
func (r *RegistryRepo) Session(ctx context.Context) (string, bool, error) {
	var authed bool
	if _, err := getJSON(ctx, r.kv, keyIsAuthenticated, &authed); err != nil {
		return "", false, err
	}
	if !authed {
		return "", false, nil
	}
	var name string
	ok, err := getJSON(ctx, r.kv, keyLoggedInUsername, &name)
	if err != nil {
		return "", false, err
	}
	return name, ok && name != "", nil
}

func (r *RegistryRepo) SetSession(ctx context.Context, username string) error {
	if err := putJSON(ctx, r.kv, keyLoggedInUsername, username); err != nil {
		return err
	}
	return putJSON(ctx, r.kv, keyIsAuthenticated, true)
}

func (r *RegistryRepo) ClearSession(ctx context.Context) error {
	if err := r.kv.Delete(ctx, keyLoggedInUsername); err != nil {
		return err
	}
	return r.kv.Delete(ctx, keyIsAuthenticated)
}
