package token

import "context"

// DefaultKey is the storage key the session token lives under.
const DefaultKey = "token"

// Store persists a single session token across process restarts.
// Get returns errors.ErrTokenNotFound when nothing has been stored.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}
