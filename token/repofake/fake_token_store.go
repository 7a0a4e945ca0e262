package tokenfakerepo

import (
	"context"
	"sync"

	apperrors "github.com/jrsteele09/go-photo-session/internal/errors"
	"github.com/jrsteele09/go-photo-session/token"
)

var _ token.Store = (*FakeTokenStore)(nil)

// FakeTokenStore keeps the token in process memory. It is lost on restart.
type FakeTokenStore struct {
	token  string
	stored bool
	lock   sync.RWMutex
}

func NewFakeTokenStore() *FakeTokenStore {
	return &FakeTokenStore{}
}

func (ts *FakeTokenStore) Get(_ context.Context) (string, error) {
	ts.lock.RLock()
	defer ts.lock.RUnlock()

	if !ts.stored {
		return "", apperrors.ErrTokenNotFound
	}
	return ts.token, nil
}

func (ts *FakeTokenStore) Set(_ context.Context, t string) error {
	ts.lock.Lock()
	defer ts.lock.Unlock()

	ts.token = t
	ts.stored = true
	return nil
}

func (ts *FakeTokenStore) Delete(_ context.Context) error {
	ts.lock.Lock()
	defer ts.lock.Unlock()

	ts.token = ""
	ts.stored = false
	return nil
}
