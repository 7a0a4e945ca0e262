package navigation

import (
	"fmt"
	"sync"

	apperrors "github.com/jrsteele09/go-photo-session/internal/errors"
)

type Repo interface {
	Upsert(visitorID string, history History) error
	Get(visitorID string) (History, error)
	Delete(visitorID string) error
}

var _ Repo = (*InMemoryRepo)(nil)

// InMemoryRepo keeps each visitor's history in process memory
type InMemoryRepo struct {
	mu        sync.RWMutex
	histories map[string]History // visitorID -> history
}

func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		histories: make(map[string]History),
	}
}

// Upsert stores a copy of history so later changes by the caller are not shared
func (r *InMemoryRepo) Upsert(visitorID string, history History) error {
	if visitorID == "" {
		return fmt.Errorf("visitorID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.histories[visitorID] = history.clone()
	return nil
}

func (r *InMemoryRepo) Get(visitorID string) (History, error) {
	if visitorID == "" {
		return History{}, fmt.Errorf("visitorID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	history, ok := r.histories[visitorID]
	if !ok {
		return History{}, apperrors.ErrHistoryNotFound
	}
	return history.clone(), nil
}

func (r *InMemoryRepo) Delete(visitorID string) error {
	if visitorID == "" {
		return fmt.Errorf("visitorID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.histories, visitorID)
	return nil
}
