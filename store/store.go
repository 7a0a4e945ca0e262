package store

import (
	"sync"
)

// Action is anything dispatched to a Store. Reducers switch on the concrete type.
type Action interface{}

// Reducer computes the next state from the current state and an action. It must not mutate shared data.
type Reducer[S any] func(state S, action Action) S

// Subscriber is notified after every dispatch with the action and the resulting state.
type Subscriber[S any] func(action Action, state S)

// Store is an explicit state container. State only changes through Dispatch.
type Store[S any] struct {
	mu          sync.RWMutex
	state       S
	reducer     Reducer[S]
	subscribers map[int]Subscriber[S]
	nextID      int
	dispatchMu  sync.Mutex
}

// New creates a Store holding initial and updated by reducer.
func New[S any](initial S, reducer Reducer[S]) *Store[S] {
	return &Store[S]{
		state:       initial,
		reducer:     reducer,
		subscribers: make(map[int]Subscriber[S]),
	}
}

// State returns the current state.
func (s *Store[S]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies the reducer and then notifies subscribers in registration order.
// Dispatches are serialised so subscribers observe states in the order they were produced.
// A subscriber must not dispatch back into the same store.
func (s *Store[S]) Dispatch(action Action) S {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	s.state = s.reducer(s.state, action)
	next := s.state
	subs := s.snapshotSubscribers()
	s.mu.Unlock()

	for _, sub := range subs {
		sub(action, next)
	}
	return next
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store[S]) Subscribe(fn Subscriber[S]) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *Store[S]) snapshotSubscribers() []Subscriber[S] {
	subs := make([]Subscriber[S], 0, len(s.subscribers))
	for id := 0; id < s.nextID; id++ {
		if sub, ok := s.subscribers[id]; ok {
			subs = append(subs, sub)
		}
	}
	return subs
}
