package store_test

import (
	"sync"
	"testing"

	"github.com/jrsteele09/go-photo-session/store"
	"github.com/stretchr/testify/require"
)

type increment struct{ by int }
type reset struct{}

func counterReducer(state int, action store.Action) int {
	switch a := action.(type) {
	case increment:
		return state + a.by
	case reset:
		return 0
	default:
		return state
	}
}

func TestStore_Dispatch(t *testing.T) {
	s := store.New(0, counterReducer)

	require.Equal(t, 0, s.State())
	require.Equal(t, 2, s.Dispatch(increment{by: 2}))
	require.Equal(t, 5, s.Dispatch(increment{by: 3}))
	require.Equal(t, 5, s.Dispatch("unknown action"))
	require.Equal(t, 0, s.Dispatch(reset{}))
}

func TestStore_Subscribe(t *testing.T) {
	s := store.New(0, counterReducer)

	var seen []int
	var order []string
	unsubscribe := s.Subscribe(func(_ store.Action, state int) {
		seen = append(seen, state)
		order = append(order, "first")
	})
	s.Subscribe(func(store.Action, int) {
		order = append(order, "second")
	})

	s.Dispatch(increment{by: 1})
	s.Dispatch(increment{by: 1})
	require.Equal(t, []int{1, 2}, seen)
	require.Equal(t, []string{"first", "second", "first", "second"}, order)

	unsubscribe()
	s.Dispatch(increment{by: 1})
	require.Equal(t, []int{1, 2}, seen)
	require.Equal(t, 3, s.State())
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	s := store.New(0, counterReducer)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(increment{by: 1})
		}()
	}
	wg.Wait()

	require.Equal(t, 50, s.State())
}
