package alerts

import (
	"github.com/google/uuid"
	"github.com/jrsteele09/go-photo-session/sessions"
	"github.com/jrsteele09/go-photo-session/store"
	"github.com/rs/zerolog/log"
)

type Color string

const (
	ColorGreen Color = "green"
	ColorRed   Color = "red"
)

// Notification is a transient message shown to the user
type Notification struct {
	Message string `json:"message"`
	Color   Color  `json:"color"`
	ID      string `json:"alertId"`
}

// State is the ordered list of notifications currently on screen
type State struct {
	Alerts []Notification
}

// Add appends a notification.
type Add struct {
	Notification Notification
}

// Remove drops the notification with the given ID, if present.
type Remove struct {
	ID string
}

func NewStore() *store.Store[State] {
	return store.New(State{}, Reduce)
}

// Reduce returns a new slice on every change so earlier snapshots are never mutated.
func Reduce(state State, action store.Action) State {
	switch a := action.(type) {
	case Add:
		next := make([]Notification, 0, len(state.Alerts)+1)
		next = append(next, state.Alerts...)
		state.Alerts = append(next, a.Notification)

	case Remove:
		next := make([]Notification, 0, len(state.Alerts))
		for _, n := range state.Alerts {
			if n.ID != a.ID {
				next = append(next, n)
			}
		}
		state.Alerts = next
	}
	return state
}

// Notifier turns completed session operations into notifications.
type Notifier struct {
	store *store.Store[State]
	newID func() string
}

func NewNotifier(st *store.Store[State]) *Notifier {
	return &Notifier{
		store: st,
		newID: func() string { return uuid.New().String() },
	}
}

// HandleResult adds exactly one notification: green for success, red otherwise.
// It has the shape of a sessions.ResultListener.
func (n *Notifier) HandleResult(result sessions.Result) {
	color := ColorGreen
	if !result.OK {
		color = ColorRed
	}
	notification := Notification{Message: result.Message, Color: color, ID: n.newID()}
	log.Debug().Str("alertId", notification.ID).Str("color", string(color)).Msg(notification.Message)
	n.store.Dispatch(Add{Notification: notification})
}

// Dismiss removes a notification once it has been shown.
func (n *Notifier) Dismiss(id string) {
	n.store.Dispatch(Remove{ID: id})
}

// Alerts returns the notifications currently held.
func (n *Notifier) Alerts() []Notification {
	return n.store.State().Alerts
}
