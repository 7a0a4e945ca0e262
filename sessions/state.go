package sessions

import (
	"github.com/jrsteele09/go-photo-session/internal/utils"
	"github.com/jrsteele09/go-photo-session/store"
	"github.com/jrsteele09/go-photo-session/token"
)

// Status is the lifecycle of the most recently settled operation
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusError   Status = "error"
	StatusSuccess Status = "success"
)

// FallbackErrorMessage is recorded when a failure carries no message of its own.
const FallbackErrorMessage = "An error occurred"

// State is the session slice: identity fields derived from the token plus request status.
// The derived fields live only in memory; the token itself is persisted by a token.Store.
type State struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	UserID string `json:"userId"`
	Status Status `json:"status"`
	Error  string `json:"error"`
	Exp    int64  `json:"exp"`
}

func InitialState() State {
	return State{Status: StatusIdle}
}

// Operation names an asynchronous session operation
type Operation string

const (
	OperationCreateAccount Operation = "createAccount"
	OperationLogin         Operation = "login"
)

// Pending is dispatched as soon as an operation starts.
type Pending struct {
	Operation Operation
}

// Rejected is dispatched when an operation fails for any reason.
type Rejected struct {
	Operation Operation
	Message   string
}

// SignupFulfilled is dispatched when the account was created.
type SignupFulfilled struct {
	Message string
}

// LoginFulfilled is dispatched after the token has been persisted.
// Claims is nil and DecodeError set when the token could not be decoded.
type LoginFulfilled struct {
	Message     string
	Claims      *token.Claims
	DecodeError string
}

// SetCredentials overwrites the identity fields directly.
type SetCredentials struct {
	UserID string
	Email  string
	Name   string
}

// NewStore returns a store holding the initial session state.
func NewStore() *store.Store[State] {
	return store.New(InitialState(), Reduce)
}

// Reduce is the session reducer. Unknown actions leave the state untouched.
func Reduce(state State, action store.Action) State {
	switch a := action.(type) {
	case Pending:
		state.Status = StatusLoading
		state.Error = ""

	case SignupFulfilled:
		state.Status = StatusSuccess
		state.Error = ""

	case LoginFulfilled:
		state.Status = StatusSuccess
		state.Error = ""
		if a.Claims == nil {
			// identity fields keep whatever a previous login left behind
			state.Error = utils.FirstNonEmpty(a.DecodeError, FallbackErrorMessage)
			break
		}
		state.Name = a.Claims.Name
		state.Email = a.Claims.Email
		state.UserID = a.Claims.UserID
		state.Exp = a.Claims.Expiry()

	case Rejected:
		state.Status = StatusError
		state.Error = utils.FirstNonEmpty(a.Message, FallbackErrorMessage)

	case SetCredentials:
		state.UserID = a.UserID
		state.Email = a.Email
		state.Name = a.Name
	}
	return state
}
