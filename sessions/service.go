package sessions

import (
	"context"
	"sync"

	"github.com/jrsteele09/go-photo-session/auth"
	apperrors "github.com/jrsteele09/go-photo-session/internal/errors"
	"github.com/jrsteele09/go-photo-session/internal/utils"
	"github.com/jrsteele09/go-photo-session/store"
	"github.com/jrsteele09/go-photo-session/token"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// UnknownErrorMessage is reported when the request never produced a usable API response.
const UnknownErrorMessage = "unknown error"

// Result is the outcome of one completed operation.
type Result struct {
	Operation Operation
	OK        bool
	Message   string
}

// ResultListener is called once for every completed operation.
type ResultListener func(Result)

// Service runs the asynchronous session operations against the auth API.
// Overlapping calls are not coordinated: whichever settles last decides the state.
type Service struct {
	api    auth.API
	tokens token.Store
	store  *store.Store[State]
	decode func(string) (*token.Claims, error)

	listenersMu sync.RWMutex
	listeners   []ResultListener
}

// ServiceOption defines a function type to modify the Service instance.
type ServiceOption func(*Service)

// WithDecoder replaces the token decoder (primarily for testing)
func WithDecoder(decode func(string) (*token.Claims, error)) ServiceOption {
	return func(s *Service) {
		s.decode = decode
	}
}

// NewService initializes a Service with its required dependencies.
func NewService(api auth.API, tokens token.Store, st *store.Store[State], options ...ServiceOption) (*Service, error) {
	if api == nil {
		return nil, errors.New("[NewService] auth API is required")
	}
	if tokens == nil {
		return nil, errors.New("[NewService] token store is required")
	}
	if st == nil {
		return nil, errors.New("[NewService] session store is required")
	}

	s := &Service{
		api:    api,
		tokens: tokens,
		store:  st,
		decode: token.Decode,
	}
	for _, opt := range options {
		opt(s)
	}
	return s, nil
}

// Store exposes the state container the service dispatches into.
func (s *Service) Store() *store.Store[State] {
	return s.store
}

// OnResult registers fn to receive every completed operation's Result.
func (s *Service) OnResult(fn ResultListener) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// CreateAccount registers a new user. Identity fields are not touched on success.
func (s *Service) CreateAccount(ctx context.Context, name, email, password string) Result {
	s.store.Dispatch(Pending{Operation: OperationCreateAccount})
	log.Debug().Str("operation", string(OperationCreateAccount)).Str("email", email).Msg("session operation started")

	res, err := s.api.Signup(ctx, auth.SignupRequest{User: name, Email: email, Password: password})
	if err != nil {
		return s.reject(OperationCreateAccount, err)
	}

	message := utils.Value(res.Message)
	s.store.Dispatch(SignupFulfilled{Message: message})
	return s.publish(Result{Operation: OperationCreateAccount, OK: true, Message: message})
}

// Login authenticates the user, persists the returned token and then decodes it into the state.
// A token that fails to decode stays persisted; the failure is only recorded in the state error.
func (s *Service) Login(ctx context.Context, email, password string) Result {
	s.store.Dispatch(Pending{Operation: OperationLogin})
	log.Debug().Str("operation", string(OperationLogin)).Str("email", email).Msg("session operation started")

	res, err := s.api.Login(ctx, auth.LoginRequest{Email: email, Password: password})
	if err != nil {
		return s.reject(OperationLogin, err)
	}

	message := utils.Value(res.Message)
	rawToken := utils.Value(res.Token)
	fulfilled := LoginFulfilled{Message: message}

	if err := s.tokens.Set(ctx, rawToken); err != nil {
		log.Err(err).Msg("Failed to persist session token")
		fulfilled.DecodeError = err.Error()
	} else if claims, err := s.decode(rawToken); err != nil {
		log.Warn().Err(err).Msg("Session token could not be decoded")
		fulfilled.DecodeError = err.Error()
	} else {
		fulfilled.Claims = claims
	}

	s.store.Dispatch(fulfilled)
	return s.publish(Result{Operation: OperationLogin, OK: true, Message: message})
}

// Restore reloads the identity fields from a previously persisted token.
// It makes no request and publishes no Result. A missing token is not an error.
func (s *Service) Restore(ctx context.Context) error {
	rawToken, err := s.tokens.Get(ctx)
	if apperrors.Is(err, apperrors.ErrTokenNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "[Restore] read token")
	}

	claims, err := s.decode(rawToken)
	if err != nil {
		return errors.Wrap(err, "[Restore] decode token")
	}

	s.store.Dispatch(SetCredentials{UserID: claims.UserID, Email: claims.Email, Name: claims.Name})
	return nil
}

func (s *Service) reject(op Operation, err error) Result {
	message := failureMessage(err)
	log.Warn().Err(err).Str("operation", string(op)).Msg("session operation failed")

	s.store.Dispatch(Rejected{Operation: op, Message: message})
	return s.publish(Result{Operation: op, OK: false, Message: message})
}

func (s *Service) publish(result Result) Result {
	s.listenersMu.RLock()
	listeners := append([]ResultListener(nil), s.listeners...)
	s.listenersMu.RUnlock()

	for _, fn := range listeners {
		fn(result)
	}
	return result
}

// failureMessage collapses every failure into one human readable string.
func failureMessage(err error) string {
	var apiErr *auth.APIError
	if errors.As(err, &apiErr) {
		return utils.FirstNonEmpty(apiErr.Message, FallbackErrorMessage)
	}
	return UnknownErrorMessage
}
