// Package authapi is a small in-process implementation of the signup/login API
// the session client talks to. It backs local development and integration tests.
package authapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-photo-session/auth"
	apperrors "github.com/jrsteele09/go-photo-session/internal/errors"
	"github.com/jrsteele09/go-photo-session/token"
	"github.com/jrsteele09/go-photo-session/users"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	maxBodyBytes = 1 << 16

	msgAccountCreated     = "account created"
	msgLoginSuccessful    = "login successful"
	msgInvalidBody        = "invalid request body"
	msgMissingFields      = "email and password are required"
	msgInvalidCredentials = "invalid email or password"
	msgInternal           = "internal error"
)

// Handlers serves the auth API routes.
type Handlers struct {
	users   users.UserRepo
	signer  *token.HMACSigner
	expiry  time.Duration
	nowTime func() time.Time
}

// Option defines a function type to modify the Handlers instance.
type Option func(*Handlers)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) Option {
	return func(h *Handlers) {
		h.nowTime = nowFunc
	}
}

func New(repo users.UserRepo, signer *token.HMACSigner, expiry time.Duration, options ...Option) (*Handlers, error) {
	if repo == nil {
		return nil, errors.New("[authapi.New] users repo is required")
	}
	if signer == nil {
		return nil, errors.New("[authapi.New] signer is required")
	}
	if expiry <= 0 {
		expiry = time.Hour
	}

	h := &Handlers{
		users:   repo,
		signer:  signer,
		expiry:  expiry,
		nowTime: time.Now,
	}
	for _, opt := range options {
		opt(h)
	}
	return h, nil
}

// Register mounts the API routes on mux.
func (h *Handlers) Register(register func(pattern string, handler http.HandlerFunc)) {
	register("POST "+auth.RouteSignup, h.Signup())
	register("POST "+auth.RouteLogin, h.Login())
}

// Signup creates an account (POST /api/v1/auth/signup)
func (h *Handlers) Signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req auth.SignupRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, msgInvalidBody)
			return
		}
		if strings.TrimSpace(req.Email) == "" || req.Password == "" {
			writeMessage(w, http.StatusBadRequest, msgMissingFields)
			return
		}

		hash, err := users.HashPassword(req.Password)
		if err != nil {
			log.Err(err).Msg("Failed to hash password")
			writeMessage(w, http.StatusInternalServerError, msgInternal)
			return
		}

		err = h.users.Create(&users.User{Name: req.User, Email: req.Email, PasswordHash: hash, DateJoined: h.nowTime()})
		if apperrors.Is(err, apperrors.ErrEmailTaken) {
			writeMessage(w, http.StatusBadRequest, apperrors.ErrEmailTaken.Error())
			return
		}
		if err != nil {
			log.Err(err).Msg("Failed to create user")
			writeMessage(w, http.StatusInternalServerError, msgInternal)
			return
		}

		writeMessage(w, http.StatusCreated, msgAccountCreated)
	}
}

// Login exchanges credentials for a signed token (POST /api/v1/auth/login)
func (h *Handlers) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req auth.LoginRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, msgInvalidBody)
			return
		}
		if strings.TrimSpace(req.Email) == "" || req.Password == "" {
			writeMessage(w, http.StatusBadRequest, msgMissingFields)
			return
		}

		user, err := h.users.GetByEmail(req.Email)
		if err != nil || !user.CheckPassword(req.Password) {
			writeMessage(w, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}

		signed, err := h.createToken(user)
		if err != nil {
			log.Err(err).Msg("Failed to sign session token")
			writeMessage(w, http.StatusInternalServerError, msgInternal)
			return
		}

		if err := h.users.SetLastLogin(user.Email); err != nil {
			log.Err(err).Str("email", user.Email).Msg("Failed to record last login")
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": msgLoginSuccessful, "token": signed})
	}
}

func (h *Handlers) createToken(user *users.User) (string, error) {
	now := h.nowTime()
	claims := jwt.MapClaims{
		"sub":    user.ID,
		"userId": user.ID,
		"name":   user.Name,
		"email":  user.Email,
		"iat":    now.Unix(),
		"exp":    now.Add(h.expiry).Unix(),
	}
	signed, err := h.signer.Sign(claims)
	if err != nil {
		return "", apperrors.Wrapf(apperrors.ErrTokenSign, "%v", err)
	}
	return signed, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, out any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(out)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Err(err).Msg("Failed to write JSON response")
	}
}
