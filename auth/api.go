package auth

import (
	"context"
	"fmt"
)

// Routes exposed by the remote auth API.
const (
	RouteSignup = "/api/v1/auth/signup"
	RouteLogin  = "/api/v1/auth/login"
)

// API is the remote signup/login surface the session slice talks to.
type API interface {
	Signup(ctx context.Context, req SignupRequest) (*Response, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
}

// SignupRequest is the body posted to RouteSignup
type SignupRequest struct {
	User     string `json:"user"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body posted to RouteLogin
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response is the body shared by every endpoint. Message is nil when the server omits it.
type Response struct {
	Message *string `json:"message,omitempty"`
}

// LoginResponse adds the bearer token returned on a successful login.
type LoginResponse struct {
	Response
	Token *string `json:"token,omitempty"`
}

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string // the body's message field, empty when absent
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("auth api: status %d", e.StatusCode)
	}
	return e.Message
}
