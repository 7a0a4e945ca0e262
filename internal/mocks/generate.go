// Package mocks provides gomock implementations of the session client's ports.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
package mocks

// Generate mock for the remote auth API used by the sessions service:
// Signup, Login
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=auth_api_mock.go github.com/jrsteele09/go-photo-session/auth API
