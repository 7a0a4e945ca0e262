package server

import "github.com/jrsteele09/go-photo-session/auth"

// Route path constants
const (
	RouteIndex = "/{$}"

	// Photo viewer
	RoutePhotoOpen = "/photos/open"
	RoutePhotoView = "/photos/view"

	// Navigation
	RouteNavigationBack = "/navigation/back"

	// Reference auth API
	RouteAPISignup = auth.RouteSignup
	RouteAPILogin  = auth.RouteLogin
)
