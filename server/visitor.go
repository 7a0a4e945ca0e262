package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-photo-session/navigation"
)

const (
	// visitorCookieName identifies whose navigation history a request belongs to
	visitorCookieName = "visitor_id"
	visitorCookieAge  = 30 * 24 * 3600
)

// visitorID returns the visitor's ID, issuing a new cookie when there is none
func (s *Server) visitorID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(visitorCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     visitorCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   getScheme(r) == "https",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   visitorCookieAge,
	})
	return id
}

// history loads the visitor's navigation history, starting a fresh one when unknown
func (s *Server) history(visitorID string) navigation.History {
	h, err := s.histories.Get(visitorID)
	if err != nil {
		return navigation.NewHistory()
	}
	return h
}

func redirectSuccess(w http.ResponseWriter, r *http.Request, path string) {
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", path)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}
