package server

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/jrsteele09/go-photo-session/viewer"
)

// OpenPhotoHandler pushes a viewer entry carrying the photo state (POST /photos/open)
func (s *Server) OpenPhotoHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		// The state is passed through untouched; the viewer does not validate it
		owner, _ := strconv.ParseBool(r.FormValue("owner"))
		state := viewer.PhotoState{
			ImgURL:        r.FormValue("imgURL"),
			ViewerIsOwner: owner,
		}

		visitorID := s.visitorID(w, r)
		history := s.history(visitorID)
		history.Push(RoutePhotoView, state)
		if err := s.histories.Upsert(visitorID, history); err != nil {
			logError(r.Method, r.URL.Path, err.Error())
			http.Error(w, "Failed to save navigation", http.StatusInternalServerError)
			return
		}

		redirectSuccess(w, r, RoutePhotoView)
	}
}

// PhotoViewHandler renders the photo held by the visitor's current history entry (GET /photos/view)
func (s *Server) PhotoViewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		history := s.history(s.visitorID(w, r))
		state := viewer.StateFrom(history.Current())

		var buf bytes.Buffer
		if err := s.view.Render(&buf, state); err != nil {
			logError(r.Method, r.URL.Path, err.Error())
			http.Error(w, "Failed to render photo", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(buf.Bytes())
	}
}

// BackHandler pops one history entry and redirects to the entry now current (POST /navigation/back)
func (s *Server) BackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		visitorID := s.visitorID(w, r)
		history := s.history(visitorID)

		previous, _ := history.Back()
		if err := s.histories.Upsert(visitorID, history); err != nil {
			logError(r.Method, r.URL.Path, err.Error())
			http.Error(w, "Failed to save navigation", http.StatusInternalServerError)
			return
		}

		redirectSuccess(w, r, indexPath(previous.Path))
	}
}

// indexPath maps the root pattern back to a plain path for redirects
func indexPath(path string) string {
	if path == "" || path == RouteIndex {
		return "/"
	}
	return path
}
