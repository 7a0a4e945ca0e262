package viewer

import (
	"embed"
	"html/template"
	"io"

	"github.com/jrsteele09/go-photo-session/navigation"
	"github.com/pkg/errors"
)

//go:embed templates/*
var templateFiles embed.FS

// PhotoState is the navigation state the viewer is opened with
type PhotoState struct {
	ImgURL        string `json:"imgURL"`
	ViewerIsOwner bool   `json:"viewerIsOwner"`
}

// PageData is the template model for the photo page
type PageData struct {
	PhotoState
	BackAction string
}

// View renders a full-screen photo with a single control that goes back one history entry.
type View struct {
	tmpl       *template.Template
	backAction string
}

// New parses the embedded page. backAction is the route the back control posts to.
func New(backAction string) (*View, error) {
	tmpl, err := template.ParseFS(templateFiles, "templates/photo.html")
	if err != nil {
		return nil, errors.Wrap(err, "[viewer.New] parse template")
	}
	return &View{tmpl: tmpl, backAction: backAction}, nil
}

// StateFrom reads the photo state attached to entry. Anything else yields the zero state,
// which renders as an empty image rather than an error.
func StateFrom(entry navigation.Entry) PhotoState {
	switch s := entry.State.(type) {
	case PhotoState:
		return s
	case *PhotoState:
		if s != nil {
			return *s
		}
	}
	return PhotoState{}
}

// Render writes the page for state to w.
func (v *View) Render(w io.Writer, state PhotoState) error {
	data := PageData{PhotoState: state, BackAction: v.backAction}
	if err := v.tmpl.ExecuteTemplate(w, "photo.html", data); err != nil {
		return errors.Wrap(err, "[View.Render] execute template")
	}
	return nil
}
