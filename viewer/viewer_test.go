package viewer_test

import (
	"bytes"
	"testing"

	"github.com/jrsteele09/go-photo-session/navigation"
	"github.com/jrsteele09/go-photo-session/viewer"
	"github.com/stretchr/testify/require"
)

func TestStateFrom(t *testing.T) {
	state := viewer.PhotoState{ImgURL: "https://img.example.com/1.jpg", ViewerIsOwner: true}

	require.Equal(t, state, viewer.StateFrom(navigation.Entry{State: state}))
	require.Equal(t, state, viewer.StateFrom(navigation.Entry{State: &state}))
	require.Equal(t, viewer.PhotoState{}, viewer.StateFrom(navigation.Entry{}))
	require.Equal(t, viewer.PhotoState{}, viewer.StateFrom(navigation.Entry{State: "something else"}))
	require.Equal(t, viewer.PhotoState{}, viewer.StateFrom(navigation.Entry{State: (*viewer.PhotoState)(nil)}))
}

func TestView_Render(t *testing.T) {
	v, err := viewer.New("/navigation/back")
	require.NoError(t, err)

	t.Run("photo and back control", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, v.Render(&buf, viewer.PhotoState{ImgURL: "https://img.example.com/1.jpg", ViewerIsOwner: true}))

		page := buf.String()
		require.Contains(t, page, `src="https://img.example.com/1.jpg"`)
		require.Contains(t, page, `action="/navigation/back"`)
		require.Contains(t, page, "MOVE BACK")
		require.Contains(t, page, `data-owner="true"`)
		require.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("<button")))
	})

	t.Run("missing state renders an empty image", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, v.Render(&buf, viewer.PhotoState{}))
		require.Contains(t, buf.String(), `src=""`)
		require.NotContains(t, buf.String(), "data-owner")
	})

	t.Run("unsafe urls are neutralised", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, v.Render(&buf, viewer.PhotoState{ImgURL: "javascript:alert(1)"}))
		require.NotContains(t, buf.String(), "javascript:")
	})
}
