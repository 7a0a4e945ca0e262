package ui_test

import (
	"testing"

	"github.com/jrsteele09/go-photo-session/server/ui"
	"github.com/stretchr/testify/require"
)

func TestColorize(t *testing.T) {
	require.Equal(t, ui.Green+"ok"+ui.ResetColor, ui.Colorize("green", "ok"))
	require.Equal(t, ui.Red+"no"+ui.ResetColor, ui.Colorize("red", "no"))
	require.Equal(t, "plain", ui.Colorize("blue", "plain"))
}
