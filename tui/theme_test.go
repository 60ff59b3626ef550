package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadThemeDefaults(t *testing.T) {
	require.Equal(t, DefaultTheme, LoadTheme(""))

	// A path nothing lives at falls back the same way
	missing := filepath.Join(t.TempDir(), "absent.yaml")
	require.Equal(t, DefaultTheme, LoadTheme(missing))
}

func TestLoadThemePartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	content := "title: \"99\"\nauthor: \"#ff0000\"\n"
	err := os.WriteFile(path, []byte(content), 0644)
	require.Equal(t, nil, err)

	theme := LoadTheme(path)
	require.Equal(t, "99", theme.Title)
	require.Equal(t, "#ff0000", theme.Author)
	require.Equal(t, DefaultTheme.Selected, theme.Selected)
	require.Equal(t, DefaultTheme.URL, theme.URL)
	require.Equal(t, DefaultTheme.Muted, theme.Muted)
	require.Equal(t, DefaultTheme.Loading, theme.Loading)
}

func TestLoadThemeUndecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	err := os.WriteFile(path, []byte("title: [unclosed"), 0644)
	require.Equal(t, nil, err)

	require.Equal(t, DefaultTheme, LoadTheme(path))
}
