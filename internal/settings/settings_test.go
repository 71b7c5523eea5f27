package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsWhenMissing(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "settings.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, s.Theme())
}

func TestTogglePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	s, err := Open(path)
	require.NoError(t, err)

	theme, err := s.Toggle()
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, reopened.Theme())

	theme, err = reopened.Toggle()
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)

	reopened, err = Open(path)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, reopened.Theme())
}

func TestSetTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	s, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, s.SetTheme(ThemeDark))
	assert.Equal(t, ThemeDark, s.Theme())

	assert.Error(t, s.SetTheme("sepia"))
	assert.Equal(t, ThemeDark, s.Theme())
}

func TestUnknownSavedThemeReadsAsLight(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: purple\n"), 0o644))

	s, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, s.Theme())
}

func TestInvalidSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [unterminated\n"), 0o644))

	_, err := Open(path)
	assert.Error(t, err)
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "settings.yaml", filepath.Base(path))
}
