// Package settings stores user preferences that only affect presentation.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

const themeKey = "theme"

// Store holds preferences loaded from a YAML file. Changes are written back
// immediately.
type Store struct {
	path string
	v    *viper.Viper
}

// DefaultPath returns ~/.streaming-history-tools/settings.yaml.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".streaming-history-tools", "settings.yaml"), nil
}

// Open loads preferences from path. A missing file means defaults.
func Open(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault(themeKey, string(ThemeLight))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading settings %s: %w", path, err)
		}
	}

	return &Store{path: path, v: v}, nil
}

// Theme returns the saved theme. Unknown values read as light.
func (s *Store) Theme() Theme {
	if Theme(s.v.GetString(themeKey)) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// SetTheme saves theme.
func (s *Store) SetTheme(theme Theme) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("unknown theme %q", theme)
	}
	s.v.Set(themeKey, string(theme))
	return s.save()
}

// Toggle switches between light and dark and returns the new theme.
func (s *Store) Toggle() (Theme, error) {
	next := ThemeDark
	if s.Theme() == ThemeDark {
		next = ThemeLight
	}
	if err := s.SetTheme(next); err != nil {
		return s.Theme(), err
	}
	return next, nil
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("writing settings %s: %w", s.path, err)
	}
	return nil
}
