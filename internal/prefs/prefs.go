// Package prefs handles logview user preferences persistence.
// Preferences are stored in ~/.config/logview/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for logview.
type Prefs struct {
	// Format is the default export format (text, json, csv).
	Format string `toml:"format"`

	// PollSeconds is the watch-mode refresh interval.
	PollSeconds int `toml:"poll_seconds"`

	// Color toggles classification-driven coloring in terminal output.
	Color bool `toml:"color"`
}

const defaultPrefsPath = "~/.config/logview/prefs.toml"

// Defaults returns the preferences used when no prefs file exists.
func Defaults() Prefs {
	return Prefs{
		Format:      "text",
		PollSeconds: 5,
		Color:       true,
	}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path, falling back to defaults on
// any problem. A missing or unreadable prefs file never blocks the tool.
func Load(path string) Prefs {
	prefs := Defaults()

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs
	}

	data, err := os.ReadFile(resolved) // #nosec G304 -- prefs path is user-controlled
	if err != nil {
		return prefs
	}

	if err := toml.Unmarshal(data, &prefs); err != nil {
		return Defaults()
	}

	if strings.TrimSpace(prefs.Format) == "" {
		prefs.Format = "text"
	}
	if prefs.PollSeconds <= 0 {
		prefs.PollSeconds = Defaults().PollSeconds
	}
	return prefs
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = defaultPrefsPath
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.New("resolve home dir")
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
