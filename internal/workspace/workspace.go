package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const BaseDirName = "DraftLens"

type Settings struct {
	Theme        string `json:"theme"`
	DefaultModel string `json:"default_model"`
}

// EnsureDefault creates the workspace under the user's home directory.
func EnsureDefault() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return EnsureAt(filepath.Join(home, BaseDirName))
}

// EnsureAt creates the workspace layout at base and seeds default settings
// on first run.
func EnsureAt(base string) (string, error) {
	paths := []string{
		filepath.Join(base, "configs"),
		filepath.Join(base, "projects"),
		filepath.Join(base, "exports"),
	}
	for _, p := range paths {
		if err := os.MkdirAll(p, 0o755); err != nil {
			return "", fmt.Errorf("mkdir %s: %w", p, err)
		}
	}

	settingsPath := filepath.Join(base, "configs", "settings.json")
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		defaults := Settings{
			Theme:        "light",
			DefaultModel: "gpt-4o-mini",
		}
		raw, marshalErr := json.MarshalIndent(defaults, "", "  ")
		if marshalErr != nil {
			return "", fmt.Errorf("marshal settings: %w", marshalErr)
		}
		if writeErr := os.WriteFile(settingsPath, raw, 0o644); writeErr != nil {
			return "", fmt.Errorf("write settings: %w", writeErr)
		}
	}

	return base, nil
}

// ExportsDir returns the directory feedback reports are written to.
func ExportsDir(base string) string {
	return filepath.Join(base, "exports")
}

// StorePath returns the location of the session database.
func StorePath(base string) string {
	return filepath.Join(base, "configs", "draftlens.db")
}
