package workspace

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type ProjectInfo struct {
	ID         string
	Root       string
	SourcePath string
	ReportPath string
}

// CreateProject lays out a per-draft project directory keyed by a stable
// hash of the title, holding the imported source and the latest feedback
// report.
func CreateProject(workspaceRoot, title, sourceFileName string, source []byte) (*ProjectInfo, error) {
	id := titleHash(title)
	projectRoot := filepath.Join(workspaceRoot, "projects", id)
	if err := os.MkdirAll(projectRoot, 0o755); err != nil {
		return nil, fmt.Errorf("create project dir: %w", err)
	}

	sourceFileName = sanitizeSourceName(sourceFileName)
	sourcePath := filepath.Join(projectRoot, sourceFileName)
	if len(source) > 0 {
		if err := os.WriteFile(sourcePath, source, 0o644); err != nil {
			return nil, fmt.Errorf("write source file: %w", err)
		}
	} else if _, err := os.Stat(sourcePath); os.IsNotExist(err) {
		if err := os.WriteFile(sourcePath, nil, 0o644); err != nil {
			return nil, fmt.Errorf("create empty source file: %w", err)
		}
	}

	return &ProjectInfo{
		ID:         id,
		Root:       projectRoot,
		SourcePath: sourcePath,
		ReportPath: filepath.Join(projectRoot, "feedback.txt"),
	}, nil
}

func titleHash(title string) string {
	trimmed := strings.TrimSpace(strings.ToLower(title))
	sum := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(sum[:])[:12]
}

func sanitizeSourceName(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "draft.txt"
	}
	return strings.ReplaceAll(base, "..", "")
}
