package util

import (
	"os"
	"path/filepath"
	"strings"
)

// DataDir is where the database lives: $XDG_DATA_HOME/app, falling back to
// ~/.local/share/app, or ./app when no home directory is known.
func DataDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(expandHome(base), app)
	}
	home := homeDir()
	if home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".local", "share", app)
}

// ReportsDir is the default target for exported plan PDFs.
func ReportsDir(app string) string {
	return filepath.Join(DocumentsDir(), app+"-reports")
}

// DocumentsDir resolves the user's documents folder, honouring
// XDG_DOCUMENTS_DIR and ~/.config/user-dirs.dirs.
func DocumentsDir() string {
	if base := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); base != "" {
		return expandHome(base)
	}
	home := homeDir()
	if home == "" {
		return "."
	}
	if data, err := os.ReadFile(filepath.Join(home, ".config", "user-dirs.dirs")); err == nil {
		if dir := lookupUserDir(string(data), "XDG_DOCUMENTS_DIR"); dir != "" {
			return expandHome(dir)
		}
	}
	return filepath.Join(home, "Documents")
}

// lookupUserDir reads KEY="value" from a user-dirs.dirs body, skipping
// comments.
func lookupUserDir(data, key string) string {
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, value, ok := strings.Cut(line, "=")
		if !ok || strings.TrimSpace(name) != key {
			continue
		}
		return strings.Trim(strings.TrimSpace(value), `"`)
	}
	return ""
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

// expandHome substitutes $HOME and a leading ~ with the home directory.
func expandHome(path string) string {
	home := homeDir()
	if path == "~" || strings.HasPrefix(path, "~/") {
		path = "$HOME" + path[1:]
	}
	return strings.ReplaceAll(path, "$HOME", home)
}
