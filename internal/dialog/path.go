package dialog

import (
	"os"
	"path/filepath"
	"strings"
)

// CanonicalPath expands a leading "~", cleans the path and makes it absolute.
// An empty path stays empty. Errors resolving the home or working directory
// leave the path as cleaned so far.
func CanonicalPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	if p == "~" || strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

// SplitSeed splits a seed path into the directory a picker should open in and
// the file name it should propose. An existing directory, or a path ending in
// a separator, has no file part.
func SplitSeed(p string) (dir, file string) {
	if strings.TrimSpace(p) == "" {
		return "", ""
	}
	trailing := strings.HasSuffix(p, "/") || strings.HasSuffix(p, string(filepath.Separator))
	p = CanonicalPath(p)
	if trailing {
		return p, ""
	}
	if info, err := os.Stat(p); err == nil && info.IsDir() {
		return p, ""
	}
	return filepath.Dir(p), filepath.Base(p)
}

// Extensions turns glob patterns such as "*.txt" into bare extensions ("txt").
// Patterns that are not simple extension globs are skipped.
func Extensions(patterns []string) []string {
	var exts []string
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		ext := strings.TrimPrefix(p, "*.")
		if ext == p || ext == "" || ext == "*" || strings.ContainsAny(ext, "*?[]/") {
			continue
		}
		exts = append(exts, ext)
	}
	return exts
}
