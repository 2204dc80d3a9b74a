// Package output handles file naming and writing for tablepipe outputs.
// Without an output directory, results go to stdout. With one, filenames
// are derived from the source: example.com/docs/df.html becomes
// example_com_docs_df_html.json, and /var/log/units.txt becomes units.json.
package output

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to stdout or to disk.
type Writer struct {
	OutputDir string
	Stdout    io.Writer
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, output is written to stdout.
func New(outputDir string) (*Writer, error) {
	w := &Writer{OutputDir: outputDir, Stdout: os.Stdout}
	if outputDir == "" {
		return w, nil
	}

	// Ensure the output directory exists.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return w, nil
}

// Write stores data for source and returns where it went ("-" for stdout).
func (w *Writer) Write(source string, data []byte, ext string) (string, error) {
	if w.OutputDir == "" {
		if _, err := w.Stdout.Write(data); err != nil {
			return "", fmt.Errorf("writing to stdout: %w", err)
		}
		return "-", nil
	}

	path := filepath.Join(w.OutputDir, FilenameFromSource(source)+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// FilenameFromSource converts a source name into a flat filename without
// extension.
func FilenameFromSource(source string) string {
	if source == "" || source == "-" {
		return "stdin"
	}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return filenameFromURL(source)
	}
	base := filepath.Base(source)
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return sanitize(base)
}

// filenameFromURL converts a URL into a flat filename.
// Example: https://example.com/docs/intro → example_com_docs_intro
func filenameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		// Fallback: sanitize the raw string.
		return sanitize(rawURL)
	}

	parts := []string{sanitize(parsed.Host)}
	path := strings.Trim(parsed.Path, "/")
	if path != "" {
		for _, seg := range strings.Split(path, "/") {
			parts = append(parts, sanitize(seg))
		}
	}
	return strings.Join(parts, "_")
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '-' {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
