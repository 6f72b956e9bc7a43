// Package fs exports archived chapters as plain text files.
package fs

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/novelgrab/novelgrab"
)

// FileName derives a file name for a chapter. The title is preferred;
// an untitled chapter falls back to the last URL path segment, then to
// the chapter ID.
func FileName(chapter *novelgrab.Chapter) string {
	name := sanitize(chapter.Title)
	if name == "" {
		if u, err := url.Parse(chapter.URL); err == nil {
			base := strings.TrimSuffix(filepath.Base(u.Path), filepath.Ext(u.Path))
			name = sanitize(base)
		}
	}
	if name == "" || name == "." || name == "/" {
		name = chapter.ID
	}
	return name + ".txt"
}

// sanitize strips characters that are unsafe in file names.
func sanitize(s string) string {
	s = strings.TrimSpace(s)
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		"\x00", "",
	)
	return replacer.Replace(s)
}

// FormatChapter renders a chapter as title, blank line, then content.
func FormatChapter(chapter *novelgrab.Chapter) string {
	var b strings.Builder
	if chapter.Title != "" {
		b.WriteString(chapter.Title)
		b.WriteString("\n\n")
	}
	b.WriteString(chapter.Content)
	b.WriteString("\n")
	return b.String()
}

// Writer writes chapters as text files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteChapter writes one chapter to disk and returns the file path.
func (w *Writer) WriteChapter(chapter *novelgrab.Chapter) (string, error) {
	if err := chapter.Validate(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(w.baseDir, FileName(chapter))
	if err := os.WriteFile(path, []byte(FormatChapter(chapter)), 0644); err != nil {
		return "", err
	}
	return path, nil
}
