// Package writer persists finished articles as standalone HTML files named
// after a filesystem-safe slug of the title.
package writer

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	slugDropRe = regexp.MustCompile(`[^\w\s-]`)
	slugSepRe  = regexp.MustCompile(`[-\s]+`)
)

// Slugify strips characters that are not word, space, or hyphen, then
// collapses runs of separators to a single hyphen.
func Slugify(title string) string {
	s := slugDropRe.ReplaceAllString(title, "")
	s = slugSepRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Writer saves articles under a single output directory.
type Writer struct {
	outputDir string
	logger    *log.Logger
}

func New(outputDir string, logger *log.Logger) *Writer {
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Writer{outputDir: outputDir, logger: logger}
}

// Save writes content to <outputDir>/<slug>.html, creating the directory if
// needed and overwriting any earlier file for the same slug. It returns the
// written path.
func (w *Writer) Save(title, content string) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir %s: %w", w.outputDir, err)
	}

	slug := Slugify(title)
	if slug == "" {
		return "", errors.New("title produced an empty slug")
	}

	path := filepath.Join(w.outputDir, slug+".html")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	w.logger.Printf("Generated blog saved: %s", path)
	return path, nil
}
