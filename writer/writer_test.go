package writer

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Top 10 Tips: A/B!", "Top-10-Tips-AB"},
		{"Sample Title", "Sample-Title"},
		{"  spaced   out  ", "spaced-out"},
		{"---already--hyphened---", "already-hyphened"},
		{"under_scores stay", "under_scores-stay"},
		{"!!!", ""},
	}

	safe := regexp.MustCompile(`^[\w-]+$`)
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := Slugify(tt.title)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
			}
			if got != "" && !safe.MatchString(got) {
				t.Errorf("Slugify(%q) = %q contains unsafe characters", tt.title, got)
			}
		})
	}
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Generated Blogs")
	w := New(dir, log.New(io.Discard, "", 0))

	path, err := w.Save("Sample Title", "<p>first</p>")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Base(path) != "Sample-Title.html" {
		t.Errorf("path = %q, want Sample-Title.html base", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(data) != "<p>first</p>" {
		t.Errorf("content = %q", data)
	}

	// Same slug overwrites.
	if _, err := w.Save("Sample Title", "<p>second</p>"); err != nil {
		t.Fatalf("Save (overwrite): %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "<p>second</p>" {
		t.Errorf("overwrite content = %q", data)
	}
}

func TestSaveRejectsEmptySlug(t *testing.T) {
	w := New(t.TempDir(), log.New(io.Discard, "", 0))
	if _, err := w.Save("!!!", "<p>x</p>"); err == nil {
		t.Fatal("expected error for empty slug")
	}
}
