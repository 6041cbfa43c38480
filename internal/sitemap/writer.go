package sitemap

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// FileWriter persists a generation result to one output directory.
type FileWriter struct {
	dir string
}

// NewFileWriter returns a writer rooted at dir. The directory is
// created on the first write.
func NewFileWriter(dir string) *FileWriter {
	return &FileWriter{dir: dir}
}

// Dir returns the output directory.
func (w *FileWriter) Dir() string {
	return w.dir
}

// WriteAll writes every rendered file, in name order so partial
// failures are reproducible.
func (w *FileWriter) WriteAll(files map[string]string) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create sitemap dir %s: %w", w.dir, err)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(w.dir, name)
		if err := os.WriteFile(path, []byte(files[name]), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}
