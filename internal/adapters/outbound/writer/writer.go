package writer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/uiforge/uiforge/internal/domain"
)

// FileWriter implements domain.FileWriter. Writes go through a temp file
// in the target directory and a rename, so a crash never leaves a
// half-written component behind.
type FileWriter struct{}

func New() *FileWriter {
	return &FileWriter{}
}

func (w *FileWriter) Write(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// WriteComponent is the gated entry point: content that failed
// validation is refused unless force is set.
func (w *FileWriter) WriteComponent(path, content string, result *domain.ValidationResult, force bool) error {
	if !force && (result == nil || !result.Passed) {
		return fmt.Errorf("%s: %w", path, domain.ErrNotValidated)
	}
	return w.Write(path, []byte(content))
}
