package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/uiforge/uiforge/internal/domain"
)

// maxAge bounds how long a cached detection stays valid. Project setup
// changes rarely; a day keeps repeated runs cheap without pinning stale
// frameworks forever.
const maxAge = 24 * time.Hour

// Store is a file-based implementation of domain.ContextCache.
type Store struct{}

// New creates a new file-based context cache.
func New() *Store {
	return &Store{}
}

// Load reads the cached project context. A missing, unreadable, or stale
// cache is a miss, never an error.
func (s *Store) Load(root string) (*domain.ProjectContext, bool) {
	data, err := os.ReadFile(cachePath(root))
	if err != nil {
		return nil, false
	}

	var ctx domain.ProjectContext
	if err := json.Unmarshal(data, &ctx); err != nil {
		return nil, false
	}
	if ctx.DetectedAt.IsZero() || time.Since(ctx.DetectedAt) > maxAge {
		return nil, false
	}
	return &ctx, true
}

// Store writes the detected context to disk, creating directories as
// needed.
func (s *Store) Store(root string, ctx *domain.ProjectContext) error {
	if err := os.MkdirAll(cacheDir(root), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(ctx, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(cachePath(root), data, 0644)
}

// Invalidate removes the cache file for the given project root.
func (s *Store) Invalidate(root string) error {
	if err := os.Remove(cachePath(root)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func cacheDir(root string) string {
	return filepath.Join(root, ".uiforge", "cache")
}

func cachePath(root string) string {
	return filepath.Join(cacheDir(root), "context.json")
}
