package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/uiforge/uiforge/internal/domain"
)

var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	".next":        true,
	"dist":         true,
	"build":        true,
	"out":          true,
	"coverage":     true,
	".uiforge":     true,
}

// componentExts are the extensions the walker collects. Plain .js is
// excluded: in mixed projects it is mostly build output and config.
var componentExts = map[string]bool{
	".tsx": true,
	".jsx": true,
	".ts":  true,
}

// maxReadSize caps example reads; the excerpt builder trims far below
// this anyway.
const maxReadSize = 128 * 1024

// FileScanner implements domain.ComponentScanner by walking the project.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

func (s *FileScanner) Scan(root string) (*domain.ScanResult, error) {
	absPath, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	result := &domain.ScanResult{RootPath: absPath}

	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != absPath && skipDirs[d.Name()] {
				if d.Name() == ".uiforge" {
					result.HasUIForgeDir = true
				}
				return filepath.SkipDir
			}
			return nil
		}

		relPath, _ := filepath.Rel(absPath, path)
		relPath = filepath.ToSlash(relPath)
		isRoot := !strings.Contains(relPath, "/")

		switch {
		case d.Name() == "package.json" && isRoot:
			result.HasPackageJSON = true
		case d.Name() == "tsconfig.json" && isRoot:
			result.HasTSConfig = true
		case isTailwindConfig(d.Name()) && isRoot:
			result.HasTailwindConfig = true
		}

		ext := filepath.Ext(d.Name())
		if !componentExts[ext] || strings.HasSuffix(d.Name(), ".d.ts") {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		result.Components = append(result.Components, domain.ComponentFile{
			Path:         path,
			RelativePath: relPath,
			Size:         info.Size(),
			ModTime:      info.ModTime(),
		})
		return nil
	})

	return result, err
}

// Read returns a component file's content for example extraction,
// capped at maxReadSize.
func (s *FileScanner) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if len(data) > maxReadSize {
		data = data[:maxReadSize]
	}
	return string(data), nil
}

func isTailwindConfig(name string) bool {
	if !strings.HasPrefix(name, "tailwind.config.") {
		return false
	}
	switch filepath.Ext(name) {
	case ".js", ".cjs", ".mjs", ".ts":
		return true
	}
	return false
}
