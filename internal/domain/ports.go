package domain

import (
	"context"
	"time"
)

// ContextDetector inspects a project tree and reports its framework,
// styling system, and component layout.
type ContextDetector interface {
	Detect(root string) (*ProjectContext, error)
}

// ComponentScanner discovers candidate component files under a project
// root and reads their contents for example extraction.
type ComponentScanner interface {
	Scan(root string) (*ScanResult, error)
	Read(path string) (string, error)
}

// ScanResult holds the result of scanning a project directory.
type ScanResult struct {
	RootPath          string          `json:"root_path"`
	Components        []ComponentFile `json:"components"`
	HasPackageJSON    bool            `json:"has_package_json"`
	HasTSConfig       bool            `json:"has_ts_config"`
	HasTailwindConfig bool            `json:"has_tailwind_config"`
	HasUIForgeDir     bool            `json:"has_uiforge_dir"`
}

// ComponentFile describes one discovered component source file.
type ComponentFile struct {
	Path         string    `json:"path"`
	RelativePath string    `json:"relative_path"`
	Size         int64     `json:"size"`
	ModTime      time.Time `json:"mod_time"`
}

// ConfigLoader loads the project configuration, merged over defaults.
type ConfigLoader interface {
	Load(root string) (ProjectConfig, error)
}

// ComponentGenerator produces candidate component source from a prompt
// request. Implementations strip any markdown fencing before returning.
type ComponentGenerator interface {
	Generate(ctx context.Context, req PromptRequest) (string, error)
}

// PromptRequest carries everything the generator needs to render its
// prompt templates. PreviousCode and Issues are set on retry attempts so
// the model can correct its own output.
type PromptRequest struct {
	Description  string
	Name         string
	Framework    Framework
	Styling      Styling
	TypeScript   bool
	Examples     []Example
	PreviousCode string
	Issues       []Issue
}

// Example is an in-project component excerpt used to ground generation.
type Example struct {
	Path    string
	Excerpt string
}

// FileWriter persists component source. WriteComponent is the gated
// entry point: it refuses to write unless the result passed or force
// is set, returning ErrNotValidated.
type FileWriter interface {
	Write(path string, data []byte) error
	WriteComponent(path, content string, result *ValidationResult, force bool) error
}

// KeyStore stores the generator API key.
type KeyStore interface {
	Get() (string, error)
	Set(key string) error
	Delete() error
}

// GitInfo reports version-control metadata for a project path.
type GitInfo interface {
	CommitHash(path string) (string, error)
}

// HistoryStore records validation and fix runs under the project's
// .uiforge directory.
type HistoryStore interface {
	Append(root string, entry HistoryEntry) error
	Load(root string, limit int) ([]HistoryEntry, error)
}

// HistoryEntry is one recorded run.
type HistoryEntry struct {
	Timestamp    time.Time `json:"timestamp"`
	File         string    `json:"file"`
	Action       string    `json:"action"`
	Score        float64   `json:"score"`
	Passed       bool      `json:"passed"`
	Errors       int       `json:"errors"`
	Warnings     int       `json:"warnings"`
	Infos        int       `json:"infos"`
	FixesApplied int       `json:"fixes_applied,omitempty"`
	Commit       string    `json:"commit,omitempty"`
}

// ContextCache caches detected project contexts between invocations.
type ContextCache interface {
	Load(root string) (*ProjectContext, bool)
	Store(root string, ctx *ProjectContext) error
}
