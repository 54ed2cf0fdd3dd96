package domain

import "time"

// Framework identifies the target React framework of a project.
type Framework string

const (
	FrameworkNext  Framework = "next"
	FrameworkReact Framework = "react"
	FrameworkRemix Framework = "remix"
	FrameworkVite  Framework = "vite"
)

// ValidFrameworks enumerates all recognized framework identifiers.
var ValidFrameworks = []Framework{
	FrameworkNext,
	FrameworkReact,
	FrameworkRemix,
	FrameworkVite,
}

// Styling identifies the declared styling approach of a project.
type Styling string

const (
	StylingTailwind         Styling = "tailwind"
	StylingCSS              Styling = "css"
	StylingCSSModules       Styling = "css-modules"
	StylingStyledComponents Styling = "styled-components"
)

// ValidStylings enumerates all recognized styling identifiers.
var ValidStylings = []Styling{
	StylingTailwind,
	StylingCSS,
	StylingCSSModules,
	StylingStyledComponents,
}

func IsValidFramework(f Framework) bool {
	for _, v := range ValidFrameworks {
		if f == v {
			return true
		}
	}
	return false
}

func IsValidStyling(s Styling) bool {
	for _, v := range ValidStylings {
		if s == v {
			return true
		}
	}
	return false
}

// ProjectContext carries the read-only project metadata checkers need:
// where the project lives, what framework and styling system it uses,
// and where components belong. Built by the detector, optionally
// adjusted by .uiforge.yaml overrides.
type ProjectContext struct {
	Root         string    `json:"root"`
	Framework    Framework `json:"framework"`
	Styling      Styling   `json:"styling"`
	TypeScript   bool      `json:"typescript"`
	ComponentDir string    `json:"component_dir"`
	Commit       string    `json:"commit,omitempty"`
	DetectedAt   time.Time `json:"detected_at"`
}
