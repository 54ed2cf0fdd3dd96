package domain

// ValidationType identifies one validation axis.
type ValidationType string

const (
	ValidationTypescript    ValidationType = "typescript"
	ValidationImports       ValidationType = "imports"
	ValidationStyling       ValidationType = "styling"
	ValidationNaming        ValidationType = "naming"
	ValidationStructure     ValidationType = "structure"
	ValidationAccessibility ValidationType = "accessibility"
	ValidationPerformance   ValidationType = "performance"
	ValidationSecurity      ValidationType = "security"
)

// AxisOrder is the fixed order in which checker output is merged.
// Reports and merged results always list axes in this order.
var AxisOrder = []ValidationType{
	ValidationTypescript,
	ValidationImports,
	ValidationStyling,
	ValidationNaming,
	ValidationStructure,
	ValidationAccessibility,
	ValidationPerformance,
	ValidationSecurity,
}

// IsValidValidationType reports whether t names a known axis.
func IsValidValidationType(t ValidationType) bool {
	for _, v := range AxisOrder {
		if t == v {
			return true
		}
	}
	return false
}

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Issue represents one problem detected in a candidate component file.
// Issues are immutable once created; duplicates are permitted and
// deduplication is not guaranteed.
type Issue struct {
	Type       ValidationType `json:"type"`
	Severity   string         `json:"severity"`
	Message    string         `json:"message"`
	File       string         `json:"file,omitempty"`
	Line       int            `json:"line,omitempty"`
	Column     int            `json:"column,omitempty"`
	Suggestion string         `json:"suggestion,omitempty"`
	Snippet    string         `json:"snippet,omitempty"`
}

// IsError reports whether the issue carries error severity.
func (i Issue) IsError() bool { return i.Severity == SeverityError }
