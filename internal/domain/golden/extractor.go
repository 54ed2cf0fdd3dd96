package golden

import (
	"errors"
	"strings"

	"github.com/uiforge/uiforge/internal/domain"
	"github.com/uiforge/uiforge/internal/domain/source"
)

// DefaultExcerptLines caps how much of an example file enters a prompt.
const DefaultExcerptLines = 60

// BuildExample turns a ranked component's content into a prompt example.
// The excerpt keeps the file head — directive, imports, props types, and
// the component signature all live there — and elides the rest.
func BuildExample(relPath, content string, maxLines int) (domain.Example, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Example{}, errors.New("example content is empty")
	}
	if maxLines <= 0 {
		maxLines = DefaultExcerptLines
	}
	return domain.Example{Path: relPath, Excerpt: Excerpt(content, maxLines)}, nil
}

// Excerpt returns up to maxLines lines of content, collapsing runs of
// blank lines and marking the cut when the file continues.
func Excerpt(content string, maxLines int) string {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	var out []string
	truncated := false
	blank := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			blank++
			if blank > 1 {
				continue
			}
		} else {
			blank = 0
		}
		out = append(out, line)
		if len(out) >= maxLines {
			truncated = nonBlankLineCount(lines[i+1:]) > 0
			break
		}
	}

	// drop a trailing blank before the elision marker
	for len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
		out = out[:len(out)-1]
	}
	if truncated {
		out = append(out, "// …")
	}
	return strings.Join(out, "\n")
}

// ExampleBindings lists the named bindings an example imports, letting
// prompt templates tell the model which libraries the project already
// uses.
func ExampleBindings(content string) []string {
	var all []string
	seen := map[string]bool{}
	for _, stmt := range source.ParseImports(content) {
		for _, b := range stmt.Bindings() {
			if !seen[b] {
				seen[b] = true
				all = append(all, b)
			}
		}
	}
	return all
}

func nonBlankLineCount(lines []string) int {
	n := 0
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			n++
		}
	}
	return n
}
