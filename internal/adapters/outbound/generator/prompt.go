package generator

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/uiforge/uiforge/internal/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var prompts = template.Must(template.New("prompts").Funcs(template.FuncMap{
	"join": strings.Join,
}).ParseFS(templateFS, "templates/*.tmpl"))

// promptData is the template input: the request plus a few derived
// fields templates would otherwise have to compute.
type promptData struct {
	domain.PromptRequest
	Language string
	Tailwind bool
	Retry    bool
}

func newPromptData(req domain.PromptRequest) promptData {
	lang := "JSX (JavaScript)"
	if req.TypeScript {
		lang = "TSX (TypeScript)"
	}
	return promptData{
		PromptRequest: req,
		Language:      lang,
		Tailwind:      req.Styling == domain.StylingTailwind,
		Retry:         req.PreviousCode != "",
	}
}

func renderSystemPrompt(req domain.PromptRequest) (string, error) {
	return render("system.tmpl", newPromptData(req))
}

func renderUserPrompt(req domain.PromptRequest) (string, error) {
	name := "generate.tmpl"
	if req.PreviousCode != "" {
		name = "retry.tmpl"
	}
	return render(name, newPromptData(req))
}

func render(name string, data promptData) (string, error) {
	var b strings.Builder
	if err := prompts.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return strings.TrimSpace(b.String()), nil
}
