package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/uiforge/uiforge/internal/domain"
)

// Gemini implements domain.ComponentGenerator against the Gemini API.
type Gemini struct {
	client *genai.Client
	cfg    domain.GeneratorConfig
}

// NewGemini dials the API with the given key. The caller owns Close.
func NewGemini(ctx context.Context, apiKey string, cfg domain.GeneratorConfig) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return &Gemini{client: client, cfg: cfg}, nil
}

func (g *Gemini) Close() error {
	return g.client.Close()
}

// Generate renders the prompt templates for req and returns the model's
// response with any markdown fencing stripped.
func (g *Gemini) Generate(ctx context.Context, req domain.PromptRequest) (string, error) {
	system, err := renderSystemPrompt(req)
	if err != nil {
		return "", err
	}
	prompt, err := renderUserPrompt(req)
	if err != nil {
		return "", err
	}

	model := g.client.GenerativeModel(g.cfg.Model)
	model.SetTemperature(g.cfg.Temperature)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("calling %s: %w", g.cfg.Model, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("model returned no candidates")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}

	code := StripFences(out.String())
	if strings.TrimSpace(code) == "" {
		return "", errors.New("model returned empty content")
	}
	return code, nil
}

// StripFences extracts the code from a fenced markdown response. Models
// tend to wrap output in ```tsx blocks and sometimes lead with prose;
// unfenced responses pass through trimmed.
func StripFences(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")

	open := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			open = i
			break
		}
	}
	if open == -1 {
		return strings.TrimSpace(s) + "\n"
	}

	closing := -1
	for i := len(lines) - 1; i > open; i-- {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
			closing = i
			break
		}
	}

	body := lines[open+1:]
	if closing != -1 {
		body = lines[open+1 : closing]
	}
	return strings.TrimSpace(strings.Join(body, "\n")) + "\n"
}
