package httpapi

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uiforge/uiforge/internal/adapters/outbound/generator"
	"github.com/uiforge/uiforge/internal/adapters/outbound/history"
	"github.com/uiforge/uiforge/internal/adapters/outbound/keystore"
	"github.com/uiforge/uiforge/internal/adapters/outbound/scanner"
	"github.com/uiforge/uiforge/internal/adapters/outbound/writer"
	"github.com/uiforge/uiforge/internal/application"
	"github.com/uiforge/uiforge/internal/domain"
	"github.com/uiforge/uiforge/internal/domain/autofix"
	"github.com/uiforge/uiforge/internal/metrics"
)

// handlers serves the API against one project root. The services are
// shared across requests; the Gemini client is built per generate call
// because it needs the stored key and the request context.
type handlers struct {
	root     string
	contexts *application.ContextService
	validate *application.ValidateService
	fix      *application.FixService
}

func (h *handlers) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "uiforge",
		"timestamp": time.Now().UTC(),
	})
}

type validateRequest struct {
	File    string `json:"file"`
	Content string `json:"content"`
	Axis    string `json:"axis"`
}

func (h *handlers) handleValidate(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if req.File == "" && req.Content == "" {
		h.badRequest(c, "either file or content is required")
		return
	}
	if req.Axis != "" && !domain.IsValidValidationType(domain.ValidationType(req.Axis)) {
		h.badRequest(c, "unknown axis "+strconv.Quote(req.Axis)+" (valid: "+strings.Join(axisNames(), ", ")+")")
		return
	}

	content := req.Content
	path := req.File
	if content == "" {
		data, err := os.ReadFile(h.resolve(req.File))
		if err != nil {
			h.fail(c, http.StatusNotFound, "reading file: "+err.Error())
			return
		}
		content = string(data)
	}

	start := time.Now()
	var (
		result *domain.ValidationResult
		err    error
	)
	if req.Axis != "" {
		result, err = h.validate.ValidateAxis(h.root, path, content, domain.ValidationType(req.Axis))
	} else {
		result, err = h.validate.ValidateContent(h.root, path, content)
	}
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	metrics.Get().RecordValidation(result, time.Since(start))
	c.JSON(http.StatusOK, result)
}

type fixRequest struct {
	File    string `json:"file"`
	Content string `json:"content"`
	Write   bool   `json:"write"`
	Force   bool   `json:"force"`
}

// fixResponse re-attaches the fixed source, which the outcome's JSON
// form leaves out.
type fixResponse struct {
	*domain.FixOutcome
	FixedContent string `json:"fixed_content"`
}

func (h *handlers) handleFix(c *gin.Context) {
	var req fixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if req.File == "" && req.Content == "" {
		h.badRequest(c, "either file or content is required")
		return
	}

	var (
		outcome *domain.FixOutcome
		err     error
	)
	if req.Content != "" {
		outcome, err = h.fix.FixContent(h.root, req.File, req.Content)
	} else {
		outcome, err = h.fix.FixFile(h.resolve(req.File), domain.FixOptions{
			Write: req.Write,
			Force: req.Force,
		})
	}
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	metrics.Get().RecordFix(outcome)
	c.JSON(http.StatusOK, fixResponse{FixOutcome: outcome, FixedContent: outcome.Content})
}

type generateRequest struct {
	Description string `json:"description"`
	Name        string `json:"name"`
	Path        string `json:"path"`
	Write       bool   `json:"write"`
	Force       bool   `json:"force"`
}

func (h *handlers) handleGenerate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		h.badRequest(c, "description is required")
		return
	}

	apiKey, err := keystore.New().Get()
	if err != nil {
		h.fail(c, http.StatusServiceUnavailable, err.Error())
		return
	}

	_, cfg, err := h.contexts.Resolve(h.root)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "resolving project context: "+err.Error())
		return
	}

	gen, err := generator.NewGemini(c.Request.Context(), apiKey, cfg.Generator)
	if err != nil {
		h.fail(c, http.StatusBadGateway, "starting generator: "+err.Error())
		return
	}
	defer gen.Close()

	svc := application.NewGenerateService(
		h.contexts,
		h.validate,
		autofix.New(),
		gen,
		scanner.New(),
		writer.New(),
		history.New(),
	)

	start := time.Now()
	outcome, err := svc.Generate(c.Request.Context(), h.root, domain.GenerateRequest{
		Description: req.Description,
		Name:        req.Name,
		Path:        req.Path,
		Write:       req.Write,
		Force:       req.Force,
	})
	if err != nil {
		h.fail(c, http.StatusBadGateway, "generate failed: "+err.Error())
		return
	}

	metrics.Get().RecordGeneration(outcome, time.Since(start))
	c.JSON(http.StatusOK, outcome)
}

func (h *handlers) handleContext(c *gin.Context) {
	if c.Query("refresh") == "true" {
		if _, err := h.contexts.Refresh(h.root); err != nil {
			h.fail(c, http.StatusInternalServerError, "refreshing context: "+err.Error())
			return
		}
	}

	pctx, cfg, err := h.contexts.Resolve(h.root)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"context": pctx,
		"config":  cfg,
	})
}

func (h *handlers) handleHistory(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.badRequest(c, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	entries, err := history.New().Load(h.root, limit)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "loading history: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"count":   len(entries),
	})
}

// resolve anchors a relative file path at the project root.
func (h *handlers) resolve(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(h.root, file)
}

func (h *handlers) badRequest(c *gin.Context, msg string) {
	h.fail(c, http.StatusBadRequest, msg)
}

func (h *handlers) fail(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{
		Error:     msg,
		RequestID: c.GetString("request_id"),
		Timestamp: time.Now().UTC(),
	})
}

func axisNames() []string {
	names := make([]string, 0, len(domain.AxisOrder))
	for _, axis := range domain.AxisOrder {
		names = append(names, string(axis))
	}
	return names
}
