package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uiforge/uiforge/internal/domain"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "uiforge-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "uiforge")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/uiforge")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func fixturePath(name string) string {
	abs, _ := filepath.Abs(filepath.Join("../../testdata/react-app", name))
	return abs
}

func componentPath(fixture, file string) string {
	return filepath.Join(fixturePath(fixture), "src", "components", file)
}

func cleanupState(t *testing.T, fixture string) {
	t.Helper()
	t.Cleanup(func() {
		os.RemoveAll(filepath.Join(fixturePath(fixture), ".uiforge"))
	})
}

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

// decodeJSON reads the first JSON value from combined output, ignoring
// any error line a non-zero exit printed after it.
func decodeJSON(t *testing.T, out string, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(strings.NewReader(out)).Decode(v))
}

// --- Validate Tests ---

func TestE2E_ValidateClean(t *testing.T) {
	cleanupState(t, "clean")
	out, code := run(t, "validate", componentPath("clean", "Button.tsx"))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "1.00")
}

func TestE2E_ValidateDefective(t *testing.T) {
	cleanupState(t, "defective")
	out, code := run(t, "validate", componentPath("defective", "Banner.tsx"))
	assert.Equal(t, 1, code, "errors should fail the gate")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "dangerouslySetInnerHTML")
}

func TestE2E_ValidateWarningsStillPass(t *testing.T) {
	cleanupState(t, "warned")
	out, code := run(t, "validate", componentPath("warned", "Toast.tsx"))
	assert.Equal(t, 0, code, "warnings alone should not fail the gate")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "alt")
}

func TestE2E_ValidateJSON(t *testing.T) {
	cleanupState(t, "defective")
	out, code := run(t, "validate", componentPath("defective", "Banner.tsx"), "--json")
	assert.Equal(t, 1, code)

	var result domain.ValidationResult
	decodeJSON(t, out, &result)
	assert.False(t, result.Passed)
	assert.Less(t, result.Score, 1.0)
	assert.NotEmpty(t, result.Issues)
	assert.NotEmpty(t, result.Errors())
}

func TestE2E_ValidateSingleAxis(t *testing.T) {
	cleanupState(t, "defective")
	out, code := run(t, "validate", componentPath("defective", "Banner.tsx"), "--axis", "styling", "--json")
	assert.Equal(t, 0, code, "styling finds only warnings here")

	var result domain.ValidationResult
	decodeJSON(t, out, &result)
	require.NotEmpty(t, result.Issues)
	for _, iss := range result.Issues {
		assert.Equal(t, domain.ValidationStyling, iss.Type)
	}
}

func TestE2E_ValidateUnknownAxis(t *testing.T) {
	cleanupState(t, "clean")
	out, code := run(t, "validate", componentPath("clean", "Button.tsx"), "--axis", "vibes")
	assert.Equal(t, 2, code)
	assert.Contains(t, out, "unknown axis")
}

func TestE2E_ValidateCIMinScore(t *testing.T) {
	cleanupState(t, "warned")
	_, code := run(t, "validate", componentPath("warned", "Toast.tsx"), "--ci", "--min", "0.95")
	assert.Equal(t, 1, code, "should exit 1 when below minimum")
}

func TestE2E_ValidateOrdering(t *testing.T) {
	cleanupState(t, "clean")
	cleanupState(t, "warned")
	cleanupState(t, "defective")

	cleanOut, _ := run(t, "validate", componentPath("clean", "Button.tsx"), "--json")
	warnedOut, _ := run(t, "validate", componentPath("warned", "Toast.tsx"), "--json")
	defectiveOut, _ := run(t, "validate", componentPath("defective", "Banner.tsx"), "--json")

	var clean, warned, defective domain.ValidationResult
	decodeJSON(t, cleanOut, &clean)
	decodeJSON(t, warnedOut, &warned)
	decodeJSON(t, defectiveOut, &defective)

	assert.Greater(t, clean.Score, warned.Score, "clean > warned")
	assert.Greater(t, warned.Score, defective.Score, "warned > defective")
}

// --- Fix Tests ---

func TestE2E_FixPrint(t *testing.T) {
	cleanupState(t, "defective")
	out, code := run(t, "fix", componentPath("defective", "Banner.tsx"), "--print")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "useState, useEffect", "duplicate imports should collapse")
	assert.Contains(t, out, `className="bg-gray-100 p-4"`, "repeated scale token should collapse")
	assert.NotContains(t, out, "bg-gray-100-100-100")
}

func TestE2E_FixJSON(t *testing.T) {
	cleanupState(t, "defective")
	out, code := run(t, "fix", componentPath("defective", "Banner.tsx"), "--json")
	assert.Equal(t, 0, code)

	var outcome domain.FixOutcome
	decodeJSON(t, out, &outcome)
	assert.True(t, outcome.Accepted)
	assert.False(t, outcome.Written, "no --write given")
	require.Len(t, outcome.Applied, 2)
	assert.Equal(t, "collapse-duplicate-imports", outcome.Applied[0].Rule)
	assert.Equal(t, "repeated-scale-token", outcome.Applied[1].Rule)
	assert.Greater(t, outcome.Fixed.Score, outcome.Original.Score)
}

func TestE2E_FixNothingToDo(t *testing.T) {
	cleanupState(t, "clean")
	out, code := run(t, "fix", componentPath("clean", "Button.tsx"), "--json")
	assert.Equal(t, 0, code)

	var outcome domain.FixOutcome
	decodeJSON(t, out, &outcome)
	assert.True(t, outcome.Accepted)
	assert.Empty(t, outcome.Applied)
}

// --- Context Tests ---

func TestE2E_Context(t *testing.T) {
	cleanupState(t, "clean")
	out, code := run(t, "context", fixturePath("clean"))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "next")
	assert.Contains(t, out, "tailwind")
}

func TestE2E_ContextJSON(t *testing.T) {
	cleanupState(t, "clean")
	out, code := run(t, "context", fixturePath("clean"), "--json")
	assert.Equal(t, 0, code)

	var payload struct {
		Context domain.ProjectContext `json:"context"`
		Config  domain.ProjectConfig  `json:"config"`
	}
	decodeJSON(t, out, &payload)
	assert.Equal(t, domain.FrameworkNext, payload.Context.Framework)
	assert.Equal(t, domain.StylingTailwind, payload.Context.Styling)
	assert.True(t, payload.Context.TypeScript)
	assert.Equal(t, "src/components", payload.Context.ComponentDir)
}

// --- History Tests ---

func TestE2E_History(t *testing.T) {
	cleanupState(t, "warned")
	_, code := run(t, "validate", componentPath("warned", "Toast.tsx"))
	require.Equal(t, 0, code)

	out, code := run(t, "history", fixturePath("warned"))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Toast.tsx")
}

// --- Init Tests ---

func TestE2E_Init(t *testing.T) {
	dir := t.TempDir()
	out, code := run(t, "init", dir)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, ".uiforge.yaml")
	assert.FileExists(t, filepath.Join(dir, ".uiforge.yaml"))

	_, code = run(t, "init", dir)
	assert.Equal(t, 2, code, "existing config should not be overwritten")
}

// --- Version Test ---

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "uiforge")
}
