package gitinfo_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uiforge/uiforge/internal/adapters/outbound/gitinfo"
)

func TestGit_IsRepo_True(t *testing.T) {
	dir := t.TempDir()
	runGit(t, dir, "init")

	gi := gitinfo.New()
	assert.True(t, gi.IsRepo(dir))
}

func TestGit_IsRepo_False(t *testing.T) {
	dir := t.TempDir()
	gi := gitinfo.New()
	assert.False(t, gi.IsRepo(dir))
}

func TestGit_CommitHash_ReturnsHash(t *testing.T) {
	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@test.com")
	runGit(t, dir, "config", "user.name", "Test")

	f := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(f, []byte("hello"), 0644))
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "init")

	gi := gitinfo.New()
	hash, err := gi.CommitHash(dir)
	require.NoError(t, err)
	assert.Len(t, hash, 40, "should be a full SHA-1 hash")
}

func TestGit_CommitHash_NestedDirectoryResolvesRepo(t *testing.T) {
	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@test.com")
	runGit(t, dir, "config", "user.name", "Test")

	nested := filepath.Join(dir, "apps", "web")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "file.txt"), []byte("hello"), 0644))
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "init")

	gi := gitinfo.New()
	hash, err := gi.CommitHash(nested)
	require.NoError(t, err)
	assert.Len(t, hash, 40)
}

func TestGit_CommitHash_NotGitRepo(t *testing.T) {
	dir := t.TempDir()
	gi := gitinfo.New()
	_, err := gi.CommitHash(dir)
	assert.Error(t, err)
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, string(out))
}
