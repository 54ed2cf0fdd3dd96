package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Git implements domain.GitInfo using go-git. Projects often live below
// the repository root (monorepos), so opening walks up to the nearest
// .git directory.
type Git struct{}

func New() *Git {
	return &Git{}
}

func (g *Git) IsRepo(projectPath string) bool {
	_, err := open(projectPath)
	return err == nil
}

// CommitHash returns the full hash of HEAD for the repository containing
// projectPath.
func (g *Git) CommitHash(projectPath string) (string, error) {
	repo, err := open(projectPath)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}

func open(path string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
}
