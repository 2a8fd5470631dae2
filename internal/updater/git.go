package updater

import (
	"context"
	"os/exec"
	"strings"
)

// Git runs git against a checkout directory.
type Git struct {
	dir string
}

// NewGit creates a Git updater for the given directory.
func NewGit(dir string) *Git {
	return &Git{dir: dir}
}

// runGitCommand executes git with the given arguments. Overridable for tests.
var runGitCommand = func(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// IsRepository reports whether the directory sits inside a git work tree.
// Uses rev-parse, which never mutates the checkout.
func (g *Git) IsRepository(ctx context.Context) bool {
	out, err := runGitCommand(ctx, g.dir, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) == "true"
}

// alreadyCurrentMarkers cover modern and pre-2.15 git phrasing.
var alreadyCurrentMarkers = []string{
	"already up to date",
	"already up-to-date",
}

// Pull syncs the checkout with its remote.
func (g *Git) Pull(ctx context.Context) Result {
	out, err := runGitCommand(ctx, g.dir, "pull")
	text := strings.TrimSpace(string(out))

	if err != nil {
		msg := text
		if msg == "" {
			msg = err.Error()
		}
		return Result{Status: StatusFailed, Message: msg}
	}

	lower := strings.ToLower(text)
	for _, marker := range alreadyCurrentMarkers {
		if strings.Contains(lower, marker) {
			return Result{Status: StatusAlreadyCurrent, Message: "Already up to date"}
		}
	}

	return Result{Status: StatusUpdated, Message: "Repository updated"}
}
