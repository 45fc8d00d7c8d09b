// Package git queries the version-control collaborator. Both queries are
// read-only; the gate never mutates repository state.
package git

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// RepoRoot returns the absolute path of the repository root, as reported by
// git itself. Failing this query (e.g. not inside a repository) is fatal to
// the whole invocation.
func RepoRoot() (string, error) {
	out, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", fmt.Errorf("failed locating repository root: %w", withStderr(err))
	}
	return strings.TrimSpace(string(out)), nil
}

// LsFiles returns all tracked paths relative to root. The listing is
// null-separated so arbitrary filenames survive; invalid byte sequences in
// the output are dropped rather than failing the run.
func LsFiles(root string) ([]string, error) {
	cmd := exec.Command("git", "ls-files", "-z")
	cmd.Dir = root
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed listing tracked files: %w", withStderr(err))
	}

	raw := strings.ToValidUTF8(string(out), "")
	var paths []string
	for _, p := range strings.Split(raw, "\x00") {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths, nil
}

// withStderr surfaces git's own diagnostic alongside the exit error.
func withStderr(err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
		return fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
	}
	return err
}
