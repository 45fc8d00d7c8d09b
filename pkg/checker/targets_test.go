package checker

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetsExplicitPaths(t *testing.T) {
	root := t.TempDir()
	abs := writeFile(t, root, "present.txt", []byte("x"))
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o755))
	writeFile(t, filepath.Join(root, "sub"), "nested.txt", []byte("x"))

	targets, err := Targets([]string{
		"present.txt",    // relative, exists
		abs,              // absolute, exists (and duplicates are kept)
		"missing.txt",    // dropped: does not exist
		"sub",            // dropped: directory
		"sub/nested.txt", // relative nested
	}, root)

	require.NoError(t, err)
	assert.Equal(t, []string{abs, abs, filepath.Join(root, "sub", "nested.txt")}, targets)
}

func TestTargetsTrackedFiles(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	root := t.TempDir()
	gitRun(t, root, "init")
	gitRun(t, root, "config", "user.email", "test@example.com")
	gitRun(t, root, "config", "user.name", "test")

	writeFile(t, root, "tracked.txt", []byte("x"))
	writeFile(t, root, "untracked.txt", []byte("x"))
	gitRun(t, root, "add", "tracked.txt")
	gitRun(t, root, "commit", "-m", "init")

	targets, err := Targets(nil, root)

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "tracked.txt")}, targets)
}

func TestTargetsTrackedButDeleted(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	root := t.TempDir()
	gitRun(t, root, "init")
	gitRun(t, root, "config", "user.email", "test@example.com")
	gitRun(t, root, "config", "user.name", "test")

	path := writeFile(t, root, "ghost.txt", []byte("x"))
	gitRun(t, root, "add", "ghost.txt")
	gitRun(t, root, "commit", "-m", "init")
	require.NoError(t, os.Remove(path))

	targets, err := Targets(nil, root)

	require.NoError(t, err)
	assert.Empty(t, targets)
}

func TestTargetsOutsideRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	_, err := Targets(nil, t.TempDir())
	assert.Error(t, err)
}

func gitRun(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
}
