package gitinfo_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/openkraft/a11ykraft/internal/adapters/outbound/gitinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepo_IsGitRepo(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, gitinfo.New().IsGitRepo(dir))

	runGit(t, dir, "init")
	assert.True(t, gitinfo.New().IsGitRepo(dir))
}

func TestRepo_IsGitRepo_Subdirectory(t *testing.T) {
	dir := t.TempDir()
	runGit(t, dir, "init")
	sub := filepath.Join(dir, "packages", "ui")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	assert.True(t, gitinfo.New().IsGitRepo(sub))
}

func TestRepo_CommitHash(t *testing.T) {
	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "ci@example.com")
	runGit(t, dir, "config", "user.name", "CI")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Button.tsx"), []byte("export {}"), 0o644))
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "init")

	hash, err := gitinfo.New().CommitHash(dir)
	require.NoError(t, err)
	assert.Len(t, hash, 40)
}

func TestRepo_CommitHash_Errors(t *testing.T) {
	_, err := gitinfo.New().CommitHash(t.TempDir())
	assert.Error(t, err)

	empty := t.TempDir()
	runGit(t, empty, "init")
	_, err = gitinfo.New().CommitHash(empty)
	assert.ErrorContains(t, err, "HEAD")
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, string(out))
}
