package rename

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aarshrpatel/document-analyzer-agent/internal/common"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestResolveTargetNoCollision(t *testing.T) {
	dir := t.TempDir()
	r := NewRenamer(nil)

	target, err := r.ResolveTarget(dir, "report.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report.txt"), target)
}

func TestResolveTargetSuffixes(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "report.txt"))
	touch(t, filepath.Join(dir, "report_1.txt"))

	r := NewRenamer(nil)
	target, err := r.ResolveTarget(dir, "report.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report_2.txt"), target)
}

func TestResolveTargetProbeCap(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "report.txt"))
	touch(t, filepath.Join(dir, "report_1.txt"))
	touch(t, filepath.Join(dir, "report_2.txt"))

	r := NewRenamer(nil)
	r.MaxProbes = 2

	_, err := r.ResolveTarget(dir, "report.txt")
	require.Error(t, err)
	assert.True(t, common.IsRenameFailure(err))
}

func TestRenameMovesFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "scan-001.pdf")
	touch(t, src)

	r := NewRenamer(nil)
	resolved, err := r.Rename(src, "4471_2024-03-01.pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "4471_2024-03-01.pdf"), resolved)

	assert.NoFileExists(t, src)
	assert.FileExists(t, resolved)
}

func TestRenameAvoidsExisting(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "scan-001.pdf")
	touch(t, src)
	touch(t, filepath.Join(dir, "4471.pdf"))

	r := NewRenamer(nil)
	resolved, err := r.Rename(src, "4471.pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "4471_1.pdf"), resolved)

	// the pre-existing file was not overwritten
	assert.FileExists(t, filepath.Join(dir, "4471.pdf"))
}

func TestRenameMissingSource(t *testing.T) {
	dir := t.TempDir()

	r := NewRenamer(nil)
	_, err := r.Rename(filepath.Join(dir, "vanished.pdf"), "new.pdf")
	require.Error(t, err)
	assert.True(t, common.IsRenameFailure(err))
}
