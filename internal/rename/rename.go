// Package rename moves a file to a new name without ever overwriting an
// existing one. Collisions are resolved by suffixing _1, _2, ... before the
// extension.
package rename

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aarshrpatel/document-analyzer-agent/internal/common"
)

// DefaultMaxProbes bounds collision probing so adversarial directories
// cannot keep the loop busy forever.
const DefaultMaxProbes = 10000

// Renamer performs collision-safe renames within a file's directory.
type Renamer struct {
	MaxProbes int
	Logger    *slog.Logger
}

func NewRenamer(logger *slog.Logger) *Renamer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renamer{MaxProbes: DefaultMaxProbes, Logger: logger}
}

// ResolveTarget returns dir/candidate if that path is free, otherwise the
// first free dir/{base}_{N}{ext} for N = 1, 2, ... A RENAME failure means
// the probe budget ran out.
func (r *Renamer) ResolveTarget(dir, candidate string) (string, error) {
	target := filepath.Join(dir, candidate)
	if !exists(target) {
		return target, nil
	}

	ext := filepath.Ext(candidate)
	base := strings.TrimSuffix(candidate, ext)

	maxProbes := r.MaxProbes
	if maxProbes <= 0 {
		maxProbes = DefaultMaxProbes
	}
	for n := 1; n <= maxProbes; n++ {
		probe := filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, n, ext))
		if !exists(probe) {
			return probe, nil
		}
	}
	return "", common.NewRenameFailure(
		fmt.Sprintf("no free name for %q after %d probes", candidate, maxProbes), nil)
}

// Rename moves the file at originalPath to a collision-free variant of
// candidate inside the same directory and returns the resolved path. The
// existence check and the move are not atomic as a pair, so a rename that
// loses the race to another actor gets one fresh resolution before failing.
// On failure the original file is untouched.
func (r *Renamer) Rename(originalPath, candidate string) (string, error) {
	dir := filepath.Dir(originalPath)

	target, err := r.ResolveTarget(dir, candidate)
	if err != nil {
		return "", err
	}

	if err := os.Rename(originalPath, target); err != nil {
		r.Logger.Warn("rename.retry", "target", target, "error", err)

		target, rerr := r.ResolveTarget(dir, candidate)
		if rerr != nil {
			return "", rerr
		}
		if err := os.Rename(originalPath, target); err != nil {
			return "", common.NewRenameFailure(
				fmt.Sprintf("rename %s -> %s", originalPath, target), err)
		}
		r.Logger.Info("rename.ok", "from", originalPath, "to", target)
		return target, nil
	}

	r.Logger.Info("rename.ok", "from", originalPath, "to", target)
	return target, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
