// Package backup periodically snapshots the SQLite storage file and retains
// the most recent copies. A snapshot taken while writes are in flight is
// engine-consistent at best, not request-consistent; that is acceptable for
// this application's durability goals, and the core never assumes exclusive
// access to the storage file.
package backup

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"invitelink/configs/configslog"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Scheduler copies SourcePath into Dir every Interval and prunes old copies
// down to Keep.
type Scheduler struct {
	SourcePath string
	Dir        string
	Interval   time.Duration
	Keep       int
}

// New builds a Scheduler. Keep values below 1 are clamped to 1.
func New(sourcePath, dir string, interval time.Duration, keep int) *Scheduler {
	if keep < 1 {
		keep = 1
	}
	return &Scheduler{SourcePath: sourcePath, Dir: dir, Interval: interval, Keep: keep}
}

// Run blocks, snapshotting on every tick until ctx is cancelled. Failures are
// logged and the next tick tries again; a missed backup is not fatal.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Snapshot(); err != nil {
				configslog.Log.Error("storage backup failed", zap.Error(err))
			}
		}
	}
}

// Snapshot copies the storage file into the backup directory under a
// timestamped name and prunes snapshots beyond Keep.
func (s *Scheduler) Snapshot() error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create backup directory: %w", err)
	}

	name := s.snapshotName(time.Now().UTC())
	if err := copyFile(s.SourcePath, filepath.Join(s.Dir, name)); err != nil {
		return err
	}
	configslog.SLog.Infow("storage snapshot written", "file", name)

	return s.prune()
}

// snapshotName embeds a sortable UTC timestamp plus a short random suffix so
// two snapshots within the same second cannot clobber each other.
func (s *Scheduler) snapshotName(now time.Time) string {
	base := filepath.Base(s.SourcePath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%s-%s-%s%s", stem, now.Format("20060102T150405Z"), uuid.NewString()[:8], ext)
}

func (s *Scheduler) prune() error {
	base := filepath.Base(s.SourcePath)
	ext := filepath.Ext(base)
	prefix := strings.TrimSuffix(base, ext) + "-"

	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return err
	}
	var snapshots []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasPrefix(entry.Name(), prefix) {
			snapshots = append(snapshots, entry.Name())
		}
	}
	if len(snapshots) <= s.Keep {
		return nil
	}

	// Timestamped names sort chronologically; oldest first.
	sort.Strings(snapshots)
	for _, name := range snapshots[:len(snapshots)-s.Keep] {
		if err := os.Remove(filepath.Join(s.Dir, name)); err != nil {
			return fmt.Errorf("prune snapshot %s: %w", name, err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open storage file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy snapshot: %w", err)
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
