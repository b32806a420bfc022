// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package organize sorts the files directly inside a directory into category
// subfolders.
//
// A run has two stages: EnsureFolders creates one subfolder per category,
// then MoveFiles renames each regular file into the folder its extension
// maps to. The listing is taken once before any move, and only the top level
// is read, so files already sorted into a category folder are never visited
// again. There is no rollback: a failure part way through leaves the moves
// made so far in place.
package organize

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/file-organizer/internal/category"
	"github.com/pdiddy/file-organizer/pkg/types"
)

// Recorder receives the runs and moves made by an Organizer.
// *journal.Journal satisfies it.
type Recorder interface {
	BeginRun(ctx context.Context, baseDir string, startedAt time.Time) (string, error)
	RecordMove(ctx context.Context, runID string, m types.Move) error
	FinishRun(ctx context.Context, summary types.RunSummary, runErr error) error
}

// Organizer runs the ensure-then-move pipeline over a directory.
type Organizer struct {
	policy   types.CollisionPolicy
	lockDir  string
	recorder Recorder
	w        io.Writer
	warn     io.Writer
	now      func() time.Time
}

// New builds an Organizer from cfg. Progress lines are written to w and
// warnings to warn. rec may be nil to disable the journal.
func New(cfg types.OrganizerConfig, rec Recorder, w, warn io.Writer) (*Organizer, error) {
	policy, err := types.ParseCollisionPolicy(string(cfg.OnCollision))
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = io.Discard
	}
	if warn == nil {
		warn = io.Discard
	}
	return &Organizer{
		policy:   policy,
		lockDir:  cfg.LockDir,
		recorder: rec,
		w:        w,
		warn:     warn,
		now:      time.Now,
	}, nil
}

// EnsureFolders creates a subfolder of base for every category that does
// not have one yet. It is idempotent. base itself must already exist.
func EnsureFolders(base string) error {
	info, err := os.Stat(base)
	if err != nil {
		return fmt.Errorf("reading base directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", base, ErrNotDirectory)
	}

	for _, name := range category.Names() {
		dir := filepath.Join(base, name)
		info, err := os.Stat(dir)
		if err == nil {
			if !info.IsDir() {
				return fmt.Errorf("category folder %s: %w", dir, ErrNotDirectory)
			}
			continue
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", dir, err)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}

// Run organizes base: it takes the directory lock, ensures the category
// folders, moves every file and closes the journal run. The summary covers
// whatever was moved even when an error is returned.
func (o *Organizer) Run(ctx context.Context, base string) (types.RunSummary, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return types.RunSummary{}, fmt.Errorf("resolving %s: %w", base, err)
	}
	summary := types.RunSummary{BaseDir: abs, StartedAt: o.now()}

	release, err := acquireLock(o.lockDir, abs)
	if err != nil {
		return summary, err
	}
	defer release()

	if o.recorder != nil {
		id, err := o.recorder.BeginRun(ctx, abs, summary.StartedAt)
		if err != nil {
			return summary, fmt.Errorf("starting journal run: %w", err)
		}
		summary.RunID = id
	}

	runErr := EnsureFolders(abs)
	if runErr == nil {
		runErr = o.moveFiles(ctx, abs, &summary)
	}
	summary.FinishedAt = o.now()

	if o.recorder != nil {
		if err := o.recorder.FinishRun(context.WithoutCancel(ctx), summary, runErr); err != nil {
			fmt.Fprintf(o.warn, "warning: journal update failed: %v\n", err)
		}
	}
	return summary, runErr
}

// MoveFiles moves every regular file directly inside base into its category
// folder. The folders must already exist; see EnsureFolders.
func (o *Organizer) MoveFiles(ctx context.Context, base string) (types.RunSummary, error) {
	summary := types.RunSummary{BaseDir: base, StartedAt: o.now()}
	err := o.moveFiles(ctx, base, &summary)
	summary.FinishedAt = o.now()
	return summary, err
}

func (o *Organizer) moveFiles(ctx context.Context, base string, summary *types.RunSummary) error {
	entries, err := os.ReadDir(base)
	if err != nil {
		return fmt.Errorf("listing %s: %w", base, err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !entry.Type().IsRegular() {
			continue
		}

		name := entry.Name()
		cat := category.Classify(name)
		dest, renamed, err := o.destination(base, cat, name)
		if err != nil {
			return err
		}
		if dest == "" {
			summary.Skipped++
			fmt.Fprintf(o.w, "skipped: %s (%s already exists)\n", name, filepath.Join(cat, name))
			continue
		}

		if err := os.Rename(filepath.Join(base, name), dest); err != nil {
			return fmt.Errorf("moving %s: %w", name, err)
		}

		m := types.Move{
			Source:      name,
			Category:    cat,
			Destination: dest,
			Renamed:     renamed,
			MovedAt:     o.now(),
		}
		summary.Record(m)
		fmt.Fprintf(o.w, "moved: %s -> %s\n", name, filepath.Join(cat, filepath.Base(dest)))

		if o.recorder != nil && summary.RunID != "" {
			if err := o.recorder.RecordMove(context.WithoutCancel(ctx), summary.RunID, m); err != nil {
				fmt.Fprintf(o.warn, "warning: journal write failed: %v\n", err)
			}
		}
	}
	return nil
}

// destination picks the target path for name in category cat according to
// the collision policy. An empty path with a nil error means skip the file.
func (o *Organizer) destination(base, cat, name string) (string, bool, error) {
	dest := filepath.Join(base, cat, name)
	exists, err := pathExists(dest)
	if err != nil {
		return "", false, err
	}
	if !exists {
		return dest, false, nil
	}

	switch o.policy {
	case types.CollisionOverwrite:
		return dest, false, nil
	case types.CollisionSkip:
		return "", false, nil
	case types.CollisionRename:
		alt, err := freeName(filepath.Join(base, cat), name)
		if err != nil {
			return "", false, err
		}
		return alt, true, nil
	default:
		return "", false, fmt.Errorf("moving %s to %s: %w", name, cat, ErrDestinationExists)
	}
}

// freeName returns the first "stem (N).ext" path in dir that does not exist.
func freeName(dir, name string) (string, error) {
	ext := category.Extension(name)
	stem := strings.TrimSuffix(name, ext)
	for n := 1; ; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
		exists, err := pathExists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
}

func pathExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("checking %s: %w", path, err)
}
