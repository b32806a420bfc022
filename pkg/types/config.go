// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// CollisionPolicy selects what happens when a file's destination already exists.
type CollisionPolicy string

const (
	// CollisionError stops the run at the first collision.
	CollisionError CollisionPolicy = "error"

	// CollisionRename moves the file under the first free "name (N).ext".
	CollisionRename CollisionPolicy = "rename"

	// CollisionSkip leaves the colliding file where it is.
	CollisionSkip CollisionPolicy = "skip"

	// CollisionOverwrite replaces the existing destination file.
	CollisionOverwrite CollisionPolicy = "overwrite"
)

// CollisionPolicies lists every accepted policy in help-text order.
var CollisionPolicies = []CollisionPolicy{
	CollisionError,
	CollisionRename,
	CollisionSkip,
	CollisionOverwrite,
}

// ParseCollisionPolicy converts a flag or config value into a CollisionPolicy.
// The empty string selects CollisionError.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	if s == "" {
		return CollisionError, nil
	}
	for _, p := range CollisionPolicies {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown collision policy %q: use error, rename, skip, or overwrite", s)
}

// JournalConfig holds settings for the SQLite move journal.
type JournalConfig struct {
	// Path is the database file. Empty disables the journal.
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// OrganizerConfig holds settings for an organize run.
type OrganizerConfig struct {
	// OnCollision selects the collision policy (default "error").
	OnCollision CollisionPolicy `json:"on_collision" yaml:"on_collision" mapstructure:"on_collision"`

	// LockDir is where per-directory run locks are created (default: OS temp dir).
	LockDir string `json:"lock_dir" yaml:"lock_dir" mapstructure:"lock_dir"`

	Journal JournalConfig `json:"journal" yaml:"journal" mapstructure:"journal"`
}
