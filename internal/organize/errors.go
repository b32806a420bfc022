// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package organize

import "errors"

// Sentinel errors for package organize, checkable with errors.Is.
var (
	// ErrDestinationExists is returned under the "error" collision policy
	// when a category folder already holds a file of the same name.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrNotDirectory is returned when the base directory, or a path that
	// should be a category folder, is not a directory.
	ErrNotDirectory = errors.New("not a directory")

	// ErrLocked is returned when another run holds the directory lock.
	ErrLocked = errors.New("directory is being organized by another process")
)
