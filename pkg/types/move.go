// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"sort"
	"time"
)

// Move records a single file relocated by an organize run.
type Move struct {
	// Source is the file name as it was found in the base directory.
	Source string `json:"source" yaml:"source"`

	// Category is the category folder the file was routed to.
	Category string `json:"category" yaml:"category"`

	// Destination is the full path the file was renamed to.
	Destination string `json:"destination" yaml:"destination"`

	// Renamed is true when the collision policy chose a new file name.
	Renamed bool `json:"renamed,omitempty" yaml:"renamed,omitempty"`

	MovedAt time.Time `json:"moved_at" yaml:"moved_at"`
}

// RunSummary holds the outcome of one organize run.
type RunSummary struct {
	RunID      string         `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	BaseDir    string         `json:"base_dir" yaml:"base_dir"`
	Moved      int            `json:"moved" yaml:"moved"`
	Renamed    int            `json:"renamed" yaml:"renamed"`
	Skipped    int            `json:"skipped" yaml:"skipped"`
	ByCategory map[string]int `json:"by_category" yaml:"by_category"`
	StartedAt  time.Time      `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time      `json:"finished_at" yaml:"finished_at"`
}

// Record adds a completed move to the summary counts.
func (s *RunSummary) Record(m Move) {
	if s.ByCategory == nil {
		s.ByCategory = make(map[string]int)
	}
	s.Moved++
	if m.Renamed {
		s.Renamed++
	}
	s.ByCategory[m.Category]++
}

// Categories returns the names of categories that received files, sorted.
func (s RunSummary) Categories() []string {
	names := make([]string, 0, len(s.ByCategory))
	for name := range s.ByCategory {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
