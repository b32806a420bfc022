// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCollisionPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    CollisionPolicy
		wantErr bool
	}{
		{"", CollisionError, false},
		{"error", CollisionError, false},
		{"rename", CollisionRename, false},
		{"skip", CollisionSkip, false},
		{"overwrite", CollisionOverwrite, false},
		{"Rename", "", true},
		{"merge", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCollisionPolicy(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunSummaryRecord(t *testing.T) {
	var s RunSummary
	s.Record(Move{Source: "a.png", Category: "Images"})
	s.Record(Move{Source: "b.png", Category: "Images", Renamed: true})
	s.Record(Move{Source: "c.txt", Category: "Documents"})

	assert.Equal(t, 3, s.Moved)
	assert.Equal(t, 1, s.Renamed)
	assert.Equal(t, map[string]int{"Images": 2, "Documents": 1}, s.ByCategory)
	assert.Equal(t, []string{"Documents", "Images"}, s.Categories())
}
