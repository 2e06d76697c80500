package planner_test

import (
	"testing"
	"time"

	"go-dispo/internal/planner"

	"github.com/stretchr/testify/assert"
)

func dt(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	assert.NoError(t, err)
	return parsed
}

func strPtr(s string) *string { return &s }

func TestOverlapsInterval(t *testing.T) {
	tests := []struct {
		name     string
		aStart   string
		aEnd     string
		bStart   string
		bEnd     string
		overlaps bool
	}{
		{"disjoint", "2025-01-06T06:00:00Z", "2025-01-06T14:00:00Z", "2025-01-06T15:00:00Z", "2025-01-06T22:00:00Z", false},
		{"partial overlap", "2025-01-06T06:00:00Z", "2025-01-06T14:00:00Z", "2025-01-06T12:00:00Z", "2025-01-06T20:00:00Z", true},
		{"containment", "2025-01-06T06:00:00Z", "2025-01-06T22:00:00Z", "2025-01-06T10:00:00Z", "2025-01-06T12:00:00Z", true},
		{"back to back shares endpoint", "2025-01-06T06:00:00Z", "2025-01-06T14:00:00Z", "2025-01-06T14:00:00Z", "2025-01-06T22:00:00Z", false},
		{"identical", "2025-01-06T06:00:00Z", "2025-01-06T14:00:00Z", "2025-01-06T06:00:00Z", "2025-01-06T14:00:00Z", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := planner.OverlapsInterval(dt(t, tt.aStart), dt(t, tt.aEnd), dt(t, tt.bStart), dt(t, tt.bEnd))
			assert.Equal(t, tt.overlaps, got)

			// symmetric
			got = planner.OverlapsInterval(dt(t, tt.bStart), dt(t, tt.bEnd), dt(t, tt.aStart), dt(t, tt.aEnd))
			assert.Equal(t, tt.overlaps, got)
		})
	}
}

func TestDetectConflicts(t *testing.T) {
	p1 := planner.Candidate{ID: "p1", Name: "Mara Vogel", Role: "DISPONENT"}
	candidate := planner.ShiftRef{
		ID:      "shift-new",
		Date:    "2025-01-06",
		StartDT: dt(t, "2025-01-06T06:00:00Z"),
		EndDT:   dt(t, "2025-01-06T14:00:00Z"),
	}

	t.Run("no history means no conflicts", func(t *testing.T) {
		assert.Empty(t, planner.DetectConflicts(p1, candidate, nil))
	})

	t.Run("other persons are ignored", func(t *testing.T) {
		existing := []planner.PersonShift{
			{PersonID: "p2", Shift: candidate},
		}
		assert.Empty(t, planner.DetectConflicts(p1, existing[0].Shift, existing))
	})

	t.Run("overlap and same date both reported", func(t *testing.T) {
		existing := []planner.PersonShift{
			{PersonID: "p1", Shift: planner.ShiftRef{
				ID:      "shift-old",
				Date:    "2025-01-06",
				StartDT: dt(t, "2025-01-06T12:00:00Z"),
				EndDT:   dt(t, "2025-01-06T20:00:00Z"),
			}},
		}

		conflicts := planner.DetectConflicts(p1, candidate, existing)
		codes := make([]string, len(conflicts))
		for i, c := range conflicts {
			codes[i] = c.Code
		}
		assert.Contains(t, codes, planner.ConflictTimeOverlap)
		assert.Contains(t, codes, planner.ConflictDoubleApplication)
	})

	t.Run("same date without overlap is double application only", func(t *testing.T) {
		existing := []planner.PersonShift{
			{PersonID: "p1", Shift: planner.ShiftRef{
				ID:      "shift-old",
				Date:    "2025-01-06",
				StartDT: dt(t, "2025-01-06T15:00:00Z"),
				EndDT:   dt(t, "2025-01-06T22:00:00Z"),
			}},
		}

		conflicts := planner.DetectConflicts(p1, candidate, existing)
		assert.Len(t, conflicts, 1)
		assert.Equal(t, planner.ConflictDoubleApplication, conflicts[0].Code)
	})

	t.Run("home location differs from shift location", func(t *testing.T) {
		commuter := p1
		commuter.HomeLocation = strPtr("Hamburg")
		withLoc := candidate
		withLoc.Location = strPtr("Rendsburg")

		conflicts := planner.DetectConflicts(commuter, withLoc, nil)
		assert.Len(t, conflicts, 1)
		assert.Equal(t, planner.ConflictLocationMismatch, conflicts[0].Code)
		assert.Equal(t, withLoc.ID, conflicts[0].ShiftID)
	})

	t.Run("location mismatch reported alongside booking conflicts", func(t *testing.T) {
		commuter := p1
		commuter.HomeLocation = strPtr("Hamburg")
		withLoc := candidate
		withLoc.Location = strPtr("Rendsburg")

		existing := []planner.PersonShift{
			{PersonID: "p1", Shift: planner.ShiftRef{
				ID:      "shift-old",
				Date:    "2025-01-06",
				StartDT: dt(t, "2025-01-06T15:00:00Z"),
				EndDT:   dt(t, "2025-01-06T22:00:00Z"),
			}},
		}

		conflicts := planner.DetectConflicts(commuter, withLoc, existing)
		codes := make([]string, len(conflicts))
		for i, c := range conflicts {
			codes[i] = c.Code
		}
		assert.Contains(t, codes, planner.ConflictLocationMismatch)
		assert.Contains(t, codes, planner.ConflictDoubleApplication)
	})

	t.Run("missing location on either side is compatible", func(t *testing.T) {
		homebody := p1
		homebody.HomeLocation = strPtr("Hamburg")

		// Shift without a required location.
		assert.Empty(t, planner.DetectConflicts(homebody, candidate, nil))

		// Person without a declared preference.
		withLoc := candidate
		withLoc.Location = strPtr("Rendsburg")
		assert.Empty(t, planner.DetectConflicts(p1, withLoc, nil))
	})
}
