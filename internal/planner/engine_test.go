package planner_test

import (
	"testing"

	"go-dispo/internal/planner"

	"github.com/stretchr/testify/assert"
)

func earlyShift(t *testing.T, id, date string) planner.ShiftRef {
	t.Helper()
	return planner.ShiftRef{
		ID:      id,
		Date:    date,
		StartDT: dt(t, date+"T06:00:00Z"),
		EndDT:   dt(t, date+"T14:00:00Z"),
	}
}

func TestAutoAssignShifts_SameDaySecondShiftNotDoubleBooked(t *testing.T) {
	// Two open shifts on the same day, one capable person: the person
	// gets the first shift and must not be booked onto the second.
	open := []planner.ShiftRef{
		earlyShift(t, "s1", "2025-01-06"),
		{
			ID:      "s2",
			Date:    "2025-01-06",
			StartDT: dt(t, "2025-01-06T14:00:00Z"),
			EndDT:   dt(t, "2025-01-06T22:00:00Z"),
		},
	}
	persons := []planner.Candidate{
		{ID: "p1", Name: "Anna", Role: "DISPONENT"},
	}

	recs := planner.AutoAssignShifts(open, nil, nil, persons)

	assert.Len(t, recs, 2)
	assert.NotNil(t, recs[0].PersonID)
	assert.Equal(t, "p1", *recs[0].PersonID)
	assert.Nil(t, recs[1].PersonID)
	assert.Equal(t, planner.ReasonConflicts, recs[1].Reason)
}

func TestAutoAssignShifts_PrefersLowerWorkload(t *testing.T) {
	open := []planner.ShiftRef{earlyShift(t, "s1", "2025-01-06")}
	existing := []planner.PersonShift{
		{PersonID: "busy", Shift: earlyShift(t, "h1", "2025-01-01")},
		{PersonID: "busy", Shift: earlyShift(t, "h2", "2025-01-02")},
	}
	persons := []planner.Candidate{
		{ID: "busy", Name: "Busy", Role: "DISPONENT"},
		{ID: "idle", Name: "Idle", Role: "DISPONENT"},
	}

	recs := planner.AutoAssignShifts(open, existing, nil, persons)

	assert.Len(t, recs, 1)
	assert.NotNil(t, recs[0].PersonID)
	assert.Equal(t, "idle", *recs[0].PersonID)
	assert.Equal(t, planner.ReasonGoodMatch, recs[0].Reason)
}

func TestAutoAssignShifts_RoleWithoutCapabilityDisqualified(t *testing.T) {
	open := []planner.ShiftRef{earlyShift(t, "s1", "2025-01-06")}
	persons := []planner.Candidate{
		{ID: "p1", Name: "Ava", Role: "ANALYST"},
	}

	recs := planner.AutoAssignShifts(open, nil, nil, persons)

	assert.Len(t, recs, 1)
	assert.Nil(t, recs[0].PersonID)
	assert.Equal(t, planner.ReasonNoCapable, recs[0].Reason)
}

func TestAutoAssignShifts_LocationIncompatibilityDisqualifies(t *testing.T) {
	shift := earlyShift(t, "s1", "2025-01-06")
	shift.Location = strPtr("Berlin")

	persons := []planner.Candidate{
		{ID: "p1", Name: "Ben", Role: "DISPONENT", HomeLocation: strPtr("Hamburg")},
	}

	recs := planner.AutoAssignShifts([]planner.ShiftRef{shift}, nil, nil, persons)

	assert.Len(t, recs, 1)
	assert.Nil(t, recs[0].PersonID)
	assert.Equal(t, planner.ReasonNoCapable, recs[0].Reason)
}

func TestAutoAssignShifts_ApplicationBonusBreaksWorkloadTie(t *testing.T) {
	open := []planner.ShiftRef{earlyShift(t, "s1", "2025-01-06")}
	persons := []planner.Candidate{
		{ID: "p1", Name: "Anna", Role: "DISPONENT"},
		{ID: "p2", Name: "Ben", Role: "DISPONENT"},
	}
	applications := []planner.Application{
		{ShiftInstanceID: "s1", PersonID: "p2"},
	}

	recs := planner.AutoAssignShifts(open, nil, applications, persons)

	// -5 for the applicant dominates jitter < 0.1, so p2 always wins.
	assert.Len(t, recs, 1)
	assert.NotNil(t, recs[0].PersonID)
	assert.Equal(t, "p2", *recs[0].PersonID)
	assert.Less(t, recs[0].Score, 0.0)
	assert.Greater(t, recs[0].Confidence, 0.99)
}

func TestAutoAssignShifts_DeterministicAcrossRuns(t *testing.T) {
	open := []planner.ShiftRef{
		earlyShift(t, "s1", "2025-01-06"),
		earlyShift(t, "s2", "2025-01-07"),
	}
	persons := []planner.Candidate{
		{ID: "p1", Name: "Anna", Role: "DISPONENT"},
		{ID: "p2", Name: "Ben", Role: "DISPONENT"},
		{ID: "p3", Name: "Cleo", Role: "CHIEF"},
	}

	first := planner.AutoAssignShifts(open, nil, nil, persons)
	second := planner.AutoAssignShifts(open, nil, nil, persons)

	assert.Equal(t, first, second)
}

func TestAutoAssignShifts_NightResolvedBeforeEarlySameDay(t *testing.T) {
	// Same day, one candidate: the night slot is filled first even though
	// the early slot starts first, and the early slot then goes unassigned.
	night := planner.ShiftRef{
		ID:      "night",
		Date:    "2025-01-06",
		StartDT: dt(t, "2025-01-06T22:00:00Z"),
		EndDT:   dt(t, "2025-01-07T06:00:00Z"),
	}
	early := earlyShift(t, "early", "2025-01-06")

	persons := []planner.Candidate{
		{ID: "p1", Name: "Anna", Role: "DISPONENT"},
	}

	recs := planner.AutoAssignShifts([]planner.ShiftRef{early, night}, nil, nil, persons)

	assert.Len(t, recs, 2)
	assert.Equal(t, "night", recs[0].ShiftInstanceID)
	assert.NotNil(t, recs[0].PersonID)
	assert.Equal(t, "early", recs[1].ShiftInstanceID)
	assert.Nil(t, recs[1].PersonID)
	assert.Equal(t, planner.ReasonConflicts, recs[1].Reason)
}

func TestAssignmentStats(t *testing.T) {
	p1, p2 := "user1", "user2"
	recs := []planner.Recommendation{
		{ShiftInstanceID: "s1", PersonID: &p1},
		{ShiftInstanceID: "s2", PersonID: &p2},
		{ShiftInstanceID: "s3", Reason: planner.ReasonConflicts},
	}

	stats := planner.AssignmentStats(recs)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Assigned)
	assert.Equal(t, 1, stats.Unassigned)
	assert.InDelta(t, 0.667, stats.AssignmentRate, 0.001)
	assert.Equal(t, map[string]int{"user1": 1, "user2": 1}, stats.PerPerson)
}

func TestAssignmentStats_Empty(t *testing.T) {
	stats := planner.AssignmentStats(nil)

	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0.0, stats.AssignmentRate)
}
