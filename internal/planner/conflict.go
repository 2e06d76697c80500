package planner

import "time"

const (
	ConflictTimeOverlap       = "TIME_OVERLAP"
	ConflictDoubleApplication = "DOUBLE_APPLICATION"
	ConflictLocationMismatch  = "LOCATION_MISMATCH"
)

// ShiftRef is the slice of a shift instance the planner needs. Date is
// the YYYY-MM-DD calendar date the instance belongs to; a cross-midnight
// shift still carries its start date here.
type ShiftRef struct {
	ID       string
	Date     string
	StartDT  time.Time
	EndDT    time.Time
	Location *string
}

// PersonShift is one entry of the assignment history: a person holding
// a shift.
type PersonShift struct {
	PersonID string
	Shift    ShiftRef
}

type Conflict struct {
	Code    string
	ShiftID string
}

// OverlapsInterval reports whether the half-open intervals [aStart, aEnd)
// and [bStart, bEnd) intersect. Back-to-back shifts share an endpoint and
// do not overlap.
func OverlapsInterval(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// DetectConflicts checks a candidate assignment of person to candidate
// against the existing history. History entries for other persons are
// ignored. Location mismatch compares the person's declared home location
// against the shift's required one; an unset location on either side is
// compatible with anything.
func DetectConflicts(person Candidate, candidate ShiftRef, existing []PersonShift) []Conflict {
	var conflicts []Conflict

	if !locationCompatible(person.HomeLocation, candidate.Location) {
		conflicts = append(conflicts, Conflict{Code: ConflictLocationMismatch, ShiftID: candidate.ID})
	}

	for _, e := range existing {
		if e.PersonID != person.ID || e.Shift.ID == candidate.ID {
			continue
		}

		if OverlapsInterval(candidate.StartDT, candidate.EndDT, e.Shift.StartDT, e.Shift.EndDT) {
			conflicts = append(conflicts, Conflict{Code: ConflictTimeOverlap, ShiftID: e.Shift.ID})
		}
		if candidate.Date == e.Shift.Date {
			conflicts = append(conflicts, Conflict{Code: ConflictDoubleApplication, ShiftID: e.Shift.ID})
		}
	}
	return conflicts
}

// hasSameDayConflict is the simplified check the recommendation pass
// uses while simulating picks: one shift per person per calendar date.
// It is intentionally coarser than full interval overlap; shifts that
// span midnight count against their start date only.
func hasSameDayConflict(personID string, candidate ShiftRef, existing []PersonShift) bool {
	for _, e := range existing {
		if e.PersonID == personID && e.Shift.Date == candidate.Date && e.Shift.ID != candidate.ID {
			return true
		}
	}
	return false
}
