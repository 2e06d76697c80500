package planner

import (
	"hash/fnv"
	"sort"

	"go-dispo/internal/person"
)

const (
	ReasonGoodMatch    = "good_match"
	ReasonAvailable    = "available"
	ReasonNoCapable    = "no_capable_users"
	ReasonConflicts    = "conflicts_prevent_assignment"
	disqualifiedScore  = 1000.0
	goodMatchThreshold = 100.0
)

// Candidate is a person considered for assignment.
type Candidate struct {
	ID           string
	Name         string
	Role         string
	HomeLocation *string
}

// Application is a person's open request for one exact shift.
type Application struct {
	ShiftInstanceID string
	PersonID        string
}

// Recommendation is the engine's verdict for one open shift. PersonID is
// nil when the shift could not be filled; Reason then explains why.
type Recommendation struct {
	ShiftInstanceID string
	PersonID        *string
	PersonName      *string
	Score           float64
	Confidence      float64
	Reason          string
}

// AutoAssignShifts produces one recommendation per open shift. Picks are
// simulated into the working history before the next shift is scored, so
// assigning shift N affects eligibility for shift N+1 within the run.
// The function is pure; nothing is persisted.
func AutoAssignShifts(
	openShifts []ShiftRef,
	existing []PersonShift,
	applications []Application,
	persons []Candidate,
) []Recommendation {
	// Day by day, hardest kind first within each day: the night slots are
	// the ones that run out of candidates, so they are resolved before the
	// same day's evening and early slots.
	ordered := make([]ShiftRef, len(openShifts))
	copy(ordered, openShifts)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Date != ordered[j].Date {
			return ordered[i].Date < ordered[j].Date
		}
		if pi, pj := kindPriority(ordered[i]), kindPriority(ordered[j]); pi != pj {
			return pi < pj
		}
		return ordered[i].StartDT.Before(ordered[j].StartDT)
	})

	applied := make(map[[2]string]bool, len(applications))
	for _, app := range applications {
		applied[[2]string{app.ShiftInstanceID, app.PersonID}] = true
	}

	workload := make(map[string]int, len(persons))
	for _, e := range existing {
		workload[e.PersonID]++
	}

	working := make([]PersonShift, len(existing))
	copy(working, existing)

	recs := make([]Recommendation, 0, len(ordered))
	for _, sh := range ordered {
		type scored struct {
			person Candidate
			score  float64
		}
		candidates := make([]scored, 0, len(persons))
		anyQualified := false

		for _, p := range persons {
			score := float64(workload[p.ID]) * 10

			if !person.HasShiftCapability(p.Role) {
				score += disqualifiedScore
			}
			if !locationCompatible(p.HomeLocation, sh.Location) {
				score += disqualifiedScore
			}
			if applied[[2]string{sh.ID, p.ID}] {
				score -= 5
			}
			score += jitter(sh.ID, p.ID)

			if score < disqualifiedScore {
				anyQualified = true
			}
			candidates = append(candidates, scored{person: p, score: score})
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].score < candidates[j].score
		})

		var pick *scored
		for i := range candidates {
			if candidates[i].score >= disqualifiedScore {
				break
			}
			if !hasSameDayConflict(candidates[i].person.ID, sh, working) {
				pick = &candidates[i]
				break
			}
		}

		if pick == nil {
			reason := ReasonConflicts
			if !anyQualified {
				reason = ReasonNoCapable
			}
			recs = append(recs, Recommendation{
				ShiftInstanceID: sh.ID,
				Reason:          reason,
			})
			continue
		}

		pid := pick.person.ID
		pname := pick.person.Name
		recs = append(recs, Recommendation{
			ShiftInstanceID: sh.ID,
			PersonID:        &pid,
			PersonName:      &pname,
			Score:           pick.score,
			Confidence:      clamp01(1 - pick.score/disqualifiedScore),
			Reason:          matchReason(pick.score),
		})

		working = append(working, PersonShift{PersonID: pid, Shift: sh})
		workload[pid]++
	}

	return recs
}

// kindPriority orders shifts starting at the same instant: night before
// evening before early, so the hardest slots are resolved first.
func kindPriority(sh ShiftRef) int {
	h := sh.StartDT.Hour()
	switch {
	case h >= 22 || h < 6:
		return 0 // night
	case h >= 14:
		return 1 // evening
	default:
		return 2 // early
	}
}

// locationCompatible treats an unset location on either side as a match.
func locationCompatible(home, loc *string) bool {
	if home == nil || loc == nil {
		return true
	}
	return *home == *loc
}

// jitter derives a tie-breaker in [0, 0.1) from the (shift, person) pair.
// Hash-based rather than random so runs over the same inputs agree.
func jitter(shiftID, personID string) float64 {
	h := fnv.New64a()
	h.Write([]byte(shiftID))
	h.Write([]byte{'|'})
	h.Write([]byte(personID))
	return float64(h.Sum64()%1000) / 10000
}

func matchReason(score float64) string {
	if score < goodMatchThreshold {
		return ReasonGoodMatch
	}
	return ReasonAvailable
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
