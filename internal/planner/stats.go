package planner

// Stats aggregates one recommendation run.
type Stats struct {
	Total          int            `json:"total"`
	Assigned       int            `json:"assigned"`
	Unassigned     int            `json:"unassigned"`
	AssignmentRate float64        `json:"assignment_rate"`
	PerPerson      map[string]int `json:"per_person"`
}

func AssignmentStats(recs []Recommendation) Stats {
	stats := Stats{
		Total:     len(recs),
		PerPerson: make(map[string]int),
	}

	for _, r := range recs {
		if r.PersonID == nil {
			stats.Unassigned++
			continue
		}
		stats.Assigned++
		stats.PerPerson[*r.PersonID]++
	}

	if stats.Total > 0 {
		stats.AssignmentRate = float64(stats.Assigned) / float64(stats.Total)
	}
	return stats
}
