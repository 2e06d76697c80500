package events

import "time"

const ShiftLifecycleTopic = "dispo.shift.lifecycle.v1"

type ShiftCascadeDeletedEvent struct {
	EventType          string    `json:"event_type"`
	RequestID          string    `json:"request_id,omitempty"`
	ShiftInstanceID    string    `json:"shift_instance_id"`
	AssignmentsDeleted int       `json:"assignments_deleted"`
	OccurredAt         time.Time `json:"occurred_at"`
}
