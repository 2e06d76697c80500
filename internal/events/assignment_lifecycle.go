package events

import "time"

const AssignmentLifecycleTopic = "dispo.assignment.lifecycle.v1"

type AssignmentCreatedEvent struct {
	EventType       string    `json:"event_type"`
	RequestID       string    `json:"request_id,omitempty"`
	AssignmentID    string    `json:"assignment_id"`
	ShiftInstanceID string    `json:"shift_instance_id"`
	DisponentID     string    `json:"disponent_id"`
	Status          string    `json:"status"`
	OccurredAt      time.Time `json:"occurred_at"`
}

type AssignmentSwappedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	AssignmentA string    `json:"assignment_a"`
	AssignmentB string    `json:"assignment_b"`
	ShiftAAfter string    `json:"shift_a_after"`
	ShiftBAfter string    `json:"shift_b_after"`
	OccurredAt  time.Time `json:"occurred_at"`
}
