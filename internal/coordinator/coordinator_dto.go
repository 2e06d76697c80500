package coordinator

type SwapAssignmentsRequest struct {
	AssignmentA string `json:"assignment_a" binding:"required,uuid"`
	AssignmentB string `json:"assignment_b" binding:"required,uuid"`
}

type SwapAssignmentsResponse struct {
	AssignmentA SwappedAssignment `json:"assignment_a"`
	AssignmentB SwappedAssignment `json:"assignment_b"`
}

type SwappedAssignment struct {
	ID              string `json:"id"`
	ShiftInstanceID string `json:"shift_instance_id"`
	DisponentID     string `json:"disponent_id"`
}

type BulkUpdateEntry struct {
	ID     string  `json:"id" binding:"required,uuid"`
	Status *string `json:"status" binding:"omitempty,oneof=ASSIGNED TENTATIVE RELEASED"`
}

type BulkUpdateAssignmentsRequest struct {
	Updates []BulkUpdateEntry `json:"updates" binding:"required,min=1,dive"`
}

type BulkUpdateAssignmentsResponse struct {
	Updated int `json:"updated"`
}

type CascadeDeleteResponse struct {
	ShiftInstanceID    string `json:"shift_instance_id"`
	AssignmentsDeleted int64  `json:"assignments_deleted"`
}
