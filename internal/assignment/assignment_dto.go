package assignment

type CreateAssignmentRequest struct {
	ShiftInstanceID string  `json:"shift_instance_id" binding:"required,uuid"`
	DisponentID     string  `json:"disponent_id" binding:"required,uuid"`
	Status          *string `json:"status" binding:"omitempty,oneof=ASSIGNED TENTATIVE RELEASED"`
}

type UpdateAssignmentRequest struct {
	Status *string `json:"status" binding:"omitempty,oneof=ASSIGNED TENTATIVE RELEASED"`
}

type AssignmentResponse struct {
	ID              string `json:"id"`
	ShiftInstanceID string `json:"shift_instance_id"`
	DisponentID     string `json:"disponent_id"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}
