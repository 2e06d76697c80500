package planner

type ApplicationInput struct {
	ShiftInstanceID string `json:"shift_instance_id" binding:"required,uuid"`
	PersonID        string `json:"person_id" binding:"required,uuid"`
}

type AutoAssignRequest struct {
	DateFrom     string             `json:"date_from" binding:"required"`
	DateTo       string             `json:"date_to" binding:"required"`
	Applications []ApplicationInput `json:"applications" binding:"omitempty,dive"`
}

type RecommendationResponse struct {
	ShiftInstanceID string  `json:"shift_instance_id"`
	PersonID        *string `json:"person_id,omitempty"`
	PersonName      *string `json:"person_name,omitempty"`
	Score           float64 `json:"score"`
	Confidence      float64 `json:"confidence"`
	Reason          string  `json:"reason"`
}

type AutoAssignResponse struct {
	Recommendations []RecommendationResponse `json:"recommendations"`
	Stats           Stats                    `json:"stats"`
}
