package shift

type CreateShiftRequest struct {
	Date       string  `json:"date" binding:"required"`
	StartDT    string  `json:"start_dt" binding:"required"`
	EndDT      string  `json:"end_dt" binding:"required"`
	TemplateID *string `json:"template_id"`
	Location   *string `json:"location"`
	Notes      *string `json:"notes"`
}

type UpdateShiftRequest struct {
	Date     *string `json:"date"`
	StartDT  *string `json:"start_dt"`
	EndDT    *string `json:"end_dt"`
	Location *string `json:"location"`
	Active   *bool   `json:"active"`
	Notes    *string `json:"notes"`
}

type ShiftResponse struct {
	ID         string  `json:"id"`
	Date       string  `json:"date"`
	StartDT    string  `json:"start_dt"`
	EndDT      string  `json:"end_dt"`
	TemplateID *string `json:"template_id,omitempty"`
	Location   *string `json:"location,omitempty"`
	Active     bool    `json:"active"`
	Notes      *string `json:"notes,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}
