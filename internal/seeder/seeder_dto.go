package seeder

type GenerateShiftsRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	Weeks     int    `json:"weeks" binding:"required,min=1,max=52"`
}

type GeneratedShiftResponse struct {
	ID         string  `json:"id"`
	Date       string  `json:"date"`
	StartDT    string  `json:"start_dt"`
	EndDT      string  `json:"end_dt"`
	TemplateID *string `json:"template_id,omitempty"`
	Location   *string `json:"location,omitempty"`
}

type GenerateShiftsResponse struct {
	Created []GeneratedShiftResponse `json:"created"`
	Errors  []SeedError              `json:"errors"`
}
