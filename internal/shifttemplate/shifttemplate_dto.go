package shifttemplate

type CreateShiftTemplateRequest struct {
	Name          string  `json:"name" binding:"required"`
	WeekdayMask   int     `json:"weekday_mask" binding:"required"`
	StartTime     string  `json:"start_time" binding:"required"`
	EndTime       string  `json:"end_time" binding:"required"`
	CrossMidnight bool    `json:"cross_midnight"`
	Color         string  `json:"color"`
	Location      *string `json:"location"`
}

type UpdateShiftTemplateRequest struct {
	Name          *string `json:"name"`
	WeekdayMask   *int    `json:"weekday_mask"`
	StartTime     *string `json:"start_time"`
	EndTime       *string `json:"end_time"`
	CrossMidnight *bool   `json:"cross_midnight"`
	Color         *string `json:"color"`
	Location      *string `json:"location"`
	Active        *bool   `json:"active"`
}

type ShiftTemplateResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	WeekdayMask   int     `json:"weekday_mask"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	CrossMidnight bool    `json:"cross_midnight"`
	Color         string  `json:"color"`
	Location      *string `json:"location,omitempty"`
	Active        bool    `json:"active"`
	DeletedAt     *string `json:"deleted_at,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type SoftDeleteShiftTemplateResponse struct {
	Deleted              bool  `json:"deleted"`
	InstancesDeactivated int64 `json:"instances_deactivated"`
}
