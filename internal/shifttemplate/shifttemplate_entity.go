package shifttemplate

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Weekday bits for WeekdayMask, bit 0 = Monday per the planning UI.
const (
	MaskMonday    = 1 << 0
	MaskTuesday   = 1 << 1
	MaskWednesday = 1 << 2
	MaskThursday  = 1 << 3
	MaskFriday    = 1 << 4
	MaskSaturday  = 1 << 5
	MaskSunday    = 1 << 6

	MaskAll = MaskMonday | MaskTuesday | MaskWednesday | MaskThursday |
		MaskFriday | MaskSaturday | MaskSunday
)

type ShiftTemplate struct {
	ID            uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string         `gorm:"column:name;type:varchar(100);not null"`
	WeekdayMask   int            `gorm:"column:weekday_mask;not null"`
	StartTime     string         `gorm:"column:start_time;type:varchar(5);not null"`
	EndTime       string         `gorm:"column:end_time;type:varchar(5);not null"`
	CrossMidnight bool           `gorm:"column:cross_midnight;default:false"`
	Color         string         `gorm:"column:color;type:varchar(20)"`
	Location      *string        `gorm:"column:location;type:varchar(100)"`
	Active        bool           `gorm:"column:active;default:true"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (ShiftTemplate) TableName() string {
	return "shift_templates"
}

// AppliesOn reports whether the template covers the given weekday.
func (t ShiftTemplate) AppliesOn(weekday time.Weekday) bool {
	return t.WeekdayMask&maskForWeekday(weekday) != 0
}

// maskForWeekday converts Go's Sunday-first weekday into the Monday-first
// bitmask used by the templates.
func maskForWeekday(weekday time.Weekday) int {
	if weekday == time.Sunday {
		return MaskSunday
	}
	return 1 << (int(weekday) - 1)
}
