package shift

import (
	"time"

	"github.com/google/uuid"
)

// Shift is one concrete shift instance on a calendar date, either generated
// from a template or created ad hoc. Instances are hard rows; removal goes
// through the cascade coordinator so assignments can never be orphaned.
type Shift struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Date       string     `gorm:"column:date;type:varchar(10);not null;index"`
	StartDT    time.Time  `gorm:"column:start_dt;type:timestamptz;not null"`
	EndDT      time.Time  `gorm:"column:end_dt;type:timestamptz;not null"`
	TemplateID *uuid.UUID `gorm:"column:template_id;type:uuid;index"`
	Location   *string    `gorm:"column:location;type:varchar(100)"`
	Active     bool       `gorm:"column:active;default:true"`
	Notes      *string    `gorm:"column:notes;type:text"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Shift) TableName() string {
	return "shift_instances"
}
