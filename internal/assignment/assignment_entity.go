package assignment

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusAssigned  = "ASSIGNED"
	StatusTentative = "TENTATIVE"
	StatusReleased  = "RELEASED"
)

func IsValidStatus(status string) bool {
	switch status {
	case StatusAssigned, StatusTentative, StatusReleased:
		return true
	}
	return false
}

// Assignment links one disponent to one shift instance. The pair is
// unique; a person cannot hold the same shift twice.
type Assignment struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ShiftInstanceID uuid.UUID `gorm:"column:shift_instance_id;type:uuid;not null;uniqueIndex:uq_assignments_shift_person"`
	DisponentID     uuid.UUID `gorm:"column:disponent_id;type:uuid;not null;uniqueIndex:uq_assignments_shift_person"`
	Status          string    `gorm:"column:status;type:varchar(20);not null;default:'ASSIGNED'"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Assignment) TableName() string {
	return "assignments"
}
