package person

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin     = "ADMIN"
	RoleChief     = "CHIEF"
	RoleDisponent = "DISPONENT"
	RoleAnalyst   = "ANALYST"
)

// ShiftCapableRoles lists the roles that may hold shift assignments.
// Analysts are reporting-only.
var ShiftCapableRoles = []string{RoleAdmin, RoleChief, RoleDisponent}

type Person struct {
	ID           uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string         `gorm:"column:name;type:varchar(255);not null"`
	Email        string         `gorm:"column:email;type:text;not null;uniqueIndex:uq_persons_email"`
	Role         string         `gorm:"column:role;type:varchar(20);not null;default:DISPONENT"`
	Active       bool           `gorm:"column:active;default:true"`
	HomeLocation *string        `gorm:"column:home_location;type:varchar(100)"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Person) TableName() string {
	return "persons"
}

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleChief, RoleDisponent, RoleAnalyst:
		return true
	}
	return false
}

// HasShiftCapability reports whether the role qualifies for assignment.
func HasShiftCapability(role string) bool {
	for _, r := range ShiftCapableRoles {
		if r == role {
			return true
		}
	}
	return false
}
