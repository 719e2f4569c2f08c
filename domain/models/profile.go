package models

import (
	"time"

	"github.com/google/uuid"
)

// Role determines what a profile may see and do.
type Role string

const (
	RolePatient    Role = "patient"
	RoleNurse      Role = "nurse"
	RolePorter     Role = "porter"
	RoleSupervisor Role = "supervisor"
)

// Roles lists every valid role, in display order.
var Roles = []Role{RolePatient, RoleNurse, RolePorter, RoleSupervisor}

func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleNurse, RolePorter, RoleSupervisor:
		return true
	}
	return false
}

// Profile is the role-scoped identity record for an authenticated user.
// Patients carry bed/case numbers, staff carry staff id/department; one
// profile per user.
type Profile struct {
	ID     uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"uniqueIndex;not null"`
	User   User      `gorm:"foreignKey:UserID"`
	Role   Role      `gorm:"index;not null"`
	Name   string    `gorm:"not null"`

	// Patient-specific fields
	BedNumber  *string `gorm:"index"`
	CaseNumber *string `gorm:"index"`

	// Staff-specific fields
	StaffID    *string
	Department *string

	LastActive *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Profile) TableName() string {
	return "profiles"
}

func (p *Profile) IsSupervisor() bool {
	return p.Role == RoleSupervisor
}

func (p *Profile) IsPatient() bool {
	return p.Role == RolePatient
}

// Bed returns the bed number or "" when unset.
func (p *Profile) Bed() string {
	if p.BedNumber == nil {
		return ""
	}
	return *p.BedNumber
}

// Case returns the case number or "" when unset.
func (p *Profile) Case() string {
	if p.CaseNumber == nil {
		return ""
	}
	return *p.CaseNumber
}
