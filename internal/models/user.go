package models

import "gorm.io/gorm"

// Role is the closed set of account roles. It is never extended at runtime.
type Role string

const (
	RoleUser       Role = "user"
	RoleCoAdmin    Role = "co-admin"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super-admin"
)

// Rank orders roles: super-admin > {admin, co-admin} > user.
// Unknown roles rank below user.
func (r Role) Rank() int {
	switch r {
	case RoleSuperAdmin:
		return 3
	case RoleAdmin, RoleCoAdmin:
		return 2
	case RoleUser:
		return 1
	default:
		return 0
	}
}

// IsAdminTier reports whether the role belongs to {admin, co-admin, super-admin}.
func (r Role) IsAdminTier() bool {
	return r.Rank() >= RoleAdmin.Rank()
}

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleCoAdmin, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// IsEffectivelyApproved reports whether an account may access gated
// resources: admin-tier roles bypass the approval flag, a plain user
// must be explicitly approved.
func IsEffectivelyApproved(role Role, isApproved bool) bool {
	return role.IsAdminTier() || isApproved
}

type User struct {
	gorm.Model

	// Usernames are globally unique and case-sensitive.
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         Role   `gorm:"type:varchar(32);not null;default:user"`
	IsApproved   bool   `gorm:"not null;default:false"`

	// Relationships
	Events    []Event    `gorm:"foreignKey:CreatedByID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Media     []Media    `gorm:"foreignKey:UploadedByID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Reactions []Reaction `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
