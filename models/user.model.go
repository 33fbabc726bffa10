package models

import (
	"gorm.io/gorm"
)

// Role values. Hierarchy: ADMIN > OFFICIAL > TEACHER > STUDENT
const (
	RoleStudent  = "STUDENT"
	RoleTeacher  = "TEACHER"
	RoleOfficial = "OFFICIAL"
	RoleAdmin    = "ADMIN"
)

// ValidRole reports whether role is one of the four known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleTeacher, RoleOfficial, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Name          string `json:"name" gorm:"default:''"`
	Username      string `json:"username" gorm:"unique;not null"`
	Email         string `json:"email" gorm:"default:''"`
	Password      string `json:"-" gorm:"not null"`
	Role          string `json:"role" gorm:"default:'STUDENT'"` // STUDENT, TEACHER, OFFICIAL, ADMIN
	InstitutionID *uint  `json:"institution_id" gorm:"index"`
	ClassRoomID   *uint  `json:"classroom_id" gorm:"index"`
	IsDeleted     bool   `gorm:"default:false"`
}

// HasAnyRole reports whether the user's role is in the given set.
func (u *User) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}
