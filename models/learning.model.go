package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment status values
const (
	EnrollmentEnrolled  = "ENROLLED"
	EnrollmentCompleted = "COMPLETED"
	EnrollmentDropped   = "DROPPED"
)

// Enrollment tracks a learner's registration in a course
type Enrollment struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID    uint       `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	Status      string     `json:"status" gorm:"default:'ENROLLED'"` // ENROLLED, COMPLETED, DROPPED
	EnrolledAt  time.Time  `json:"enrolled_at"`
	CompletedAt *time.Time `json:"completed_at"`
	IsDeleted   bool       `gorm:"default:false"`
}

// LearningPath is an ordered curriculum of courses
type LearningPath struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	IsDeleted   bool   `gorm:"default:false"`
}

// LearningPathCourse orders courses inside a learning path
type LearningPathCourse struct {
	gorm.Model
	LearningPathID uint `json:"learning_path_id" gorm:"not null;uniqueIndex:idx_path_course"`
	CourseID       uint `json:"course_id" gorm:"not null;uniqueIndex:idx_path_course"`
	Order          int  `json:"order" gorm:"column:order_index;default:0"`
	IsDeleted      bool `gorm:"default:false"`
}

// Certificate is issued when a learner completes a course
type Certificate struct {
	gorm.Model
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	CourseID  uint      `json:"course_id" gorm:"index;not null"`
	Number    string    `json:"number" gorm:"uniqueIndex;not null"`
	IssuedAt  time.Time `json:"issued_at"`
	IsDeleted bool      `gorm:"default:false"`
}
