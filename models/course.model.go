package models

import (
	"time"

	"gorm.io/gorm"
)

// Course represents a learning course
type Course struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}

// Lesson is an ordered unit of content inside a course
type Lesson struct {
	gorm.Model
	CourseID  uint   `json:"course_id" gorm:"index;not null;uniqueIndex:idx_lesson_course_order"`
	Title     string `json:"title" gorm:"not null"`
	Order     int    `json:"order" gorm:"column:order_index;uniqueIndex:idx_lesson_course_order"`
	Content   string `json:"content"`
	IsDeleted bool   `gorm:"default:false"`
}

// LessonProgress tracks a learner's state on a single lesson.
// One row per (lesson, user) is intended; readers must tolerate duplicates.
type LessonProgress struct {
	gorm.Model
	LessonID         uint       `json:"lesson_id" gorm:"index;not null"`
	UserID           uint       `json:"user_id" gorm:"index;not null"`
	Completed        bool       `json:"completed" gorm:"default:false"`
	LastPosition     int        `json:"last_position" gorm:"default:0"`
	LastOpenedAt     *time.Time `json:"last_opened_at"`
	TimeSpentSeconds int        `json:"time_spent_seconds" gorm:"default:0"`
	IsDeleted        bool       `gorm:"default:false"`
}
