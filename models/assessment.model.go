package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Assessment is a quiz or test attached to a course.
// Attempts are only allowed while IsPublished is true.
type Assessment struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	TotalMarks  int    `json:"total_marks" gorm:"default:0"`
	PassMarks   int    `json:"pass_marks" gorm:"default:0"`
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}

// Question is an MCQ question belonging to an assessment
type Question struct {
	gorm.Model
	AssessmentID uint   `json:"assessment_id" gorm:"index;not null"`
	Text         string `json:"text" gorm:"not null"`
	Marks        int    `json:"marks" gorm:"default:1"`
	Order        int    `json:"order" gorm:"column:order_index;default:0"`
	IsDeleted    bool   `gorm:"default:false"`
}

// QuestionOption is one selectable answer for a question
type QuestionOption struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	Text       string `json:"text" gorm:"not null"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
	IsDeleted  bool   `gorm:"default:false"`
}

// AssessmentAttempt is one learner's graded pass through an assessment.
// Answers stores the submitted questionId -> optionId map as jsonb.
// Submission is terminal: SubmittedAt is set exactly once.
type AssessmentAttempt struct {
	gorm.Model
	Reference    string         `json:"reference" gorm:"uniqueIndex;not null"`
	AssessmentID uint           `json:"assessment_id" gorm:"index;not null"`
	UserID       uint           `json:"user_id" gorm:"index;not null"`
	StartedAt    time.Time      `json:"started_at"`
	SubmittedAt  *time.Time     `json:"submitted_at"`
	Answers      datatypes.JSON `json:"answers" gorm:"type:jsonb"`
	Score        int            `json:"score" gorm:"default:0"`
	Passed       bool           `json:"passed" gorm:"default:false"`
	IsDeleted    bool           `gorm:"default:false"`
}
