package services

import (
	"sort"

	"gyangrit/models"
)

// CourseProgressSummary is the derived progress view for one learner in one course
type CourseProgressSummary struct {
	Completed      int   `json:"completed"`
	Total          int   `json:"total"`
	Percentage     int   `json:"percentage"`
	ResumeLessonID *uint `json:"resume_lesson_id"`
}

// CanonicalProgressRows collapses duplicate progress rows down to one row per
// lesson. The winner per lesson is ordered by (LastOpenedAt desc, ID desc);
// rows with no LastOpenedAt sort after rows that have one. Duplicates should
// not exist, but readers must never fail when they do.
func CanonicalProgressRows(rows []models.LessonProgress) []models.LessonProgress {
	byLesson := make(map[uint]models.LessonProgress)
	for _, row := range rows {
		current, seen := byLesson[row.LessonID]
		if !seen || progressRowWins(row, current) {
			byLesson[row.LessonID] = row
		}
	}

	canonical := make([]models.LessonProgress, 0, len(byLesson))
	for _, row := range byLesson {
		canonical = append(canonical, row)
	}
	sort.Slice(canonical, func(i, j int) bool {
		return canonical[i].LessonID < canonical[j].LessonID
	})
	return canonical
}

// progressRowWins reports whether a should replace b as the canonical row
func progressRowWins(a, b models.LessonProgress) bool {
	switch {
	case a.LastOpenedAt != nil && b.LastOpenedAt == nil:
		return true
	case a.LastOpenedAt == nil && b.LastOpenedAt != nil:
		return false
	case a.LastOpenedAt != nil && b.LastOpenedAt != nil && !a.LastOpenedAt.Equal(*b.LastOpenedAt):
		return a.LastOpenedAt.After(*b.LastOpenedAt)
	}
	return a.ID > b.ID
}

// ComputeCourseProgress derives the learner's completion summary and resume
// target for a course.
//
// Resume selection, first match wins:
//  1. the most recently opened incomplete lesson
//  2. the first lesson in course order that is not completed
//  3. nil (course empty or fully completed)
//
// Percentage is floor(100 * completed / total), 0 for an empty course.
// Calling twice without intervening writes yields identical output.
func ComputeCourseProgress(lessons []models.Lesson, rows []models.LessonProgress) CourseProgressSummary {
	ordered := make([]models.Lesson, len(lessons))
	copy(ordered, lessons)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})

	lessonIDs := make(map[uint]bool, len(ordered))
	for _, lesson := range ordered {
		lessonIDs[lesson.ID] = true
	}

	completedIDs := make(map[uint]bool)
	var lastOpened *models.LessonProgress
	for _, row := range CanonicalProgressRows(rows) {
		if !lessonIDs[row.LessonID] {
			continue // stale row from another course
		}
		if row.Completed {
			completedIDs[row.LessonID] = true
			continue
		}
		if row.LastOpenedAt == nil {
			continue
		}
		if lastOpened == nil || progressRowWins(row, *lastOpened) {
			r := row
			lastOpened = &r
		}
	}

	var resume *uint
	if lastOpened != nil {
		id := lastOpened.LessonID
		resume = &id
	} else {
		for _, lesson := range ordered {
			if !completedIDs[lesson.ID] {
				id := lesson.ID
				resume = &id
				break
			}
		}
	}

	total := len(ordered)
	percentage := 0
	if total > 0 {
		percentage = 100 * len(completedIDs) / total
	}

	return CourseProgressSummary{
		Completed:      len(completedIDs),
		Total:          total,
		Percentage:     percentage,
		ResumeLessonID: resume,
	}
}
