package contentController

import (
	"gyangrit/database"
	"gyangrit/middleware"
	"gyangrit/models"
	"gyangrit/services"

	"github.com/gofiber/fiber/v2"
)

// GetCourses lists all published courses
func GetCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Where("is_published = ? AND is_deleted = ?", true, false).
		Order("id asc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	data := make([]fiber.Map, len(courses))
	for i, course := range courses {
		data[i] = fiber.Map{
			"id":          course.ID,
			"title":       course.Title,
			"description": course.Description,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", data)
}

// GetCourseLessons lists a course's lessons in order with the caller's completion flags
func GetCourseLessons(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var lessons []models.Lesson
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	rows := lessonProgressRows(userID, lessons)
	completed := make(map[uint]bool)
	for _, row := range services.CanonicalProgressRows(rows) {
		if row.Completed {
			completed[row.LessonID] = true
		}
	}

	data := make([]fiber.Map, len(lessons))
	for i, lesson := range lessons {
		data[i] = fiber.Map{
			"id":        lesson.ID,
			"title":     lesson.Title,
			"order":     lesson.Order,
			"completed": completed[lesson.ID],
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", data)
}

// GetCourseProgress returns the caller's derived progress for a course
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var lessons []models.Lesson
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	summary := services.ComputeCourseProgress(lessons, lessonProgressRows(userID, lessons))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"course_id":        course.ID,
		"completed":        summary.Completed,
		"total":            summary.Total,
		"percentage":       summary.Percentage,
		"resume_lesson_id": summary.ResumeLessonID,
	})
}

// lessonProgressRows fetches the user's progress rows for the given lessons
func lessonProgressRows(userID uint, lessons []models.Lesson) []models.LessonProgress {
	if len(lessons) == 0 {
		return nil
	}
	lessonIDs := make([]uint, len(lessons))
	for i, lesson := range lessons {
		lessonIDs[i] = lesson.ID
	}

	var rows []models.LessonProgress
	database.Database.Db.Where("user_id = ? AND lesson_id IN ? AND is_deleted = ?", userID, lessonIDs, false).Find(&rows)
	return rows
}
