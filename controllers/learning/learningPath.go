package learningController

import (
	"gyangrit/database"
	"gyangrit/middleware"
	"gyangrit/models"

	"github.com/gofiber/fiber/v2"
)

// GetLearningPaths lists all learning paths
func GetLearningPaths(c *fiber.Ctx) error {
	var paths []models.LearningPath
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("id asc").Find(&paths).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch learning paths!", nil)
	}

	data := make([]fiber.Map, len(paths))
	for i, path := range paths {
		data[i] = fiber.Map{
			"id":          path.ID,
			"name":        path.Name,
			"description": path.Description,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learning paths fetched successfully!", data)
}

// GetLearningPathDetail returns a learning path with its ordered courses
func GetLearningPathDetail(c *fiber.Ctx) error {
	pathID := c.Locals("pathID").(int)

	var path models.LearningPath
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", pathID, false).First(&path).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Learning path not found!", nil)
	}

	var pathCourses []models.LearningPathCourse
	database.Database.Db.Where("learning_path_id = ? AND is_deleted = ?", pathID, false).
		Order("order_index asc").Find(&pathCourses)

	courses := make([]fiber.Map, len(pathCourses))
	for i, pc := range pathCourses {
		var course models.Course
		database.Database.Db.Where("id = ?", pc.CourseID).First(&course)
		courses[i] = fiber.Map{
			"course_id": pc.CourseID,
			"title":     course.Title,
			"order":     pc.Order,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learning path fetched successfully!", fiber.Map{
		"id":          path.ID,
		"name":        path.Name,
		"description": path.Description,
		"courses":     courses,
	})
}

// GetLearningPathProgress derives the caller's progress through a learning
// path from their COMPLETED enrollments. Never stored, always computed.
func GetLearningPathProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required", nil)
	}

	pathID := c.Locals("pathID").(int)

	var path models.LearningPath
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", pathID, false).First(&path).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Learning path not found!", nil)
	}

	var pathCourses []models.LearningPathCourse
	database.Database.Db.Where("learning_path_id = ? AND is_deleted = ?", pathID, false).Find(&pathCourses)

	total := len(pathCourses)
	completed := 0
	if total > 0 {
		courseIDs := make([]uint, total)
		for i, pc := range pathCourses {
			courseIDs[i] = pc.CourseID
		}

		var count int64
		database.Database.Db.Model(&models.Enrollment{}).
			Where("user_id = ? AND course_id IN ? AND status = ? AND is_deleted = ?",
				userID, courseIDs, models.EnrollmentCompleted, false).
			Count(&count)
		completed = int(count)
	}

	percentage := 0
	if total > 0 {
		percentage = 100 * completed / total
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"path_id":           path.ID,
		"total_courses":     total,
		"completed_courses": completed,
		"percentage":        percentage,
	})
}
