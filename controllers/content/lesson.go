package contentController

import (
	"time"

	"gyangrit/database"
	"gyangrit/middleware"
	"gyangrit/models"
	"gyangrit/services"

	"github.com/gofiber/fiber/v2"
)

// GetLessonDetail returns a lesson's content. Opening a lesson records the
// visit: the caller's progress row is created if absent and LastOpenedAt is
// stamped.
func GetLessonDetail(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required", nil)
	}

	lessonID := c.Locals("lessonID").(int)

	var lesson models.Lesson
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	now := time.Now()
	progress, created := canonicalRowForLesson(userID, lesson.ID)
	progress.LastOpenedAt = &now
	if created {
		if err := database.Database.Db.Create(&progress).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record lesson open!", nil)
		}
	} else if err := database.Database.Db.Save(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record lesson open!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", fiber.Map{
		"id":      lesson.ID,
		"title":   lesson.Title,
		"content": lesson.Content,
	})
}

// GetLessonProgress returns the caller's progress on a lesson
func GetLessonProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required", nil)
	}

	lessonID := c.Locals("lessonID").(int)

	var lesson models.Lesson
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	progress, _ := canonicalRowForLesson(userID, lesson.ID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", lessonProgressPayload(progress))
}

// UpdateLessonProgress applies a partial update to the caller's progress on a
// lesson. Completed and LastPosition replace the stored values when present;
// TimeSpentSeconds is a delta added to the stored total. Missing fields are
// left unchanged.
func UpdateLessonProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required", nil)
	}

	lessonID := c.Locals("lessonID").(int)

	reqData, ok := c.Locals("validatedProgressUpdate").(*struct {
		Completed        *bool `json:"completed"`
		LastPosition     *int  `json:"last_position"`
		TimeSpentSeconds *int  `json:"time_spent_seconds"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var lesson models.Lesson
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	progress, created := canonicalRowForLesson(userID, lesson.ID)
	if reqData.Completed != nil {
		progress.Completed = *reqData.Completed
	}
	if reqData.LastPosition != nil {
		progress.LastPosition = *reqData.LastPosition
	}
	if reqData.TimeSpentSeconds != nil {
		progress.TimeSpentSeconds += *reqData.TimeSpentSeconds
	}

	var err error
	if created {
		err = database.Database.Db.Create(&progress).Error
	} else {
		err = database.Database.Db.Save(&progress).Error
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", lessonProgressPayload(progress))
}

func lessonProgressPayload(progress models.LessonProgress) fiber.Map {
	return fiber.Map{
		"lesson_id":          progress.LessonID,
		"completed":          progress.Completed,
		"last_position":      progress.LastPosition,
		"time_spent_seconds": progress.TimeSpentSeconds,
	}
}

// canonicalRowForLesson loads the caller's canonical progress row for a
// lesson, or a fresh unsaved row when none exists yet. Duplicate rows are
// resolved the same way the progress engine resolves them so reads and
// writes always land on the same row.
func canonicalRowForLesson(userID, lessonID uint) (models.LessonProgress, bool) {
	var rows []models.LessonProgress
	database.Database.Db.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, lessonID, false).Find(&rows)

	canonical := services.CanonicalProgressRows(rows)
	if len(canonical) > 0 {
		return canonical[0], false
	}

	return models.LessonProgress{
		LessonID: lessonID,
		UserID:   userID,
	}, true
}
