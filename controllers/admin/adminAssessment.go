package adminController

import (
	"gyangrit/database"
	"gyangrit/middleware"
	"gyangrit/models"

	"github.com/gofiber/fiber/v2"
)

// CreateAssessment creates an assessment with its questions and options in
// one shot. TotalMarks is derived from the question marks.
func CreateAssessment(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedAssessment").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		PassMarks   int    `json:"pass_marks"`
		Questions   []struct {
			Text    string `json:"text"`
			Marks   int    `json:"marks"`
			Options []struct {
				Text      string `json:"text"`
				IsCorrect bool   `json:"is_correct"`
			} `json:"options"`
		} `json:"questions"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	totalMarks := 0
	for _, q := range reqData.Questions {
		totalMarks += q.Marks
	}

	assessment := models.Assessment{
		CourseID:    course.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
		TotalMarks:  totalMarks,
		PassMarks:   reqData.PassMarks,
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&assessment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assessment!", nil)
	}

	for i, q := range reqData.Questions {
		question := models.Question{
			AssessmentID: assessment.ID,
			Text:         q.Text,
			Marks:        q.Marks,
			Order:        i + 1,
		}
		if err := tx.Create(&question).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assessment!", nil)
		}

		for _, opt := range q.Options {
			option := models.QuestionOption{
				QuestionID: question.ID,
				Text:       opt.Text,
				IsCorrect:  opt.IsCorrect,
			}
			if err := tx.Create(&option).Error; err != nil {
				tx.Rollback()
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assessment!", nil)
			}
		}
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assessment created successfully!", fiber.Map{
		"id":          assessment.ID,
		"course_id":   assessment.CourseID,
		"title":       assessment.Title,
		"total_marks": assessment.TotalMarks,
		"pass_marks":  assessment.PassMarks,
	})
}

// PublishAssessment opens an assessment for attempts
func PublishAssessment(c *fiber.Ctx) error {
	assessmentID := c.Locals("assessmentID").(int)

	var assessment models.Assessment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", assessmentID, false).First(&assessment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assessment not found!", nil)
	}

	assessment.IsPublished = true
	if err := database.Database.Db.Save(&assessment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish assessment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment published successfully!", assessment)
}

// DeleteAssessment soft deletes an assessment
func DeleteAssessment(c *fiber.Ctx) error {
	assessmentID := c.Locals("assessmentID").(int)

	var assessment models.Assessment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", assessmentID, false).First(&assessment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assessment not found!", nil)
	}

	assessment.IsDeleted = true
	if err := database.Database.Db.Save(&assessment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete assessment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment deleted successfully!", nil)
}
