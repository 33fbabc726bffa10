package assessmentController

import (
	"gyangrit/database"
	"gyangrit/middleware"
	"gyangrit/models"

	"github.com/gofiber/fiber/v2"
)

// GetCourseAssessments lists the published assessments of a course
func GetCourseAssessments(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var assessments []models.Assessment
	if err := database.Database.Db.Where("course_id = ? AND is_published = ? AND is_deleted = ?", courseID, true, false).
		Order("id asc").Find(&assessments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assessments!", nil)
	}

	data := make([]fiber.Map, len(assessments))
	for i, a := range assessments {
		data[i] = fiber.Map{
			"id":          a.ID,
			"title":       a.Title,
			"description": a.Description,
			"total_marks": a.TotalMarks,
			"pass_marks":  a.PassMarks,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessments fetched successfully!", data)
}

// GetAssessmentDetail returns a published assessment with its questions and
// options. Correct flags are never exposed here.
func GetAssessmentDetail(c *fiber.Ctx) error {
	assessmentID := c.Locals("assessmentID").(int)

	var assessment models.Assessment
	if err := database.Database.Db.Where("id = ? AND is_published = ? AND is_deleted = ?", assessmentID, true, false).
		First(&assessment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assessment not found or not published!", nil)
	}

	var questions []models.Question
	database.Database.Db.Where("assessment_id = ? AND is_deleted = ?", assessmentID, false).
		Order("order_index asc").Find(&questions)

	questionData := make([]fiber.Map, len(questions))
	for i, q := range questions {
		var options []models.QuestionOption
		database.Database.Db.Where("question_id = ? AND is_deleted = ?", q.ID, false).
			Order("id asc").Find(&options)

		optionData := make([]fiber.Map, len(options))
		for j, opt := range options {
			optionData[j] = fiber.Map{
				"id":   opt.ID,
				"text": opt.Text,
			}
		}

		questionData[i] = fiber.Map{
			"id":      q.ID,
			"text":    q.Text,
			"marks":   q.Marks,
			"options": optionData,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment fetched successfully!", fiber.Map{
		"id":          assessment.ID,
		"title":       assessment.Title,
		"description": assessment.Description,
		"total_marks": assessment.TotalMarks,
		"pass_marks":  assessment.PassMarks,
		"questions":   questionData,
	})
}
