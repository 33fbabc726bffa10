package assessmentController

import (
	"encoding/json"
	"strconv"
	"time"

	"gyangrit/database"
	"gyangrit/middleware"
	"gyangrit/models"
	"gyangrit/services"
	"gyangrit/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// StartAssessment creates a new attempt for the caller. The assessment must
// be published. Learners may start any number of attempts; history stays
// available through my-attempts.
func StartAssessment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required", nil)
	}

	assessmentID := c.Locals("assessmentID").(int)

	var assessment models.Assessment
	if err := database.Database.Db.Where("id = ? AND is_published = ? AND is_deleted = ?", assessmentID, true, false).
		First(&assessment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assessment not found or not published!", nil)
	}

	attempt := models.AssessmentAttempt{
		Reference:    uuid.NewString(),
		AssessmentID: assessment.ID,
		UserID:       userID,
		StartedAt:    time.Now(),
	}

	if err := database.Database.Db.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start assessment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempt started!", fiber.Map{
		"attempt_id":    attempt.ID,
		"reference":     attempt.Reference,
		"assessment_id": assessment.ID,
		"started_at":    attempt.StartedAt,
	})
}

// SubmitAssessment grades an attempt and marks it submitted. Submission is
// terminal; a second submit returns 409 and leaves the first score intact.
func SubmitAssessment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required", nil)
	}

	assessmentID := c.Locals("assessmentID").(int)

	reqData, ok := c.Locals("validatedSubmit").(*struct {
		AttemptID uint            `json:"attempt_id"`
		Answers   map[string]uint `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var attempt models.AssessmentAttempt
	if err := database.Database.Db.Where("id = ? AND assessment_id = ? AND user_id = ? AND is_deleted = ?",
		reqData.AttemptID, assessmentID, userID, false).First(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Attempt not found!", nil)
	}

	if attempt.SubmittedAt != nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Attempt already submitted!", nil)
	}

	var assessment models.Assessment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", assessmentID, false).First(&assessment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assessment not found or not published!", nil)
	}

	var questions []models.Question
	database.Database.Db.Where("assessment_id = ? AND is_deleted = ?", assessmentID, false).Find(&questions)

	var options []models.QuestionOption
	if len(questions) > 0 {
		questionIDs := make([]uint, len(questions))
		for i, q := range questions {
			questionIDs[i] = q.ID
		}
		database.Database.Db.Where("question_id IN ? AND is_deleted = ?", questionIDs, false).Find(&options)
	}

	// Answer keys arrive as JSON object keys (strings); malformed ids are
	// skipped like any other unknown answer
	answers := make(map[uint]uint, len(reqData.Answers))
	for rawID, optionID := range reqData.Answers {
		questionID, err := strconv.ParseUint(rawID, 10, 64)
		if err != nil {
			continue
		}
		answers[uint(questionID)] = optionID
	}

	score := services.ScoreAnswers(questions, options, answers)
	passed := score >= assessment.PassMarks
	now := time.Now()

	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit attempt!", nil)
	}

	// Conditional update keyed on the unset submitted_at so two racing
	// submits cannot both grade the attempt
	result := database.Database.Db.Model(&models.AssessmentAttempt{}).
		Where("id = ? AND submitted_at IS NULL", attempt.ID).
		Updates(map[string]interface{}{
			"answers":      answersJSON,
			"score":        score,
			"passed":       passed,
			"submitted_at": now,
		})
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit attempt!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Attempt already submitted!", nil)
	}

	go utils.SendAssessmentResultEmail(userID, assessment.Title, score, passed)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempt submitted!", fiber.Map{
		"attempt_id": attempt.ID,
		"score":      score,
		"passed":     passed,
	})
}

// GetMyAttempts returns the caller's attempt history for an assessment
func GetMyAttempts(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required", nil)
	}

	assessmentID := c.Locals("assessmentID").(int)

	var assessment models.Assessment
	if err := database.Database.Db.Where("id = ? AND is_published = ? AND is_deleted = ?", assessmentID, true, false).
		First(&assessment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assessment not found or not published!", nil)
	}

	var attempts []models.AssessmentAttempt
	if err := database.Database.Db.Where("assessment_id = ? AND user_id = ? AND is_deleted = ?", assessmentID, userID, false).
		Order("started_at desc").Find(&attempts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attempts!", nil)
	}

	data := make([]fiber.Map, len(attempts))
	for i, attempt := range attempts {
		data[i] = fiber.Map{
			"id":           attempt.ID,
			"reference":    attempt.Reference,
			"score":        attempt.Score,
			"passed":       attempt.Passed,
			"started_at":   attempt.StartedAt,
			"submitted_at": attempt.SubmittedAt,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched successfully!", data)
}
