package assessmentController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"gyangrit/config"
	"gyangrit/database"
	"gyangrit/middleware"
	"gyangrit/models"
	"gyangrit/routers/assessmentRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type fixture struct {
	app           *fiber.App
	token         string
	assessment    models.Assessment
	question      models.Question
	correctOption models.QuestionOption
	wrongOption   models.QuestionOption
}

// newFixture builds a published course with one 5-mark question whose pass
// mark equals the full score.
func newFixture(t *testing.T) fixture {
	t.Helper()
	config.LoadConfig()
	database.ConnectTestDb()

	app := fiber.New()
	assessmentRoutes.SetupAssessmentRoutes(app)

	user := models.User{
		Name:     "Test Student",
		Username: fmt.Sprintf("student-%d", time.Now().UnixNano()),
		Password: "not-a-real-hash",
		Role:     models.RoleStudent,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role)
	require.NoError(t, err)

	course := models.Course{Title: "Algebra", IsPublished: true}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	assessment := models.Assessment{
		CourseID:    course.ID,
		Title:       "Algebra Quiz",
		TotalMarks:  5,
		PassMarks:   5,
		IsPublished: true,
	}
	require.NoError(t, database.Database.Db.Create(&assessment).Error)

	question := models.Question{AssessmentID: assessment.ID, Text: "2 + 2 = ?", Marks: 5, Order: 1}
	require.NoError(t, database.Database.Db.Create(&question).Error)

	correct := models.QuestionOption{QuestionID: question.ID, Text: "4", IsCorrect: true}
	require.NoError(t, database.Database.Db.Create(&correct).Error)

	wrong := models.QuestionOption{QuestionID: question.ID, Text: "5"}
	require.NoError(t, database.Database.Db.Create(&wrong).Error)

	return fixture{
		app:           app,
		token:         token,
		assessment:    assessment,
		question:      question,
		correctOption: correct,
		wrongOption:   wrong,
	}
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, apiResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp, parsed
}

func startAttempt(t *testing.T, f fixture) uint {
	t.Helper()
	path := fmt.Sprintf("/assessments/%d/start", f.assessment.ID)
	resp, body := doRequest(t, f.app, http.MethodPost, path, f.token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var started struct {
		AttemptID uint `json:"attempt_id"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &started))
	return started.AttemptID
}

func TestStartUnpublishedAssessmentNotFound(t *testing.T) {
	f := newFixture(t)

	draft := models.Assessment{CourseID: f.assessment.CourseID, Title: "Draft Quiz", PassMarks: 1}
	require.NoError(t, database.Database.Db.Create(&draft).Error)

	path := fmt.Sprintf("/assessments/%d/start", draft.ID)
	resp, _ := doRequest(t, f.app, http.MethodPost, path, f.token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSubmitGradesCorrectAnswer(t *testing.T) {
	f := newFixture(t)
	attemptID := startAttempt(t, f)

	path := fmt.Sprintf("/assessments/%d/submit", f.assessment.ID)
	answers := map[string]uint{fmt.Sprint(f.question.ID): f.correctOption.ID}
	resp, body := doRequest(t, f.app, http.MethodPost, path, f.token, fiber.Map{
		"attempt_id": attemptID,
		"answers":    answers,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Score  int  `json:"score"`
		Passed bool `json:"passed"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &result))
	assert.Equal(t, 5, result.Score)
	assert.True(t, result.Passed)

	var attempt models.AssessmentAttempt
	require.NoError(t, database.Database.Db.First(&attempt, attemptID).Error)
	assert.NotNil(t, attempt.SubmittedAt)
	assert.Equal(t, 5, attempt.Score)
}

func TestSubmitWrongOptionScoresZero(t *testing.T) {
	f := newFixture(t)
	attemptID := startAttempt(t, f)

	path := fmt.Sprintf("/assessments/%d/submit", f.assessment.ID)
	answers := map[string]uint{fmt.Sprint(f.question.ID): f.wrongOption.ID}
	resp, body := doRequest(t, f.app, http.MethodPost, path, f.token, fiber.Map{
		"attempt_id": attemptID,
		"answers":    answers,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Score  int  `json:"score"`
		Passed bool `json:"passed"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &result))
	assert.Equal(t, 0, result.Score)
	assert.False(t, result.Passed)
}

func TestSecondSubmitConflictsAndKeepsFirstScore(t *testing.T) {
	f := newFixture(t)
	attemptID := startAttempt(t, f)

	path := fmt.Sprintf("/assessments/%d/submit", f.assessment.ID)
	resp, _ := doRequest(t, f.app, http.MethodPost, path, f.token, fiber.Map{
		"attempt_id": attemptID,
		"answers":    map[string]uint{fmt.Sprint(f.question.ID): f.correctOption.ID},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doRequest(t, f.app, http.MethodPost, path, f.token, fiber.Map{
		"attempt_id": attemptID,
		"answers":    map[string]uint{fmt.Sprint(f.question.ID): f.wrongOption.ID},
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.False(t, body.Status)

	var attempt models.AssessmentAttempt
	require.NoError(t, database.Database.Db.First(&attempt, attemptID).Error)
	assert.Equal(t, 5, attempt.Score)
	assert.True(t, attempt.Passed)
}

func TestMultipleAttemptsAllowed(t *testing.T) {
	f := newFixture(t)

	first := startAttempt(t, f)
	second := startAttempt(t, f)
	assert.NotEqual(t, first, second)

	path := fmt.Sprintf("/assessments/%d/my-attempts", f.assessment.ID)
	resp, body := doRequest(t, f.app, http.MethodGet, path, f.token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var attempts []struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &attempts))
	assert.Len(t, attempts, 2)
}

func TestAssessmentDetailHidesCorrectFlags(t *testing.T) {
	f := newFixture(t)

	path := fmt.Sprintf("/assessments/%d", f.assessment.ID)
	resp, body := doRequest(t, f.app, http.MethodGet, path, f.token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.NotContains(t, string(body.Data), "is_correct")
}
