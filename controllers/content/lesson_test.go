package contentController_test

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
	"gyangrit/routers/contentRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type progressPayload struct {
	LessonID         uint `json:"lesson_id"`
	Completed        bool `json:"completed"`
	LastPosition     int  `json:"last_position"`
	TimeSpentSeconds int  `json:"time_spent_seconds"`
}

type courseProgressPayload struct {
	CourseID       uint  `json:"course_id"`
	Completed      int   `json:"completed"`
	Total          int   `json:"total"`
	Percentage     int   `json:"percentage"`
	ResumeLessonID *uint `json:"resume_lesson_id"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()
	database.ConnectTestDb()

	app := fiber.New()
	contentRoutes.SetupContentRoutes(app)
	return app
}

func createStudent(t *testing.T) (models.User, string) {
	t.Helper()
	user := models.User{
		Name:     "Test Student",
		Username: fmt.Sprintf("student-%d", time.Now().UnixNano()),
		Password: "not-a-real-hash",
		Role:     models.RoleStudent,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role)
	require.NoError(t, err)
	return user, token
}

func createCourseWithLessons(t *testing.T, count int) (models.Course, []models.Lesson) {
	t.Helper()
	course := models.Course{Title: "Test Course", IsPublished: true}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	lessons := make([]models.Lesson, count)
	for i := range lessons {
		lesson := models.Lesson{
			CourseID: course.ID,
			Title:    fmt.Sprintf("Lesson %d", i+1),
			Order:    i + 1,
			Content:  "lesson body",
		}
		require.NoError(t, database.Database.Db.Create(&lesson).Error)
		lessons[i] = lesson
	}
	return course, lessons
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

func TestOpeningLessonRecordsVisit(t *testing.T) {
	app := setupApp(t)
	user, token := createStudent(t)
	_, lessons := createCourseWithLessons(t, 1)

	resp, _ := doRequest(t, app, http.MethodGet, fmt.Sprintf("/lessons/%d", lessons[0].ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var row models.LessonProgress
	require.NoError(t, database.Database.Db.
		Where("user_id = ? AND lesson_id = ?", user.ID, lessons[0].ID).First(&row).Error)
	require.NotNil(t, row.LastOpenedAt)
	assert.False(t, row.Completed)
}

func TestOpeningLessonTwiceKeepsOneRow(t *testing.T) {
	app := setupApp(t)
	user, token := createStudent(t)
	_, lessons := createCourseWithLessons(t, 1)

	path := fmt.Sprintf("/lessons/%d", lessons[0].ID)
	doRequest(t, app, http.MethodGet, path, token, nil)
	doRequest(t, app, http.MethodGet, path, token, nil)

	var count int64
	database.Database.Db.Model(&models.LessonProgress{}).
		Where("user_id = ? AND lesson_id = ?", user.ID, lessons[0].ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateProgressAccumulatesTimeSpent(t *testing.T) {
	app := setupApp(t)
	_, token := createStudent(t)
	_, lessons := createCourseWithLessons(t, 1)

	path := fmt.Sprintf("/lessons/%d/progress", lessons[0].ID)

	resp, body := doRequest(t, app, http.MethodPatch, path, token, fiber.Map{"time_spent_seconds": 30})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var progress progressPayload
	require.NoError(t, json.Unmarshal(body.Data, &progress))
	assert.Equal(t, 30, progress.TimeSpentSeconds)

	// Deltas add up; other fields stay untouched
	_, body = doRequest(t, app, http.MethodPatch, path, token, fiber.Map{"time_spent_seconds": 45, "last_position": 120})
	require.NoError(t, json.Unmarshal(body.Data, &progress))
	assert.Equal(t, 75, progress.TimeSpentSeconds)
	assert.Equal(t, 120, progress.LastPosition)
	assert.False(t, progress.Completed)
}

func TestCourseProgressResumeAndPercentage(t *testing.T) {
	app := setupApp(t)
	_, token := createStudent(t)
	course, lessons := createCourseWithLessons(t, 3)

	progressPath := func(i int) string {
		return fmt.Sprintf("/lessons/%d/progress", lessons[i].ID)
	}

	// Complete lesson 1, then open lesson 2 without finishing it.
	doRequest(t, app, http.MethodPatch, progressPath(0), token, fiber.Map{"completed": true})
	doRequest(t, app, http.MethodGet, fmt.Sprintf("/lessons/%d", lessons[1].ID), token, nil)

	resp, body := doRequest(t, app, http.MethodGet, fmt.Sprintf("/courses/%d/progress", course.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary courseProgressPayload
	require.NoError(t, json.Unmarshal(body.Data, &summary))
	assert.Equal(t, course.ID, summary.CourseID)
	assert.Equal(t, 1, summary.Completed)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 33, summary.Percentage)
	require.NotNil(t, summary.ResumeLessonID)
	assert.Equal(t, lessons[1].ID, *summary.ResumeLessonID)
}

func TestCourseProgressEmptyCourse(t *testing.T) {
	app := setupApp(t)
	_, token := createStudent(t)

	course := models.Course{Title: "Empty Course", IsPublished: true}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	resp, body := doRequest(t, app, http.MethodGet, fmt.Sprintf("/courses/%d/progress", course.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary courseProgressPayload
	require.NoError(t, json.Unmarshal(body.Data, &summary))
	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 0, summary.Percentage)
	assert.Nil(t, summary.ResumeLessonID)
}

func TestNegativeTimeSpentRejected(t *testing.T) {
	app := setupApp(t)
	_, token := createStudent(t)
	_, lessons := createCourseWithLessons(t, 1)

	path := fmt.Sprintf("/lessons/%d/progress", lessons[0].ID)
	resp, _ := doRequest(t, app, http.MethodPatch, path, token, fiber.Map{"time_spent_seconds": -10})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}
