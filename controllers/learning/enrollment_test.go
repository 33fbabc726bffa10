package learningController_test

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
	"gyangrit/routers/learningRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()
	database.ConnectTestDb()

	app := fiber.New()
	learningRoutes.SetupLearningRoutes(app)
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

func createPublishedCourse(t *testing.T, title string) models.Course {
	t.Helper()
	course := models.Course{Title: title, IsPublished: true}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	return course
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

func TestEnrollRequiresAuth(t *testing.T) {
	app := setupApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/learning/enroll", "", fiber.Map{"course_id": 1})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestEnrollIsIdempotent(t *testing.T) {
	app := setupApp(t)
	user, token := createStudent(t)
	course := createPublishedCourse(t, "Algebra Basics")

	resp, body := doRequest(t, app, http.MethodPost, "/learning/enroll", token, fiber.Map{"course_id": course.ID})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, body.Status)

	var first struct {
		EnrollmentID uint   `json:"enrollment_id"`
		Status       string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &first))
	assert.Equal(t, models.EnrollmentEnrolled, first.Status)

	resp, body = doRequest(t, app, http.MethodPost, "/learning/enroll", token, fiber.Map{"course_id": course.ID})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var second struct {
		EnrollmentID uint   `json:"enrollment_id"`
		Status       string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &second))
	assert.Equal(t, first.EnrollmentID, second.EnrollmentID)

	var count int64
	database.Database.Db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestEnrollUnpublishedCourseNotFound(t *testing.T) {
	app := setupApp(t)
	_, token := createStudent(t)

	course := models.Course{Title: "Draft Course", IsPublished: false}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	resp, _ := doRequest(t, app, http.MethodPost, "/learning/enroll", token, fiber.Map{"course_id": course.ID})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCompletingEnrollmentIssuesCertificateOnce(t *testing.T) {
	app := setupApp(t)
	user, token := createStudent(t)
	course := createPublishedCourse(t, "Geometry")

	_, body := doRequest(t, app, http.MethodPost, "/learning/enroll", token, fiber.Map{"course_id": course.ID})
	var enrolled struct {
		EnrollmentID uint `json:"enrollment_id"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &enrolled))

	path := fmt.Sprintf("/learning/enrollments/%d", enrolled.EnrollmentID)
	resp, _ := doRequest(t, app, http.MethodPatch, path, token, fiber.Map{"status": "COMPLETED"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var enrollment models.Enrollment
	require.NoError(t, database.Database.Db.First(&enrollment, enrolled.EnrollmentID).Error)
	assert.Equal(t, models.EnrollmentCompleted, enrollment.Status)
	require.NotNil(t, enrollment.CompletedAt)

	// Completing again must not mint a second certificate
	resp, _ = doRequest(t, app, http.MethodPatch, path, token, fiber.Map{"status": "COMPLETED"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var certCount int64
	database.Database.Db.Model(&models.Certificate{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&certCount)
	assert.Equal(t, int64(1), certCount)
}

func TestUpdateEnrollmentRejectsUnknownStatus(t *testing.T) {
	app := setupApp(t)
	_, token := createStudent(t)
	course := createPublishedCourse(t, "Chemistry")

	_, body := doRequest(t, app, http.MethodPost, "/learning/enroll", token, fiber.Map{"course_id": course.ID})
	var enrolled struct {
		EnrollmentID uint `json:"enrollment_id"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &enrolled))

	path := fmt.Sprintf("/learning/enrollments/%d", enrolled.EnrollmentID)
	resp, _ := doRequest(t, app, http.MethodPatch, path, token, fiber.Map{"status": "PAUSED"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestUpdateSomeoneElsesEnrollmentNotFound(t *testing.T) {
	app := setupApp(t)
	_, ownerToken := createStudent(t)
	_, otherToken := createStudent(t)
	course := createPublishedCourse(t, "Physics")

	_, body := doRequest(t, app, http.MethodPost, "/learning/enroll", ownerToken, fiber.Map{"course_id": course.ID})
	var enrolled struct {
		EnrollmentID uint `json:"enrollment_id"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &enrolled))

	path := fmt.Sprintf("/learning/enrollments/%d", enrolled.EnrollmentID)
	resp, _ := doRequest(t, app, http.MethodPatch, path, otherToken, fiber.Map{"status": "DROPPED"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
