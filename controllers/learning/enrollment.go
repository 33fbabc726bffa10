package learningController

import (
	"time"

	"gyangrit/database"
	"gyangrit/middleware"
	"gyangrit/models"
	"gyangrit/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetEnrollments lists the caller's enrollments with course info
func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required", nil)
	}

	var enrollments []models.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	data := make([]fiber.Map, len(enrollments))
	for i, enrollment := range enrollments {
		var course models.Course
		database.Database.Db.Where("id = ?", enrollment.CourseID).First(&course)
		data[i] = fiber.Map{
			"id":           enrollment.ID,
			"course_id":    enrollment.CourseID,
			"course_title": course.Title,
			"status":       enrollment.Status,
			"enrolled_at":  enrollment.EnrolledAt,
			"completed_at": enrollment.CompletedAt,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", data)
}

// EnrollInCourse enrolls the caller into a course. Idempotent: enrolling
// twice returns the existing row with its status unchanged.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required", nil)
	}

	reqData, ok := c.Locals("validatedEnroll").(*struct {
		CourseID uint `json:"course_id" validate:"required,gt=0"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_published = ? AND is_deleted = ?", reqData.CourseID, true, false).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollment models.Enrollment
	err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, course.ID, false).
		First(&enrollment).Error
	if err != nil {
		enrollment = models.Enrollment{
			UserID:     userID,
			CourseID:   course.ID,
			Status:     models.EnrollmentEnrolled,
			EnrolledAt: time.Now(),
		}
		if err := database.Database.Db.Create(&enrollment).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
		}

		var user models.User
		if database.Database.Db.Where("id = ?", userID).First(&user).Error == nil && user.Email != "" {
			go utils.SendEnrollmentEmail(user.Email, user.Name, course.Title)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", fiber.Map{
		"enrollment_id": enrollment.ID,
		"course_id":     course.ID,
		"status":        enrollment.Status,
	})
}

// UpdateEnrollment applies a status trigger to the caller's enrollment.
// COMPLETED stamps CompletedAt and issues a certificate; DROPPED just flips
// the status. Anything else is rejected.
func UpdateEnrollment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)

	reqData, ok := c.Locals("validatedEnrollmentUpdate").(*struct {
		Status string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var enrollment models.Enrollment
	if err := database.Database.Db.Where("id = ? AND user_id = ? AND is_deleted = ?", enrollmentID, userID, false).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	switch reqData.Status {
	case models.EnrollmentCompleted:
		now := time.Now()
		enrollment.Status = models.EnrollmentCompleted
		enrollment.CompletedAt = &now
	case models.EnrollmentDropped:
		enrollment.Status = models.EnrollmentDropped
	default:
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid status!", nil)
	}

	if err := database.Database.Db.Save(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update enrollment!", nil)
	}

	if enrollment.Status == models.EnrollmentCompleted {
		issueCertificate(enrollment)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment updated successfully!", fiber.Map{
		"id":     enrollment.ID,
		"status": enrollment.Status,
	})
}

// issueCertificate creates the completion certificate once per (user, course)
func issueCertificate(enrollment models.Enrollment) {
	var existing models.Certificate
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?",
		enrollment.UserID, enrollment.CourseID, false).First(&existing).Error; err == nil {
		return
	}

	certificate := models.Certificate{
		UserID:   enrollment.UserID,
		CourseID: enrollment.CourseID,
		Number:   uuid.NewString(),
		IssuedAt: time.Now(),
	}
	if err := database.Database.Db.Create(&certificate).Error; err != nil {
		return
	}

	var user models.User
	var course models.Course
	if database.Database.Db.Where("id = ?", enrollment.UserID).First(&user).Error == nil &&
		database.Database.Db.Where("id = ?", enrollment.CourseID).First(&course).Error == nil &&
		user.Email != "" {
		go utils.SendCertificateEmail(user.Email, user.Name, course.Title, certificate.Number)
	}
}

// GetMyCertificates lists the caller's certificates
func GetMyCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required", nil)
	}

	var certificates []models.Certificate
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("issued_at desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	data := make([]fiber.Map, len(certificates))
	for i, certificate := range certificates {
		var course models.Course
		database.Database.Db.Where("id = ?", certificate.CourseID).First(&course)
		data[i] = fiber.Map{
			"id":           certificate.ID,
			"number":       certificate.Number,
			"course_id":    certificate.CourseID,
			"course_title": course.Title,
			"issued_at":    certificate.IssuedAt,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", data)
}
