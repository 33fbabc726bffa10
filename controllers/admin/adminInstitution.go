package adminController

import (
	"gyangrit/database"
	"gyangrit/middleware"
	"gyangrit/models"

	"github.com/gofiber/fiber/v2"
)

// CreateInstitution registers a new institution
func CreateInstitution(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedInstitution").(*struct {
		Name     string `json:"name"`
		District string `json:"district"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	institution := models.Institution{
		Name:     reqData.Name,
		District: reqData.District,
	}

	if err := database.Database.Db.Create(&institution).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create institution!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Institution created successfully!", institution)
}

// CreateClassRoom adds a classroom to an institution
func CreateClassRoom(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedClassRoom").(*struct {
		Name          string `json:"name"`
		InstitutionID uint   `json:"institution_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var institution models.Institution
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.InstitutionID, false).
		First(&institution).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Institution not found!", nil)
	}

	var existing models.ClassRoom
	if err := database.Database.Db.Where("name = ? AND institution_id = ? AND is_deleted = ?",
		reqData.Name, institution.ID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Class already exists in this institution!", nil)
	}

	classRoom := models.ClassRoom{
		Name:          reqData.Name,
		InstitutionID: institution.ID,
	}

	if err := database.Database.Db.Create(&classRoom).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Class created successfully!", classRoom)
}

// AssignTeacher registers a teacher on a classroom. The teacher must belong
// to the classroom's institution.
func AssignTeacher(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAssignTeacher").(*struct {
		ClassRoomID uint `json:"classroom_id"`
		TeacherID   uint `json:"teacher_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var classRoom models.ClassRoom
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.ClassRoomID, false).
		First(&classRoom).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	var teacher models.User
	if err := database.Database.Db.Where("id = ? AND role = ? AND is_deleted = ?",
		reqData.TeacherID, models.RoleTeacher, false).First(&teacher).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Teacher not found!", nil)
	}

	if teacher.InstitutionID != nil && *teacher.InstitutionID != classRoom.InstitutionID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Teacher does not belong to this institution!", nil)
	}

	if err := database.Database.Db.Model(&classRoom).Association("Teachers").Append(&teacher); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign teacher!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Teacher assigned successfully!", fiber.Map{
		"classroom_id": classRoom.ID,
		"teacher_id":   teacher.ID,
	})
}

// CreateLearningPath creates a learning path with its ordered courses
func CreateLearningPath(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLearningPath").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		CourseIDs   []uint `json:"course_ids"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	path := models.LearningPath{
		Name:        reqData.Name,
		Description: reqData.Description,
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&path).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create learning path!", nil)
	}

	for i, courseID := range reqData.CourseIDs {
		var course models.Course
		if err := tx.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}

		pathCourse := models.LearningPathCourse{
			LearningPathID: path.ID,
			CourseID:       courseID,
			Order:          i + 1,
		}
		if err := tx.Create(&pathCourse).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create learning path!", nil)
		}
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Learning path created successfully!", fiber.Map{
		"id":   path.ID,
		"name": path.Name,
	})
}
