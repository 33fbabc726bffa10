package analyticsController

import (
	"gyangrit/database"
	"gyangrit/middleware"
	"gyangrit/models"
	"gyangrit/services"

	"github.com/gofiber/fiber/v2"
)

// visibleClassrooms returns the classrooms the caller may aggregate over.
// Teachers see only classrooms they teach; officials and admins see all.
func visibleClassrooms(user models.User) []models.ClassRoom {
	db := database.Database.Db.Model(&models.ClassRoom{}).Where("class_rooms.is_deleted = ?", false)

	if user.Role == models.RoleTeacher {
		db = db.Joins("JOIN classroom_teachers ct ON ct.class_room_id = class_rooms.id").
			Where("ct.user_id = ?", user.ID)
	}

	var classrooms []models.ClassRoom
	db.Order("class_rooms.id asc").Find(&classrooms)
	return classrooms
}

// visibleStudentIDs returns the student ids in the caller's scope, or nil
// when the caller sees everyone
func visibleStudentIDs(user models.User) []uint {
	if user.Role != models.RoleTeacher {
		return nil
	}

	classrooms := visibleClassrooms(user)
	if len(classrooms) == 0 {
		return []uint{}
	}

	classIDs := make([]uint, len(classrooms))
	for i, class := range classrooms {
		classIDs[i] = class.ID
	}

	var students []models.User
	database.Database.Db.Where("class_room_id IN ? AND is_deleted = ?", classIDs, false).Find(&students)

	ids := make([]uint, len(students))
	for i, student := range students {
		ids[i] = student.ID
	}
	return ids
}

// GetCourseAnalytics rolls up lesson completion per published course
func GetCourseAnalytics(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)
	studentIDs := visibleStudentIDs(user)

	var courses []models.Course
	database.Database.Db.Where("is_published = ? AND is_deleted = ?", true, false).Order("id asc").Find(&courses)

	data := make([]fiber.Map, len(courses))
	for i, course := range courses {
		var lessons []models.Lesson
		database.Database.Db.Where("course_id = ? AND is_deleted = ?", course.ID, false).Find(&lessons)

		completed := 0
		if len(lessons) > 0 {
			lessonIDs := make([]uint, len(lessons))
			for j, lesson := range lessons {
				lessonIDs[j] = lesson.ID
			}

			query := database.Database.Db.
				Where("lesson_id IN ? AND completed = ? AND is_deleted = ?", lessonIDs, true, false)
			if studentIDs != nil {
				query = query.Where("user_id IN ?", studentIDs)
			}

			var rows []models.LessonProgress
			query.Find(&rows)

			seen := make(map[[2]uint]bool)
			for _, row := range rows {
				seen[[2]uint{row.LessonID, row.UserID}] = true
			}
			completed = len(seen)
		}

		percentage := 0.0
		if len(lessons) > 0 {
			percentage = services.Round2(100 * float64(completed) / float64(len(lessons)))
		}

		data[i] = fiber.Map{
			"course_id":         course.ID,
			"title":             course.Title,
			"total_lessons":     len(lessons),
			"completed_lessons": completed,
			"percentage":        percentage,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course analytics fetched successfully!", data)
}

// GetLessonAnalytics rolls up open counts, completions and time spent per lesson
func GetLessonAnalytics(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)
	studentIDs := visibleStudentIDs(user)

	var lessons []models.Lesson
	database.Database.Db.Where("is_deleted = ?", false).Order("course_id asc, order_index asc").Find(&lessons)

	data := make([]fiber.Map, len(lessons))
	for i, lesson := range lessons {
		var course models.Course
		database.Database.Db.Where("id = ?", lesson.CourseID).First(&course)

		query := database.Database.Db.Where("lesson_id = ? AND is_deleted = ?", lesson.ID, false)
		if studentIDs != nil {
			query = query.Where("user_id IN ?", studentIDs)
		}

		var rows []models.LessonProgress
		query.Find(&rows)

		// Duplicate rows collapse to one record per learner before counting
		perLearner := make(map[uint][]models.LessonProgress)
		for _, row := range rows {
			perLearner[row.UserID] = append(perLearner[row.UserID], row)
		}

		completedCount := 0
		totalOpens := 0
		timeSpentSum := 0
		for _, learnerRows := range perLearner {
			canonical := services.CanonicalProgressRows(learnerRows)[0]
			if canonical.Completed {
				completedCount++
			}
			if canonical.LastOpenedAt != nil {
				totalOpens++
			}
			timeSpentSum += canonical.TimeSpentSeconds
		}

		avgTimeSpent := 0.0
		if len(perLearner) > 0 {
			avgTimeSpent = services.Round2(float64(timeSpentSum) / float64(len(perLearner)))
		}

		data[i] = fiber.Map{
			"lesson_id":       lesson.ID,
			"lesson_title":    lesson.Title,
			"course_title":    course.Title,
			"completed_count": completedCount,
			"total_attempts":  totalOpens,
			"avg_time_spent":  avgTimeSpent,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson analytics fetched successfully!", data)
}

// GetAssessmentAnalytics rolls up submitted attempts per published assessment
func GetAssessmentAnalytics(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)
	studentIDs := visibleStudentIDs(user)

	var assessments []models.Assessment
	database.Database.Db.Where("is_published = ? AND is_deleted = ?", true, false).Order("id asc").Find(&assessments)

	data := make([]fiber.Map, len(assessments))
	for i, assessment := range assessments {
		query := database.Database.Db.Where("assessment_id = ? AND is_deleted = ?", assessment.ID, false)
		if studentIDs != nil {
			query = query.Where("user_id IN ?", studentIDs)
		}

		var attempts []models.AssessmentAttempt
		query.Find(&attempts)

		stats := services.SummarizeAttempts(attempts)

		data[i] = fiber.Map{
			"assessment_id":   assessment.ID,
			"title":           assessment.Title,
			"total_attempts":  stats.TotalAttempts,
			"unique_students": stats.UniqueParticipants,
			"average_score":   stats.AverageScore,
			"pass_count":      stats.PassCount,
			"fail_count":      stats.FailCount,
			"pass_rate":       stats.PassRate,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment analytics fetched successfully!", data)
}

// GetClassAnalytics rolls up submitted attempts per visible classroom
func GetClassAnalytics(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	classrooms := visibleClassrooms(user)

	data := make([]fiber.Map, len(classrooms))
	for i, class := range classrooms {
		var institution models.Institution
		database.Database.Db.Where("id = ?", class.InstitutionID).First(&institution)

		var students []models.User
		database.Database.Db.Where("class_room_id = ? AND is_deleted = ?", class.ID, false).Find(&students)

		stats := attemptStatsForStudents(students)

		data[i] = fiber.Map{
			"class_id":       class.ID,
			"class_name":     class.Name,
			"institution":    institution.Name,
			"total_students": len(students),
			"total_attempts": stats.TotalAttempts,
			"average_score":  stats.AverageScore,
			"pass_rate":      stats.PassRate,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class analytics fetched successfully!", data)
}

// GetClassStudentAnalytics rolls up attempts per student in one classroom.
// A classroom outside the caller's scope reads as not found.
func GetClassStudentAnalytics(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)
	classID := c.Locals("classID").(int)

	visible := false
	for _, class := range visibleClassrooms(user) {
		if class.ID == uint(classID) {
			visible = true
			break
		}
	}
	if !visible {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	var students []models.User
	database.Database.Db.Where("class_room_id = ? AND is_deleted = ?", classID, false).
		Order("id asc").Find(&students)

	data := make([]fiber.Map, len(students))
	for i, student := range students {
		var attempts []models.AssessmentAttempt
		database.Database.Db.Where("user_id = ? AND is_deleted = ?", student.ID, false).Find(&attempts)

		stats := services.SummarizeAttempts(attempts)

		data[i] = fiber.Map{
			"student_id":     student.ID,
			"username":       student.Username,
			"total_attempts": stats.TotalAttempts,
			"average_score":  stats.AverageScore,
			"pass_rate":      stats.PassRate,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student analytics fetched successfully!", data)
}

func attemptStatsForStudents(students []models.User) services.AttemptStats {
	if len(students) == 0 {
		return services.AttemptStats{}
	}

	studentIDs := make([]uint, len(students))
	for i, student := range students {
		studentIDs[i] = student.ID
	}

	var attempts []models.AssessmentAttempt
	database.Database.Db.Where("user_id IN ? AND is_deleted = ?", studentIDs, false).Find(&attempts)

	return services.SummarizeAttempts(attempts)
}
