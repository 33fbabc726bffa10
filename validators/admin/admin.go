package adminValidator

import (
	"strconv"
	"strings"

	"gyangrit/middleware"

	"github.com/gofiber/fiber/v2"
)

func paramID(c *fiber.Ctx, name string) (int, bool) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// CourseID validates the :id course route parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		c.Locals("courseID", id)
		return c.Next()
	}
}

// CourseLessonIDs validates the :course_id and :lesson_id route parameters
func CourseLessonIDs() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := paramID(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		lessonID, ok := paramID(c, "lesson_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
		}
		c.Locals("courseID", courseID)
		c.Locals("lessonID", lessonID)
		return c.Next()
	}
}

// AssessmentID validates the :id assessment route parameter
func AssessmentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Assessment ID!", nil)
		}
		c.Locals("assessmentID", id)
		return c.Next()
	}
}

// Course validates the course create/update body
func Course() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// Lesson validates the lesson create/update body
func Lesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title   string `json:"title"`
			Order   int    `json:"order"`
			Content string `json:"content"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Order <= 0 {
			errors["order"] = "Order must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// Assessment validates the nested assessment create body
func Assessment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
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
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.PassMarks < 0 {
			errors["pass_marks"] = "Pass marks must not be negative!"
		}
		if len(reqData.Questions) == 0 {
			errors["questions"] = "At least one question is required!"
		}
		for _, q := range reqData.Questions {
			if strings.TrimSpace(q.Text) == "" {
				errors["questions"] = "Question text is required!"
				break
			}
			if q.Marks < 0 {
				errors["questions"] = "Question marks must not be negative!"
				break
			}
			if len(q.Options) < 2 {
				errors["questions"] = "Each question needs at least two options!"
				break
			}
			hasCorrect := false
			for _, opt := range q.Options {
				if opt.IsCorrect {
					hasCorrect = true
					break
				}
			}
			if !hasCorrect {
				errors["questions"] = "Each question needs a correct option!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAssessment", reqData)
		return c.Next()
	}
}

// Institution validates the institution create body
func Institution() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name     string `json:"name"`
			District string `json:"district"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Name) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"name": "Name is required!"})
		}

		c.Locals("validatedInstitution", reqData)
		return c.Next()
	}
}

// ClassRoom validates the classroom create body
func ClassRoom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name          string `json:"name"`
			InstitutionID uint   `json:"institution_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.InstitutionID == 0 {
			errors["institution_id"] = "Institution ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClassRoom", reqData)
		return c.Next()
	}
}

// AssignTeacher validates the teacher assignment body
func AssignTeacher() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ClassRoomID uint `json:"classroom_id"`
			TeacherID   uint `json:"teacher_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ClassRoomID == 0 {
			errors["classroom_id"] = "Classroom ID is required!"
		}
		if reqData.TeacherID == 0 {
			errors["teacher_id"] = "Teacher ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAssignTeacher", reqData)
		return c.Next()
	}
}

// LearningPath validates the learning path create body
func LearningPath() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			CourseIDs   []uint `json:"course_ids"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if len(reqData.CourseIDs) == 0 {
			errors["course_ids"] = "At least one course is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLearningPath", reqData)
		return c.Next()
	}
}
