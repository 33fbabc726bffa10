package utils

import (
	"log"
	"strconv"
	"time"

	"gyangrit/database"
	"gyangrit/models"

	"github.com/robfig/cron/v3"
)

// logReminder logs reminder scheduler events with timestamp
func logReminder(message string) {
	log.Printf("[REMINDER-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// sendStaleEnrollmentReminders mails learners whose enrollment has sat in
// ENROLLED for more than a week
func sendStaleEnrollmentReminders() {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -7)

	var enrollments []models.Enrollment
	if err := db.Where("status = ? AND enrolled_at <= ? AND is_deleted = ?",
		models.EnrollmentEnrolled, cutoff, false).Find(&enrollments).Error; err != nil {
		logReminder("Error fetching stale enrollments: " + err.Error())
		return
	}

	sent := 0
	for _, enrollment := range enrollments {
		var user models.User
		if err := db.Select("name, email").First(&user, enrollment.UserID).Error; err != nil || user.Email == "" {
			continue
		}

		var course models.Course
		if err := db.Select("title").First(&course, enrollment.CourseID).Error; err != nil {
			continue
		}

		if err := SendCourseReminderEmail(user.Email, user.Name, course.Title); err == nil {
			sent++
		}
	}

	logReminder("Reminder run finished, emails sent: " + strconv.Itoa(sent))
}

// StartReminderScheduler runs the stale enrollment reminder every morning
func StartReminderScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("0 8 * * *", sendStaleEnrollmentReminders); err != nil {
		log.Fatalf("Failed to schedule reminder job: %v", err)
	}

	c.Start()
	logReminder("Reminder scheduler started")
	return c
}
