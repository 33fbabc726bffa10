package utils

import (
	"fmt"
	"log"
	"net/smtp"

	"gyangrit/config"
	"gyangrit/database"
	"gyangrit/models"
)

const (
	smtpHost = "smtp.gmail.com"
	smtpPort = "587"
)

func sendHTMLEmail(to, subjectLine, body string) error {
	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	subject := fmt.Sprintf("Subject: %s\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n", subjectLine)
	message := []byte(subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{to}, message); err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return err
	}
	return nil
}

// SendEnrollmentEmail sends an email notification when a learner enrolls in a course
func SendEnrollmentEmail(email, userName, courseName string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Enrollment Successful!</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">You have successfully enrolled in:</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
					<p style="font-size: 14px; color: #666666;">You can now open the lessons and start learning. Complete all lessons to finish the course.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 20px;">Gyangrit Team</p>
				</div>
			</body>
		</html>
	`, userName, courseName)

	return sendHTMLEmail(email, "Course Enrollment Confirmation - Gyangrit", body)
}

// SendCertificateEmail sends the completion certificate notification
func SendCertificateEmail(email, userName, courseName, certificateNumber string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Certificate of Completion</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Congratulations on completing the course:</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
					<div style="background-color: #f8f9fa; border-radius: 8px; padding: 20px; margin: 20px 0; text-align: center;">
						<p style="font-size: 14px; color: #666666; margin-bottom: 10px;">Your Certificate Number:</p>
						<h2 style="color: #2196F3; margin: 0;">%s</h2>
					</div>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 20px;">Gyangrit Team</p>
				</div>
			</body>
		</html>
	`, userName, courseName, certificateNumber)

	return sendHTMLEmail(email, "Course Completion Certificate - Gyangrit", body)
}

// SendAssessmentResultEmail mails a learner their graded attempt result
func SendAssessmentResultEmail(userID uint, assessmentTitle string, score int, passed bool) error {
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return err
	}
	if user.Email == "" {
		return nil
	}

	verdict := "Not Passed"
	color := "#f44336"
	if passed {
		verdict = "Passed"
		color = "#4CAF50"
	}

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Assessment Result</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Your attempt for <b>%s</b> has been graded:</p>
					<h1 style="text-align: center; color: %s; font-size: 40px; margin: 20px 0;">%d</h1>
					<p style="font-size: 16px; color: %s; text-align: center;"><b>%s</b></p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 20px;">Gyangrit Team</p>
				</div>
			</body>
		</html>
	`, user.Name, assessmentTitle, color, score, color, verdict)

	return sendHTMLEmail(user.Email, "Assessment Result - Gyangrit", body)
}

// SendCourseReminderEmail nudges a learner with a stale enrollment
func SendCourseReminderEmail(email, userName, courseName string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Keep Learning!</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">You enrolled in <b>%s</b> a while ago. Pick up where you left off and keep your progress going.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 20px;">Gyangrit Team</p>
				</div>
			</body>
		</html>
	`, userName, courseName)

	return sendHTMLEmail(email, "Course Reminder - Gyangrit", body)
}
