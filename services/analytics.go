package services

import (
	"math"

	"gyangrit/models"
)

// AttemptStats is the read-side rollup over a set of submitted attempts
type AttemptStats struct {
	TotalAttempts      int     `json:"total_attempts"`
	UniqueParticipants int     `json:"unique_participants"`
	AverageScore       float64 `json:"average_score"`
	PassCount          int     `json:"pass_count"`
	FailCount          int     `json:"fail_count"`
	PassRate           float64 `json:"pass_rate"`
}

// Round2 rounds to 2 decimal places
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// SummarizeAttempts rolls up submitted attempts: counts, distinct
// participants, mean score and pass rate (both rounded to 2 decimals).
// Unsubmitted attempts are ignored. All zeros when nothing was submitted.
func SummarizeAttempts(attempts []models.AssessmentAttempt) AttemptStats {
	var stats AttemptStats
	participants := make(map[uint]bool)
	scoreSum := 0

	for _, attempt := range attempts {
		if attempt.SubmittedAt == nil {
			continue
		}
		stats.TotalAttempts++
		participants[attempt.UserID] = true
		scoreSum += attempt.Score
		if attempt.Passed {
			stats.PassCount++
		} else {
			stats.FailCount++
		}
	}

	stats.UniqueParticipants = len(participants)
	if stats.TotalAttempts > 0 {
		stats.AverageScore = Round2(float64(scoreSum) / float64(stats.TotalAttempts))
		stats.PassRate = Round2(100 * float64(stats.PassCount) / float64(stats.TotalAttempts))
	}
	return stats
}
