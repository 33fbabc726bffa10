package services

import (
	"testing"
	"time"

	"gyangrit/models"

	"github.com/stretchr/testify/assert"
)

func submittedAttempt(userID uint, score int, passed bool) models.AssessmentAttempt {
	now := time.Now()
	return models.AssessmentAttempt{
		UserID:      userID,
		Score:       score,
		Passed:      passed,
		SubmittedAt: &now,
	}
}

func TestSummarizeAttemptsRoundsAverages(t *testing.T) {
	attempts := []models.AssessmentAttempt{
		submittedAttempt(1, 4, false),
		submittedAttempt(2, 6, true),
		submittedAttempt(3, 10, true),
	}

	stats := SummarizeAttempts(attempts)

	assert.Equal(t, 3, stats.TotalAttempts)
	assert.Equal(t, 3, stats.UniqueParticipants)
	assert.Equal(t, 6.67, stats.AverageScore)
	assert.Equal(t, 2, stats.PassCount)
	assert.Equal(t, 1, stats.FailCount)
	assert.Equal(t, 66.67, stats.PassRate)
}

func TestSummarizeAttemptsEmpty(t *testing.T) {
	stats := SummarizeAttempts(nil)

	assert.Equal(t, AttemptStats{}, stats)
}

func TestSummarizeAttemptsIgnoresUnsubmitted(t *testing.T) {
	attempts := []models.AssessmentAttempt{
		submittedAttempt(1, 8, true),
		{UserID: 2, Score: 0}, // started, never submitted
	}

	stats := SummarizeAttempts(attempts)

	assert.Equal(t, 1, stats.TotalAttempts)
	assert.Equal(t, 1, stats.UniqueParticipants)
	assert.Equal(t, 8.0, stats.AverageScore)
	assert.Equal(t, 100.0, stats.PassRate)
}

func TestSummarizeAttemptsCountsDistinctParticipants(t *testing.T) {
	attempts := []models.AssessmentAttempt{
		submittedAttempt(1, 4, false),
		submittedAttempt(1, 9, true),
	}

	stats := SummarizeAttempts(attempts)

	assert.Equal(t, 2, stats.TotalAttempts)
	assert.Equal(t, 1, stats.UniqueParticipants)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 6.67, Round2(6.666666))
	assert.Equal(t, 6.66, Round2(6.664))
	assert.Equal(t, 0.0, Round2(0))
}
