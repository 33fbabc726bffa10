package services

import (
	"testing"

	"gyangrit/models"

	"github.com/stretchr/testify/assert"
)

func question(id uint, marks int) models.Question {
	q := models.Question{Marks: marks}
	q.ID = id
	return q
}

func option(id, questionID uint, correct bool) models.QuestionOption {
	o := models.QuestionOption{QuestionID: questionID, IsCorrect: correct}
	o.ID = id
	return o
}

func TestScoreAnswersCorrectOptionEarnsFullMarks(t *testing.T) {
	questions := []models.Question{question(1, 5)}
	options := []models.QuestionOption{
		option(10, 1, true),
		option(11, 1, false),
	}

	assert.Equal(t, 5, ScoreAnswers(questions, options, map[uint]uint{1: 10}))
	assert.Equal(t, 0, ScoreAnswers(questions, options, map[uint]uint{1: 11}))
}

func TestScoreAnswersSumsAcrossQuestions(t *testing.T) {
	questions := []models.Question{question(1, 2), question(2, 3)}
	options := []models.QuestionOption{
		option(10, 1, true),
		option(20, 2, true),
		option(21, 2, false),
	}

	score := ScoreAnswers(questions, options, map[uint]uint{1: 10, 2: 20})
	assert.Equal(t, 5, score)

	score = ScoreAnswers(questions, options, map[uint]uint{1: 10, 2: 21})
	assert.Equal(t, 2, score)
}

func TestScoreAnswersSkipsUnknownIDs(t *testing.T) {
	questions := []models.Question{question(1, 5)}
	options := []models.QuestionOption{option(10, 1, true)}

	// Unknown question and unknown option contribute nothing.
	score := ScoreAnswers(questions, options, map[uint]uint{99: 10, 1: 999})
	assert.Equal(t, 0, score)
}

func TestScoreAnswersRejectsOptionFromOtherQuestion(t *testing.T) {
	questions := []models.Question{question(1, 5), question(2, 5)}
	options := []models.QuestionOption{
		option(10, 1, false),
		option(20, 2, true),
	}

	// Option 20 is correct but belongs to question 2, so answering it for
	// question 1 earns nothing.
	score := ScoreAnswers(questions, options, map[uint]uint{1: 20})
	assert.Equal(t, 0, score)
}

func TestScoreAnswersEmptySubmission(t *testing.T) {
	questions := []models.Question{question(1, 5)}
	options := []models.QuestionOption{option(10, 1, true)}

	assert.Equal(t, 0, ScoreAnswers(questions, options, nil))
}
