package services

import "gyangrit/models"

// ScoreAnswers grades a submitted answers map (questionId -> optionId)
// against an assessment's questions and options. An answer earns the
// question's full marks only when the chosen option belongs to that question
// and is marked correct. Unknown question ids, unknown option ids and
// mismatched pairs are skipped, never treated as errors.
func ScoreAnswers(questions []models.Question, options []models.QuestionOption, answers map[uint]uint) int {
	marksByQuestion := make(map[uint]int, len(questions))
	for _, q := range questions {
		marksByQuestion[q.ID] = q.Marks
	}

	optionByID := make(map[uint]models.QuestionOption, len(options))
	for _, opt := range options {
		optionByID[opt.ID] = opt
	}

	score := 0
	for questionID, optionID := range answers {
		marks, ok := marksByQuestion[questionID]
		if !ok {
			continue
		}
		option, ok := optionByID[optionID]
		if !ok || option.QuestionID != questionID || !option.IsCorrect {
			continue
		}
		score += marks
	}
	return score
}
