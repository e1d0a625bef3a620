package service

import (
	"math"

	"github.com/ekremtasci/testportal/internal/model"
	"github.com/google/uuid"
)

// gradeAnswer is the single correctness primitive shared by both submission
// pathways: plain equality between the selection and the authoritative key.
func gradeAnswer(correctAnswer, selectedAnswer string) bool {
	return selectedAnswer == correctAnswer
}

// classification is the outcome of grading a full answer set against a test's
// question list. Only non-empty answers produce StudentAnswer rows.
type classification struct {
	Answers        []model.StudentAnswer
	CorrectCount   int
	IncorrectCount int
	EmptyCount     int
}

// classifyAnswers walks every question of the test and sorts the submitted
// answer for it into exactly one of correct, incorrect or empty. A question
// with no entry in submitted is empty and gets no row.
func classifyAnswers(questions []model.TestQuestion, submitted map[uuid.UUID]string) classification {
	var c classification
	for _, tq := range questions {
		selected, ok := submitted[tq.QuestionID]
		if !ok || selected == "" {
			c.EmptyCount++
			continue
		}

		isCorrect := gradeAnswer(tq.Question.CorrectAnswer, selected)
		if isCorrect {
			c.CorrectCount++
		} else {
			c.IncorrectCount++
		}
		c.Answers = append(c.Answers, model.StudentAnswer{
			QuestionID:     tq.QuestionID,
			SelectedAnswer: selected,
			IsCorrect:      &isCorrect,
		})
	}
	return c
}

// gradeRecorded grades the answers already saved on an assignment. Questions
// without a recorded row contribute neither correct nor incorrect.
func gradeRecorded(questions []model.TestQuestion, answers []model.StudentAnswer) ([]model.StudentAnswer, int) {
	keyByQuestion := make(map[uuid.UUID]string, len(questions))
	for _, tq := range questions {
		keyByQuestion[tq.QuestionID] = tq.Question.CorrectAnswer
	}

	correctCount := 0
	graded := make([]model.StudentAnswer, 0, len(answers))
	for _, ans := range answers {
		key, ok := keyByQuestion[ans.QuestionID]
		if !ok {
			continue
		}
		isCorrect := gradeAnswer(key, ans.SelectedAnswer)
		if isCorrect {
			correctCount++
		}
		ans.IsCorrect = &isCorrect
		graded = append(graded, ans)
	}
	return graded, correctCount
}

// percentageScore is (correct / total) * 100, 0 when the test has no
// questions. The one-shot pathway stores it as-is.
func percentageScore(correctCount, totalQuestions int) float64 {
	if totalQuestions == 0 {
		return 0
	}
	return (float64(correctCount) / float64(totalQuestions)) * 100
}

// roundedScore is percentageScore rounded to two decimal places, used by the
// incremental submit pathway.
func roundedScore(correctCount, totalQuestions int) float64 {
	return math.Round(percentageScore(correctCount, totalQuestions)*100) / 100
}
