package service

import (
	"sort"
	"time"

	"github.com/ekremtasci/testportal/internal/model"
	"github.com/ekremtasci/testportal/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func boolPtr(b bool) *bool { return &b }

func floatPtr(f float64) *float64 { return &f }

func timePtr(t time.Time) *time.Time { return &t }

type fakeTestRepo struct {
	tests map[uuid.UUID]*model.Test
}

func newFakeTestRepo(tests ...*model.Test) *fakeTestRepo {
	r := &fakeTestRepo{tests: make(map[uuid.UUID]*model.Test)}
	for _, t := range tests {
		r.tests[t.ID] = t
	}
	return r
}

func (r *fakeTestRepo) Create(test *model.Test) error {
	if test.ID == uuid.Nil {
		test.ID = uuid.New()
	}
	r.tests[test.ID] = test
	return nil
}

func (r *fakeTestRepo) FindByID(id uuid.UUID) (*model.Test, error) {
	t, ok := r.tests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (r *fakeTestRepo) FindByIDWithQuestions(id uuid.UUID) (*model.Test, error) {
	return r.FindByID(id)
}

func (r *fakeTestRepo) FindAllWithQuestionCount() ([]repository.TestWithQuestionCount, error) {
	results := make([]repository.TestWithQuestionCount, 0, len(r.tests))
	for _, t := range r.tests {
		results = append(results, repository.TestWithQuestionCount{Test: *t, QuestionCount: len(t.Questions)})
	}
	return results, nil
}

type fakeAssignmentRepo struct {
	assignments []*model.TestAssignment
}

func (r *fakeAssignmentRepo) Create(assignment *model.TestAssignment) error {
	if assignment.ID == uuid.Nil {
		assignment.ID = uuid.New()
	}
	r.assignments = append(r.assignments, assignment)
	return nil
}

func (r *fakeAssignmentRepo) CreateMissing(testID uuid.UUID, studentIDs []uuid.UUID) (int, error) {
	assigned := make(map[uuid.UUID]bool)
	for _, a := range r.assignments {
		if a.TestID == testID {
			assigned[a.StudentID] = true
		}
	}
	created := 0
	for _, studentID := range studentIDs {
		if assigned[studentID] {
			continue
		}
		r.assignments = append(r.assignments, &model.TestAssignment{
			ID:        uuid.New(),
			TestID:    testID,
			StudentID: studentID,
			Status:    model.StatusAssigned,
		})
		created++
	}
	return created, nil
}

func (r *fakeAssignmentRepo) FindCompletedByTestAndStudent(testID, studentID uuid.UUID) ([]model.TestAssignment, error) {
	var completed []model.TestAssignment
	for _, a := range r.assignments {
		if a.TestID == testID && a.StudentID == studentID && a.Status == model.StatusCompleted {
			completed = append(completed, *a)
		}
	}
	sort.Slice(completed, func(i, j int) bool {
		return completed[i].CompletedAt.After(*completed[j].CompletedAt)
	})
	return completed, nil
}

func (r *fakeAssignmentRepo) FindAllByStudent(studentID uuid.UUID) ([]repository.AssignmentWithQuestionCount, error) {
	var results []repository.AssignmentWithQuestionCount
	for _, a := range r.assignments {
		if a.StudentID == studentID {
			results = append(results, repository.AssignmentWithQuestionCount{TestAssignment: *a})
		}
	}
	return results, nil
}

func (r *fakeAssignmentRepo) FindByIDForStudent(id, studentID uuid.UUID) (*model.TestAssignment, error) {
	for _, a := range r.assignments {
		if a.ID == id && a.StudentID == studentID {
			copy := *a
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAssignmentRepo) TransitionToInProgress(id, studentID uuid.UUID, startedAt time.Time) (int64, error) {
	for _, a := range r.assignments {
		if a.ID == id && a.StudentID == studentID && a.Status == model.StatusAssigned {
			a.Status = model.StatusInProgress
			a.StartedAt = &startedAt
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeAssignmentRepo) FindInProgressForStudent(id, studentID uuid.UUID) (*model.TestAssignment, error) {
	for _, a := range r.assignments {
		if a.ID == id && a.StudentID == studentID && a.Status == model.StatusInProgress {
			copy := *a
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindStudentsByIDs(ids []uuid.UUID) ([]model.User, error) {
	var students []model.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok && u.Role == model.RoleStudent {
			students = append(students, *u)
		}
	}
	return students, nil
}

type answerKey struct {
	assignmentID uuid.UUID
	questionID   uuid.UUID
}

type fakeAnswerRepo struct {
	answers map[answerKey]*model.StudentAnswer
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{answers: make(map[answerKey]*model.StudentAnswer)}
}

func (r *fakeAnswerRepo) Upsert(answer *model.StudentAnswer) error {
	key := answerKey{answer.TestAssignmentID, answer.QuestionID}
	if existing, ok := r.answers[key]; ok {
		existing.SelectedAnswer = answer.SelectedAnswer
		return nil
	}
	if answer.ID == uuid.Nil {
		answer.ID = uuid.New()
	}
	copy := *answer
	r.answers[key] = &copy
	return nil
}

func (r *fakeAnswerRepo) FindByAssignment(assignmentID uuid.UUID) ([]model.StudentAnswer, error) {
	var answers []model.StudentAnswer
	for key, a := range r.answers {
		if key.assignmentID == assignmentID {
			answers = append(answers, *a)
		}
	}
	return answers, nil
}

func (r *fakeAnswerRepo) FindByAssignmentAndQuestion(assignmentID, questionID uuid.UUID) (*model.StudentAnswer, error) {
	a, ok := r.answers[answerKey{assignmentID, questionID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *a
	return &copy, nil
}

type fakeQuestionRepo struct {
	questions map[uuid.UUID]*model.Question
}

func newFakeQuestionRepo(questions ...*model.Question) *fakeQuestionRepo {
	r := &fakeQuestionRepo{questions: make(map[uuid.UUID]*model.Question)}
	for _, q := range questions {
		r.questions[q.ID] = q
	}
	return r
}

func (r *fakeQuestionRepo) Create(question *model.Question) error {
	if question.ID == uuid.Nil {
		question.ID = uuid.New()
	}
	r.questions[question.ID] = question
	return nil
}

func (r *fakeQuestionRepo) FindByID(id uuid.UUID) (*model.Question, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return q, nil
}

func (r *fakeQuestionRepo) FindByIDs(ids []uuid.UUID) ([]model.Question, error) {
	var questions []model.Question
	for _, id := range ids {
		if q, ok := r.questions[id]; ok {
			questions = append(questions, *q)
		}
	}
	return questions, nil
}

func (r *fakeQuestionRepo) FindAll() ([]model.Question, error) {
	questions := make([]model.Question, 0, len(r.questions))
	for _, q := range r.questions {
		questions = append(questions, *q)
	}
	return questions, nil
}

func (r *fakeQuestionRepo) Update(question *model.Question) error {
	r.questions[question.ID] = question
	return nil
}

func (r *fakeQuestionRepo) Delete(id uuid.UUID) error {
	delete(r.questions, id)
	return nil
}
