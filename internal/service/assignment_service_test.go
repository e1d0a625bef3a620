package service

import (
	"errors"
	"testing"
	"time"

	"github.com/ekremtasci/testportal/internal/model"
	"github.com/google/uuid"
)

func staffUser(role string) *model.User {
	return &model.User{ID: uuid.New(), Name: "Staff", Email: uuid.NewString() + "@school.test", Role: role}
}

func studentUser() *model.User {
	return &model.User{ID: uuid.New(), Name: "Student", Email: uuid.NewString() + "@school.test", Role: model.RoleStudent}
}

func TestCreateAssignments_PermissionDenied(t *testing.T) {
	student := studentUser()
	recipient := studentUser()
	users := newFakeUserRepo(student, recipient)
	svc := NewAssignmentService(users, &fakeAssignmentRepo{}, newFakeAnswerRepo(), nil)

	_, err := svc.CreateAssignments(uuid.New(), []uuid.UUID{recipient.ID}, student.ID)
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
}

func TestCreateAssignments_UnknownCreator(t *testing.T) {
	recipient := studentUser()
	svc := NewAssignmentService(newFakeUserRepo(recipient), &fakeAssignmentRepo{}, newFakeAnswerRepo(), nil)

	_, err := svc.CreateAssignments(uuid.New(), []uuid.UUID{recipient.ID}, uuid.New())
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
}

func TestCreateAssignments_InvalidStudentIDs(t *testing.T) {
	teacher := staffUser(model.RoleTeacher)
	valid := studentUser()

	tests := []struct {
		name       string
		studentIDs func() []uuid.UUID
	}{
		{name: "unknown id", studentIDs: func() []uuid.UUID {
			return []uuid.UUID{valid.ID, uuid.New()}
		}},
		{name: "staff id among recipients", studentIDs: func() []uuid.UUID {
			return []uuid.UUID{valid.ID, teacher.ID}
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assignments := &fakeAssignmentRepo{}
			svc := NewAssignmentService(newFakeUserRepo(teacher, valid), assignments, newFakeAnswerRepo(), nil)

			_, err := svc.CreateAssignments(uuid.New(), tc.studentIDs(), teacher.ID)
			if !errors.Is(err, ErrInvalidStudentIDs) {
				t.Fatalf("err = %v, want ErrInvalidStudentIDs", err)
			}
			if len(assignments.assignments) != 0 {
				t.Error("no assignment rows may be created when any recipient is invalid")
			}
		})
	}
}

func TestCreateAssignments_SkipsExisting(t *testing.T) {
	admin := staffUser(model.RoleAdmin)
	first := studentUser()
	second := studentUser()
	testID := uuid.New()

	assignments := &fakeAssignmentRepo{}
	svc := NewAssignmentService(newFakeUserRepo(admin, first, second), assignments, newFakeAnswerRepo(), nil)

	created, err := svc.CreateAssignments(testID, []uuid.UUID{first.ID, second.ID}, admin.ID)
	if err != nil {
		t.Fatalf("first CreateAssignments: %v", err)
	}
	if created.Count != 2 {
		t.Errorf("Count = %d, want 2", created.Count)
	}

	// A repeat with one extra student only creates the missing row.
	third := studentUser()
	svc = NewAssignmentService(newFakeUserRepo(admin, first, second, third), assignments, newFakeAnswerRepo(), nil)

	created, err = svc.CreateAssignments(testID, []uuid.UUID{first.ID, second.ID, third.ID}, admin.ID)
	if err != nil {
		t.Fatalf("second CreateAssignments: %v", err)
	}
	if created.Count != 1 {
		t.Errorf("Count = %d, want 1", created.Count)
	}
	if len(assignments.assignments) != 3 {
		t.Errorf("total assignment rows = %d, want 3", len(assignments.assignments))
	}

	// A full repeat is a no-op reporting zero.
	created, err = svc.CreateAssignments(testID, []uuid.UUID{first.ID, second.ID, third.ID}, admin.ID)
	if err != nil {
		t.Fatalf("third CreateAssignments: %v", err)
	}
	if created.Count != 0 {
		t.Errorf("Count = %d, want 0", created.Count)
	}
}

func TestStartTest(t *testing.T) {
	studentID := uuid.New()
	assignment := &model.TestAssignment{
		ID:        uuid.New(),
		TestID:    uuid.New(),
		StudentID: studentID,
		Status:    model.StatusAssigned,
	}
	assignments := &fakeAssignmentRepo{assignments: []*model.TestAssignment{assignment}}
	svc := NewAssignmentService(newFakeUserRepo(), assignments, newFakeAnswerRepo(), nil)

	if err := svc.StartTest(assignment.ID, studentID); err != nil {
		t.Fatalf("StartTest: %v", err)
	}
	if assignment.Status != model.StatusInProgress {
		t.Errorf("status = %q, want %q", assignment.Status, model.StatusInProgress)
	}
	if assignment.StartedAt == nil {
		t.Error("StartedAt must be stamped on start")
	}

	// The second start hits a row that is no longer ASSIGNED.
	if err := svc.StartTest(assignment.ID, studentID); !errors.Is(err, ErrCannotStart) {
		t.Fatalf("second start: err = %v, want ErrCannotStart", err)
	}
}

func TestStartTest_WrongOwnerOrMissing(t *testing.T) {
	owner := uuid.New()
	assignment := &model.TestAssignment{
		ID:        uuid.New(),
		TestID:    uuid.New(),
		StudentID: owner,
		Status:    model.StatusAssigned,
	}
	assignments := &fakeAssignmentRepo{assignments: []*model.TestAssignment{assignment}}
	svc := NewAssignmentService(newFakeUserRepo(), assignments, newFakeAnswerRepo(), nil)

	if err := svc.StartTest(assignment.ID, uuid.New()); !errors.Is(err, ErrCannotStart) {
		t.Errorf("foreign student: err = %v, want ErrCannotStart", err)
	}
	if err := svc.StartTest(uuid.New(), owner); !errors.Is(err, ErrCannotStart) {
		t.Errorf("unknown assignment: err = %v, want ErrCannotStart", err)
	}
	if assignment.Status != model.StatusAssigned {
		t.Errorf("status = %q, want %q untouched", assignment.Status, model.StatusAssigned)
	}
}

func TestSaveAnswer(t *testing.T) {
	studentID := uuid.New()
	questionID := uuid.New()
	started := time.Now()
	assignment := &model.TestAssignment{
		ID:        uuid.New(),
		TestID:    uuid.New(),
		StudentID: studentID,
		Status:    model.StatusInProgress,
		StartedAt: &started,
	}
	assignments := &fakeAssignmentRepo{assignments: []*model.TestAssignment{assignment}}
	answers := newFakeAnswerRepo()
	svc := NewAssignmentService(newFakeUserRepo(), assignments, answers, nil)

	saved, err := svc.SaveAnswer(assignment.ID, studentID, questionID, "b")
	if err != nil {
		t.Fatalf("SaveAnswer: %v", err)
	}
	if saved.SelectedAnswer != "b" {
		t.Errorf("SelectedAnswer = %q, want %q", saved.SelectedAnswer, "b")
	}
	if saved.IsCorrect != nil {
		t.Error("IsCorrect must stay unset until grading")
	}

	// Re-saving the same question overwrites instead of adding a row.
	resaved, err := svc.SaveAnswer(assignment.ID, studentID, questionID, "c")
	if err != nil {
		t.Fatalf("SaveAnswer overwrite: %v", err)
	}
	if resaved.SelectedAnswer != "c" {
		t.Errorf("SelectedAnswer = %q, want %q", resaved.SelectedAnswer, "c")
	}
	if resaved.ID != saved.ID {
		t.Error("overwriting must keep the original answer row")
	}
	rows, err := answers.FindByAssignment(assignment.ID)
	if err != nil {
		t.Fatalf("FindByAssignment: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("answer rows = %d, want 1", len(rows))
	}
}

func TestSaveAnswer_Rejections(t *testing.T) {
	studentID := uuid.New()
	assigned := &model.TestAssignment{
		ID:        uuid.New(),
		TestID:    uuid.New(),
		StudentID: studentID,
		Status:    model.StatusAssigned,
	}
	assignments := &fakeAssignmentRepo{assignments: []*model.TestAssignment{assigned}}
	svc := NewAssignmentService(newFakeUserRepo(), assignments, newFakeAnswerRepo(), nil)

	tests := []struct {
		name         string
		assignmentID uuid.UUID
		studentID    uuid.UUID
		answer       string
		wantErr      error
	}{
		{name: "invalid key", assignmentID: assigned.ID, studentID: studentID, answer: "f", wantErr: ErrInvalidAnswer},
		{name: "empty key", assignmentID: assigned.ID, studentID: studentID, answer: "", wantErr: ErrInvalidAnswer},
		{name: "not started yet", assignmentID: assigned.ID, studentID: studentID, answer: "a", wantErr: ErrNotInProgress},
		{name: "foreign student", assignmentID: assigned.ID, studentID: uuid.New(), answer: "a", wantErr: ErrNotInProgress},
		{name: "unknown assignment", assignmentID: uuid.New(), studentID: studentID, answer: "a", wantErr: ErrNotInProgress},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SaveAnswer(tc.assignmentID, tc.studentID, uuid.New(), tc.answer)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestGetAssignmentDetails_NotFoundShapes(t *testing.T) {
	owner := uuid.New()
	assignment := &model.TestAssignment{
		ID:        uuid.New(),
		TestID:    uuid.New(),
		StudentID: owner,
		Status:    model.StatusAssigned,
	}
	assignments := &fakeAssignmentRepo{assignments: []*model.TestAssignment{assignment}}
	svc := NewAssignmentService(newFakeUserRepo(), assignments, newFakeAnswerRepo(), nil)

	// A row owned by someone else and a missing row fail identically.
	if _, err := svc.GetAssignmentDetails(assignment.ID, uuid.New()); !errors.Is(err, ErrAssignmentNotFound) {
		t.Errorf("foreign student: err = %v, want ErrAssignmentNotFound", err)
	}
	if _, err := svc.GetAssignmentDetails(uuid.New(), owner); !errors.Is(err, ErrAssignmentNotFound) {
		t.Errorf("unknown assignment: err = %v, want ErrAssignmentNotFound", err)
	}
}
