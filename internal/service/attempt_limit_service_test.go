package service

import (
	"errors"
	"testing"
	"time"

	"github.com/ekremtasci/testportal/internal/model"
	"github.com/google/uuid"
)

func completedAttempt(testID, studentID uuid.UUID, score float64, completedAt time.Time, answers []model.StudentAnswer) *model.TestAssignment {
	return &model.TestAssignment{
		ID:          uuid.New(),
		TestID:      testID,
		StudentID:   studentID,
		Status:      model.StatusCompleted,
		Score:       floatPtr(score),
		StartedAt:   timePtr(completedAt),
		CompletedAt: timePtr(completedAt),
		Answers:     answers,
	}
}

func TestCheckAttemptLimit_UnknownTest(t *testing.T) {
	svc := NewAttemptLimitService(newFakeTestRepo(), &fakeAssignmentRepo{})

	_, err := svc.CheckAttemptLimit(uuid.New(), uuid.New())
	if !errors.Is(err, ErrTestNotFound) {
		t.Fatalf("err = %v, want ErrTestNotFound", err)
	}
}

func TestCheckAttemptLimit_Unlimited(t *testing.T) {
	test := &model.Test{ID: uuid.New(), Name: "Open practice", MaxAttempts: 0}
	studentID := uuid.New()

	assignments := &fakeAssignmentRepo{}
	for i := 0; i < 5; i++ {
		assignments.assignments = append(assignments.assignments,
			completedAttempt(test.ID, studentID, 80, time.Now().Add(-time.Duration(i)*time.Hour), nil))
	}

	svc := NewAttemptLimitService(newFakeTestRepo(test), assignments)

	check, err := svc.CheckAttemptLimit(test.ID, studentID)
	if err != nil {
		t.Fatalf("CheckAttemptLimit: %v", err)
	}
	if !check.Allowed {
		t.Error("unlimited test must always allow a new attempt")
	}
	if check.Remaining != nil {
		t.Errorf("Remaining = %d, want nil for unlimited", *check.Remaining)
	}
	if check.Total != 0 {
		t.Errorf("Total = %d, want 0", check.Total)
	}
	if len(check.History) != 5 {
		t.Errorf("len(History) = %d, want 5", len(check.History))
	}
}

func TestCheckAttemptLimit_Limited(t *testing.T) {
	tests := []struct {
		name          string
		maxAttempts   int
		completed     int
		wantAllowed   bool
		wantRemaining int
	}{
		{name: "no attempts yet", maxAttempts: 3, completed: 0, wantAllowed: true, wantRemaining: 3},
		{name: "one left", maxAttempts: 3, completed: 2, wantAllowed: true, wantRemaining: 1},
		{name: "at the limit", maxAttempts: 3, completed: 3, wantAllowed: false, wantRemaining: 0},
		{name: "single attempt used", maxAttempts: 1, completed: 1, wantAllowed: false, wantRemaining: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			test := &model.Test{ID: uuid.New(), Name: "Final exam", MaxAttempts: tc.maxAttempts}
			studentID := uuid.New()

			assignments := &fakeAssignmentRepo{}
			for i := 0; i < tc.completed; i++ {
				assignments.assignments = append(assignments.assignments,
					completedAttempt(test.ID, studentID, 50, time.Now().Add(-time.Duration(i)*time.Hour), nil))
			}

			svc := NewAttemptLimitService(newFakeTestRepo(test), assignments)

			check, err := svc.CheckAttemptLimit(test.ID, studentID)
			if err != nil {
				t.Fatalf("CheckAttemptLimit: %v", err)
			}
			if check.Allowed != tc.wantAllowed {
				t.Errorf("Allowed = %v, want %v", check.Allowed, tc.wantAllowed)
			}
			if check.Remaining == nil {
				t.Fatal("Remaining = nil, want a value for a limited test")
			}
			if *check.Remaining != tc.wantRemaining {
				t.Errorf("Remaining = %d, want %d", *check.Remaining, tc.wantRemaining)
			}
			if check.Total != tc.maxAttempts {
				t.Errorf("Total = %d, want %d", check.Total, tc.maxAttempts)
			}
		})
	}
}

func TestCheckAttemptLimit_OnlyCompletedAttemptsCount(t *testing.T) {
	test := &model.Test{ID: uuid.New(), Name: "Quiz", MaxAttempts: 2}
	studentID := uuid.New()

	assignments := &fakeAssignmentRepo{}
	assignments.assignments = append(assignments.assignments,
		&model.TestAssignment{ID: uuid.New(), TestID: test.ID, StudentID: studentID, Status: model.StatusAssigned},
		&model.TestAssignment{ID: uuid.New(), TestID: test.ID, StudentID: studentID, Status: model.StatusInProgress, StartedAt: timePtr(time.Now())},
		completedAttempt(test.ID, studentID, 90, time.Now(), nil),
	)
	// Another student's completed attempt must not count either.
	assignments.assignments = append(assignments.assignments,
		completedAttempt(test.ID, uuid.New(), 10, time.Now(), nil))

	svc := NewAttemptLimitService(newFakeTestRepo(test), assignments)

	check, err := svc.CheckAttemptLimit(test.ID, studentID)
	if err != nil {
		t.Fatalf("CheckAttemptLimit: %v", err)
	}
	if !check.Allowed {
		t.Error("one completed of two allowed must still permit an attempt")
	}
	if check.Remaining == nil || *check.Remaining != 1 {
		t.Errorf("Remaining = %v, want 1", check.Remaining)
	}
	if len(check.History) != 1 {
		t.Errorf("len(History) = %d, want 1", len(check.History))
	}
}

func TestCheckAttemptLimit_HistoryOrderAndCounts(t *testing.T) {
	test := &model.Test{ID: uuid.New(), Name: "Midterm", MaxAttempts: 5}
	studentID := uuid.New()

	older := completedAttempt(test.ID, studentID, 40, time.Now().Add(-2*time.Hour), []model.StudentAnswer{
		{ID: uuid.New(), QuestionID: uuid.New(), SelectedAnswer: "a", IsCorrect: boolPtr(true)},
		{ID: uuid.New(), QuestionID: uuid.New(), SelectedAnswer: "b", IsCorrect: boolPtr(false)},
		{ID: uuid.New(), QuestionID: uuid.New(), SelectedAnswer: "c", IsCorrect: nil},
	})
	newer := completedAttempt(test.ID, studentID, 75, time.Now().Add(-time.Hour), []model.StudentAnswer{
		{ID: uuid.New(), QuestionID: uuid.New(), SelectedAnswer: "d", IsCorrect: boolPtr(true)},
		{ID: uuid.New(), QuestionID: uuid.New(), SelectedAnswer: "e", IsCorrect: boolPtr(true)},
	})

	assignments := &fakeAssignmentRepo{assignments: []*model.TestAssignment{older, newer}}
	svc := NewAttemptLimitService(newFakeTestRepo(test), assignments)

	check, err := svc.CheckAttemptLimit(test.ID, studentID)
	if err != nil {
		t.Fatalf("CheckAttemptLimit: %v", err)
	}
	if len(check.History) != 2 {
		t.Fatalf("len(History) = %d, want 2", len(check.History))
	}
	if check.History[0].ID != newer.ID {
		t.Error("history must list the most recent attempt first")
	}
	if check.History[0].CorrectCount != 2 || check.History[0].IncorrectCount != 0 {
		t.Errorf("newer attempt counts = (%d, %d), want (2, 0)",
			check.History[0].CorrectCount, check.History[0].IncorrectCount)
	}
	if check.History[1].CorrectCount != 1 || check.History[1].IncorrectCount != 1 {
		t.Errorf("older attempt counts = (%d, %d), want (1, 1)",
			check.History[1].CorrectCount, check.History[1].IncorrectCount)
	}
}
