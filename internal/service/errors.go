package service

import (
	"errors"
	"fmt"
)

var (
	ErrTestNotFound       = errors.New("test not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrPermissionDenied   = errors.New("user does not have permission to assign tests")
	ErrInvalidStudentIDs  = errors.New("one or more provided IDs do not belong to valid students")
	// ErrCannotStart stays generic: the guarded update cannot tell
	// "not found" from "wrong state" from "not owner".
	ErrCannotStart   = errors.New("could not start test; it may have already been started or does not exist")
	ErrNotInProgress = errors.New("assignment not found, does not belong to the student, or is not in progress")
	ErrInvalidAnswer = errors.New("selected answer must be one of a, b, c, d, e")
)

// AttemptLimitError is returned when a student has exhausted the configured
// maximum number of attempts for a test.
type AttemptLimitError struct {
	Total int
}

func (e *AttemptLimitError) Error() string {
	return fmt.Sprintf("attempt limit reached for this test (%d attempts)", e.Total)
}
