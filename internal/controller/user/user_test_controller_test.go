package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ekremtasci/testportal/internal/dto"
	"github.com/ekremtasci/testportal/internal/middleware"
	"github.com/ekremtasci/testportal/internal/model"
	"github.com/ekremtasci/testportal/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type fakeSubmissionService struct {
	gotTestID    uuid.UUID
	gotStudentID uuid.UUID
	gotAnswers   map[uuid.UUID]string
	result       *dto.GradedResultDTO
	err          error
}

func (f *fakeSubmissionService) SubmitTest(testID, studentID uuid.UUID, answers map[uuid.UUID]string) (*dto.GradedResultDTO, error) {
	f.gotTestID = testID
	f.gotStudentID = studentID
	f.gotAnswers = answers
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func submitRouter(svc service.TestSubmissionService, studentID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewUserTestController(nil, nil, svc)
	router.POST("/tests/:test_id/submissions", func(ctx *gin.Context) {
		ctx.Set(middleware.ContextUserID, studentID)
		ctx.Set(middleware.ContextUserRole, model.RoleStudent)
	}, controller.SubmitTest)
	return router
}

func postSubmission(router *gin.Engine, testID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/tests/"+testID+"/submissions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSubmitTest_Created(t *testing.T) {
	testID := uuid.New()
	studentID := uuid.New()
	questionID := uuid.New()

	score := 100.0
	svc := &fakeSubmissionService{
		result: &dto.GradedResultDTO{
			ID:           uuid.New(),
			TestID:       testID,
			StudentID:    studentID,
			Status:       model.StatusCompleted,
			Score:        &score,
			CorrectCount: 1,
		},
	}
	router := submitRouter(svc, studentID)

	body := `{"answers": {"` + questionID.String() + `": "b"}}`
	rec := postSubmission(router, testID.String(), body)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if svc.gotTestID != testID || svc.gotStudentID != studentID {
		t.Errorf("service called with (%s, %s), want (%s, %s)", svc.gotTestID, svc.gotStudentID, testID, studentID)
	}
	if svc.gotAnswers[questionID] != "b" {
		t.Errorf("answers[%s] = %q, want %q", questionID, svc.gotAnswers[questionID], "b")
	}

	var resp dto.GradedResultDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != model.StatusCompleted {
		t.Errorf("Status = %q, want %q", resp.Status, model.StatusCompleted)
	}
}

func TestSubmitTest_BadRequests(t *testing.T) {
	testID := uuid.New()
	questionID := uuid.New()

	tests := []struct {
		name   string
		testID string
		body   string
	}{
		{name: "malformed test id", testID: "not-a-uuid", body: `{"answers": {}}`},
		{name: "missing answers field", testID: testID.String(), body: `{}`},
		{name: "invalid json", testID: testID.String(), body: `{"answers":`},
		{name: "answer key not a uuid", testID: testID.String(), body: `{"answers": {"q1": "a"}}`},
		{name: "answer value out of range", testID: testID.String(), body: `{"answers": {"` + questionID.String() + `": "f"}}`},
		{name: "answer value empty", testID: testID.String(), body: `{"answers": {"` + questionID.String() + `": ""}}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeSubmissionService{}
			router := submitRouter(svc, uuid.New())

			rec := postSubmission(router, tc.testID, tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d; body: %s", rec.Code, http.StatusBadRequest, rec.Body.String())
			}
			if svc.gotAnswers != nil {
				t.Error("service must not be called for a rejected request")
			}
		})
	}
}

func TestSubmitTest_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unknown test", err: service.ErrTestNotFound, wantStatus: http.StatusNotFound},
		{name: "attempt limit reached", err: &service.AttemptLimitError{Total: 2}, wantStatus: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeSubmissionService{err: tc.err}
			router := submitRouter(svc, uuid.New())

			rec := postSubmission(router, uuid.NewString(), `{"answers": {}}`)
			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d; body: %s", rec.Code, tc.wantStatus, rec.Body.String())
			}
		})
	}
}
