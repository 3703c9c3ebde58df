package executions_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"gitlab.com/gradelab-2025.net/internal/domain"
	"gitlab.com/gradelab-2025.net/internal/handlers"
	"gitlab.com/gradelab-2025.net/internal/handlers/executions"
	"gitlab.com/gradelab-2025.net/internal/static/errs"
)

type noopLogger struct{}

func (noopLogger) Info(msg string, args ...interface{})  {}
func (noopLogger) Error(msg string, args ...interface{}) {}
func (noopLogger) Debug(msg string, args ...interface{}) {}
func (noopLogger) Warn(msg string, args ...interface{})  {}

type stubService struct {
	gradeResult *domain.GradingResult
	gradeErr    error
	outcome     *domain.ExecutionOutcome
	runErr      error
	stored      map[uuid.UUID]*domain.GradingResult
	runtimes    []domain.Runtime
	runtimesErr error
}

func (s *stubService) GradeSubmission(ctx context.Context, submission *domain.Submission) (*domain.GradingResult, error) {
	if s.gradeErr != nil {
		return nil, s.gradeErr
	}
	return s.gradeResult, nil
}

func (s *stubService) RunSubmission(ctx context.Context, submission *domain.Submission) (*domain.ExecutionOutcome, error) {
	if s.runErr != nil {
		return nil, s.runErr
	}
	return s.outcome, nil
}

func (s *stubService) GetGrading(ctx context.Context, id uuid.UUID) (*domain.GradingResult, error) {
	return s.stored[id], nil
}

func (s *stubService) ListRuntimes(ctx context.Context) ([]domain.Runtime, error) {
	return s.runtimes, s.runtimesErr
}

func newRouter(svc *stubService) *mux.Router {
	router := mux.NewRouter()
	mw := handlers.New("", nil, noopLogger{})
	executions.NewGradingHandler(svc, noopLogger{}).RegisterRoutes(router, mw)
	return router
}

func doRequest(router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const validGradingBody = `{
	"language": "javascript",
	"version": "18.15.0",
	"files": [{"content": "function sum(a,b){return a+b}"}],
	"testCase": [{"input": "[1,2]", "output": "3"}]
}`

func TestExecuteTestCasesSuccess(t *testing.T) {
	id := uuid.New()
	svc := &stubService{
		gradeResult: &domain.GradingResult{
			ID:         id,
			EntryPoint: "sum",
			Passed:     true,
			TestCases: []domain.TestCaseResult{
				{Input: []interface{}{1.0, 2.0}, Expected: 3.0, Actual: 3.0, Passed: true},
			},
		},
	}

	rec := doRequest(newRouter(svc), http.MethodPost, "/api/executions/testcases", validGradingBody)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message string `json:"message"`
		Data    struct {
			Passed   bool `json:"passed"`
			TestCase []struct {
				Passed bool `json:"passed"`
			} `json:"testCase"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.Data.Passed)
	require.Len(t, body.Data.TestCase, 1)
	require.True(t, body.Data.TestCase[0].Passed)
}

func TestExecuteTestCasesValidation(t *testing.T) {
	rec := doRequest(newRouter(&stubService{}), http.MethodPost, "/api/executions/testcases", `{
		"language": "javascript",
		"version": "18.15.0",
		"files": [{"content": "function f(){}"}],
		"testCase": [{"input": "  ", "output": ""}]
	}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 2)
	require.Equal(t, "testCase[0].input", body.Errors[0].Field)
	require.Equal(t, "testCase[0].output", body.Errors[1].Field)
}

func TestExecuteTestCasesEmptyTestCases(t *testing.T) {
	rec := doRequest(newRouter(&stubService{}), http.MethodPost, "/api/executions/testcases", `{
		"language": "javascript",
		"version": "18.15.0",
		"files": [{"content": "function f(){}"}],
		"testCase": []
	}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "testCase")
}

func TestExecuteTestCasesNoValidFunction(t *testing.T) {
	svc := &stubService{gradeErr: errs.NoValidFunction}

	rec := doRequest(newRouter(svc), http.MethodPost, "/api/executions/testcases", validGradingBody)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "no valid function found")
}

func TestExecuteTestCasesInternalError(t *testing.T) {
	svc := &stubService{gradeErr: errors.New("sandbox melted")}

	rec := doRequest(newRouter(svc), http.MethodPost, "/api/executions/testcases", validGradingBody)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "sandbox melted", body.Error)
}

func TestExecuteTestCasesBadJSON(t *testing.T) {
	rec := doRequest(newRouter(&stubService{}), http.MethodPost, "/api/executions/testcases", "{not json")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExecuteRaw(t *testing.T) {
	svc := &stubService{
		outcome: &domain.ExecutionOutcome{
			Language: "javascript",
			Version:  "18.15.0",
			Run:      domain.ProcessResult{Stdout: "hi\n", Code: 0},
		},
	}

	rec := doRequest(newRouter(svc), http.MethodPost, "/api/executions", `{
		"language": "javascript",
		"version": "18.15.0",
		"files": [{"content": "console.log('hi')"}]
	}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"stdout":"hi\n"`)
}

func TestGetExecution(t *testing.T) {
	id := uuid.New()
	svc := &stubService{stored: map[uuid.UUID]*domain.GradingResult{
		id: {ID: id, EntryPoint: "sum", Passed: true},
	}}
	router := newRouter(svc)

	rec := doRequest(router, http.MethodGet, "/api/executions/"+id.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"entryPoint":"sum"`)

	rec = doRequest(router, http.MethodGet, "/api/executions/"+uuid.NewString(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(router, http.MethodGet, "/api/executions/not-a-uuid", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRuntimes(t *testing.T) {
	svc := &stubService{runtimes: []domain.Runtime{{Language: "javascript", Version: "18.15.0"}}}

	rec := doRequest(newRouter(svc), http.MethodGet, "/api/runtimes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"javascript"`)
}
