package grading_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"gitlab.com/gradelab-2025.net/internal/core/services/grading"
	"gitlab.com/gradelab-2025.net/internal/domain"
	"gitlab.com/gradelab-2025.net/internal/static/errs"
)

type noopLogger struct{}

func (noopLogger) Info(msg string, args ...interface{})  {}
func (noopLogger) Error(msg string, args ...interface{}) {}
func (noopLogger) Debug(msg string, args ...interface{}) {}
func (noopLogger) Warn(msg string, args ...interface{})  {}

type stubExecutor struct {
	lastRequest *domain.ExecutionRequest
	outcome     *domain.ExecutionOutcome
	err         error
}

func (s *stubExecutor) Execute(ctx context.Context, req *domain.ExecutionRequest) (*domain.ExecutionOutcome, error) {
	s.lastRequest = req
	if s.err != nil {
		return nil, s.err
	}
	return s.outcome, nil
}

func (s *stubExecutor) Runtimes(ctx context.Context) ([]domain.Runtime, error) {
	return []domain.Runtime{{Language: "javascript", Version: "18.15.0"}}, nil
}

type stubRepo struct {
	saved  *domain.GradingResult
	stored map[uuid.UUID]*domain.GradingResult
	err    error
}

func (s *stubRepo) SaveGrading(ctx context.Context, submission *domain.Submission, result *domain.GradingResult) error {
	s.saved = result
	return s.err
}

func (s *stubRepo) GetGrading(ctx context.Context, id uuid.UUID) (*domain.GradingResult, error) {
	return s.stored[id], nil
}

func newSubmission(source string, testCases []domain.TestCase) *domain.Submission {
	return domain.NewSubmission("javascript", "18.15.0",
		[]domain.SubmissionFile{{Content: source}}, testCases)
}

func TestGradeSubmissionEndToEnd(t *testing.T) {
	executor := &stubExecutor{
		outcome: &domain.ExecutionOutcome{Run: domain.ProcessResult{Stdout: "3\n0\n"}},
	}
	repo := &stubRepo{}
	svc := grading.NewGradingService(executor, repo, noopLogger{})

	submission := newSubmission(
		"console.log('debug');\nfunction sum(a,b){return a+b}",
		[]domain.TestCase{
			{Input: "[1,2]", Output: "3"},
			{Input: "[-1,1]", Output: "0"},
		})

	result, err := svc.GradeSubmission(context.Background(), submission)
	require.NoError(t, err)
	require.True(t, result.Passed)
	require.Equal(t, "sum", result.EntryPoint)
	require.Equal(t, submission.ID, result.ID)
	require.Len(t, result.TestCases, 2)

	// The composite program sent to the sandbox carries the cleaned source
	// and one harness line per test case, in order.
	require.NotNil(t, executor.lastRequest)
	require.Len(t, executor.lastRequest.Files, 1)
	require.Equal(t,
		"function sum(a,b){return a+b}\n\n"+
			"console.log(sum(...[1,2]));\n"+
			"console.log(sum(...[-1,1]));",
		executor.lastRequest.Files[0].Content)

	require.NotNil(t, repo.saved)
	require.Equal(t, submission.ID, repo.saved.ID)
}

func TestGradeSubmissionNoEntryPoint(t *testing.T) {
	executor := &stubExecutor{}
	svc := grading.NewGradingService(executor, &stubRepo{}, noopLogger{})

	submission := newSubmission("const x = 3;", []domain.TestCase{{Input: "[1]", Output: "1"}})

	_, err := svc.GradeSubmission(context.Background(), submission)
	require.ErrorIs(t, err, errs.NoValidFunction)
	require.Nil(t, executor.lastRequest, "detection failure must not reach the execution service")
}

func TestGradeSubmissionUnparsableSource(t *testing.T) {
	executor := &stubExecutor{}
	svc := grading.NewGradingService(executor, &stubRepo{}, noopLogger{})

	submission := newSubmission("function (broken {", []domain.TestCase{{Input: "[1]", Output: "1"}})

	_, err := svc.GradeSubmission(context.Background(), submission)
	require.ErrorIs(t, err, errs.SubmissionUnparsable)
	require.Nil(t, executor.lastRequest)
}

func TestGradeSubmissionNoFiles(t *testing.T) {
	svc := grading.NewGradingService(&stubExecutor{}, &stubRepo{}, noopLogger{})

	submission := domain.NewSubmission("javascript", "18.15.0", nil, nil)

	_, err := svc.GradeSubmission(context.Background(), submission)
	require.ErrorIs(t, err, errs.EmptySubmission)
}

func TestGradeSubmissionExecutorFailure(t *testing.T) {
	executor := &stubExecutor{err: errs.ExecutionUnavailable}
	svc := grading.NewGradingService(executor, &stubRepo{}, noopLogger{})

	submission := newSubmission("function f(){return 1}", []domain.TestCase{{Input: "[]", Output: "1"}})

	_, err := svc.GradeSubmission(context.Background(), submission)
	require.ErrorIs(t, err, errs.ExecutionUnavailable)
}

func TestGradeSubmissionStorageFailureDoesNotFailRequest(t *testing.T) {
	executor := &stubExecutor{
		outcome: &domain.ExecutionOutcome{Run: domain.ProcessResult{Stdout: "1\n"}},
	}
	repo := &stubRepo{err: errors.New("db down")}
	svc := grading.NewGradingService(executor, repo, noopLogger{})

	submission := newSubmission("function f(){return 1}", []domain.TestCase{{Input: "[]", Output: "1"}})

	result, err := svc.GradeSubmission(context.Background(), submission)
	require.NoError(t, err)
	require.True(t, result.Passed)
}

func TestRunSubmissionForwardsFilesUntouched(t *testing.T) {
	executor := &stubExecutor{
		outcome: &domain.ExecutionOutcome{Run: domain.ProcessResult{Stdout: "hi\n"}},
	}
	svc := grading.NewGradingService(executor, &stubRepo{}, noopLogger{})

	source := "console.log('hi')"
	submission := newSubmission(source, nil)

	_, err := svc.RunSubmission(context.Background(), submission)
	require.NoError(t, err)
	require.Equal(t, source, executor.lastRequest.Files[0].Content)
}

func TestGetGrading(t *testing.T) {
	id := uuid.New()
	repo := &stubRepo{stored: map[uuid.UUID]*domain.GradingResult{
		id: {ID: id, Passed: true},
	}}
	svc := grading.NewGradingService(&stubExecutor{}, repo, noopLogger{})

	result, err := svc.GetGrading(context.Background(), id)
	require.NoError(t, err)
	require.True(t, result.Passed)

	missing, err := svc.GetGrading(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Nil(t, missing)
}
