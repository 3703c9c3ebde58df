package grading

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gitlab.com/gradelab-2025.net/internal/core/ports/primary"
	"gitlab.com/gradelab-2025.net/internal/core/ports/secondary"
	"gitlab.com/gradelab-2025.net/internal/domain"
	"gitlab.com/gradelab-2025.net/internal/static/errs"
)

var _ IGradingService = (*GradingService)(nil)

// GradingService implements the IGradingService interface
type GradingService struct {
	executor    secondary.CodeExecutor
	gradingRepo secondary.GradingRepository
	logger      primary.Logger
}

// NewGradingService creates a new grading service
func NewGradingService(
	executor secondary.CodeExecutor,
	gradingRepo secondary.GradingRepository,
	logger primary.Logger,
) *GradingService {
	return &GradingService{
		executor:    executor,
		gradingRepo: gradingRepo,
		logger:      logger,
	}
}

// GradeSubmission runs the grading pipeline for one submission. The stages
// before execution are pure transforms; the only suspension point is the
// call to the execution service, which honors ctx cancellation.
func (s *GradingService) GradeSubmission(ctx context.Context, submission *domain.Submission) (*domain.GradingResult, error) {
	primaryFile, ok := submission.PrimaryFile()
	if !ok {
		return nil, errs.EmptySubmission
	}

	s.logger.Info("Grading submission",
		"gradingId", submission.ID,
		"language", submission.Language,
		"testCases", len(submission.TestCases))

	cleaned, err := Normalize(primaryFile.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.SubmissionUnparsable, err)
	}

	entryPoint := DetectEntryPoint(cleaned)
	if entryPoint == "" {
		return nil, errs.NoValidFunction
	}

	composite := Synthesize(cleaned, entryPoint, submission.TestCases)

	outcome, err := s.executor.Execute(ctx, &domain.ExecutionRequest{
		Language: submission.Language,
		Version:  submission.Version,
		Files:    []domain.SubmissionFile{{Name: primaryFile.Name, Content: composite}},
		Stdin:    submission.Stdin,
		Args:     submission.Args,
		Limits:   submission.Limits,
	})
	if err != nil {
		return nil, err
	}

	result, err := Reconcile(outcome.Run.Stdout, submission.TestCases)
	if err != nil {
		return nil, err
	}
	result.ID = submission.ID
	result.Language = submission.Language
	result.Version = submission.Version
	result.EntryPoint = entryPoint
	result.CompletedAt = time.Now()

	// The verdict is already computed; a storage failure should not turn a
	// graded submission into an error response.
	if err := s.gradingRepo.SaveGrading(ctx, submission, result); err != nil {
		s.logger.Error("Failed to store grading run", "gradingId", submission.ID, "error", err)
	}

	return result, nil
}

// RunSubmission forwards the submission to the execution service unchanged
func (s *GradingService) RunSubmission(ctx context.Context, submission *domain.Submission) (*domain.ExecutionOutcome, error) {
	if len(submission.Files) == 0 {
		return nil, errs.EmptySubmission
	}

	s.logger.Info("Running submission",
		"submissionId", submission.ID,
		"language", submission.Language)

	return s.executor.Execute(ctx, &domain.ExecutionRequest{
		Language: submission.Language,
		Version:  submission.Version,
		Files:    submission.Files,
		Stdin:    submission.Stdin,
		Args:     submission.Args,
		Limits:   submission.Limits,
	})
}

// GetGrading retrieves a stored grading run by ID
func (s *GradingService) GetGrading(ctx context.Context, id uuid.UUID) (*domain.GradingResult, error) {
	return s.gradingRepo.GetGrading(ctx, id)
}

// ListRuntimes retrieves the runtimes the execution service supports
func (s *GradingService) ListRuntimes(ctx context.Context) ([]domain.Runtime, error) {
	return s.executor.Runtimes(ctx)
}
