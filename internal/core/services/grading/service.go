package grading

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/gradelab-2025.net/internal/domain"
)

// IGradingService defines the interface for grading code submissions
type IGradingService interface {
	// GradeSubmission runs the full pipeline: normalize the source, detect
	// the entry point, synthesize the harness, execute remotely and
	// reconcile the captured output into per-test-case verdicts
	GradeSubmission(ctx context.Context, submission *domain.Submission) (*domain.GradingResult, error)

	// RunSubmission forwards the submission to the execution service as-is,
	// without harness synthesis or grading
	RunSubmission(ctx context.Context, submission *domain.Submission) (*domain.ExecutionOutcome, error)

	// GetGrading retrieves a stored grading run by ID
	GetGrading(ctx context.Context, id uuid.UUID) (*domain.GradingResult, error)

	// ListRuntimes retrieves the runtimes the execution service supports
	ListRuntimes(ctx context.Context) ([]domain.Runtime, error)
}
