package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/gradelab-2025.net/internal/domain"
)

// GradingRepository defines the interface for storing and retrieving
// finished grading runs
type GradingRepository interface {
	// SaveGrading stores the result of one grading run
	SaveGrading(ctx context.Context, submission *domain.Submission, result *domain.GradingResult) error

	// GetGrading retrieves a grading result by its run ID
	GetGrading(ctx context.Context, id uuid.UUID) (*domain.GradingResult, error)
}
