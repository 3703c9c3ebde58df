package secondary

import (
	"context"

	"gitlab.com/gradelab-2025.net/internal/domain"
)

type CodeExecutor interface {
	// Execute submits a composite program to the sandboxed execution service
	Execute(ctx context.Context, req *domain.ExecutionRequest) (*domain.ExecutionOutcome, error)

	// Runtimes lists the language/version pairs the service can run
	Runtimes(ctx context.Context) ([]domain.Runtime, error)
}
