// Package gradingrepository contains the PostgreSQL implementation of the
// grading run store
package gradingrepository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/gradelab-2025.net/internal/core/ports/primary"
	"gitlab.com/gradelab-2025.net/internal/domain"
)

// GradingRepository implements the GradingRepository interface with PostgreSQL
type GradingRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewGradingRepository creates a new PostgreSQL grading repository
func NewGradingRepository(db *sqlx.DB, logger primary.Logger) *GradingRepository {
	return &GradingRepository{
		db:     db,
		logger: logger,
	}
}

type gradingRow struct {
	ID          uuid.UUID `db:"id"`
	Language    string    `db:"language"`
	Version     string    `db:"version"`
	EntryPoint  string    `db:"entry_point"`
	Passed      bool      `db:"passed"`
	TestCases   []byte    `db:"test_cases"`
	SubmittedAt time.Time `db:"submitted_at"`
	CompletedAt time.Time `db:"completed_at"`
}

// SaveGrading stores one finished grading run
func (r *GradingRepository) SaveGrading(ctx context.Context, submission *domain.Submission, result *domain.GradingResult) error {
	testCasesJSON, err := json.Marshal(result.TestCases)
	if err != nil {
		r.logger.Error("Failed to marshal test case results", "error", err)
		return fmt.Errorf("failed to marshal test case results: %w", err)
	}

	query := `
		INSERT INTO grading_runs (
			id, language, version, entry_point, passed,
			test_cases, submitted_at, completed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.db.ExecContext(ctx, query,
		result.ID,
		result.Language,
		result.Version,
		result.EntryPoint,
		result.Passed,
		testCasesJSON,
		submission.SubmittedAt,
		result.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save grading run: %w", err)
	}
	return nil
}

// GetGrading retrieves a grading run by ID, returning nil when not found
func (r *GradingRepository) GetGrading(ctx context.Context, id uuid.UUID) (*domain.GradingResult, error) {
	query := `
		SELECT id, language, version, entry_point, passed,
		       test_cases, submitted_at, completed_at
		FROM grading_runs
		WHERE id = $1
	`
	var row gradingRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get grading run: %w", err)
	}

	result := &domain.GradingResult{
		ID:          row.ID,
		Language:    row.Language,
		Version:     row.Version,
		EntryPoint:  row.EntryPoint,
		Passed:      row.Passed,
		CompletedAt: row.CompletedAt,
	}
	if err := json.Unmarshal(row.TestCases, &result.TestCases); err != nil {
		return nil, fmt.Errorf("failed to unmarshal test case results: %w", err)
	}
	return result, nil
}
