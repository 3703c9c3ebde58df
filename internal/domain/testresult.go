package domain

import (
	"time"

	"github.com/google/uuid"
)

// TestCaseResult represents the verdict for a single test case. Actual is
// the parsed program output, the raw output line when it was not valid JSON,
// or nil when the program produced no line for this case.
type TestCaseResult struct {
	Input    interface{} `json:"input"`
	Expected interface{} `json:"expected"`
	Actual   interface{} `json:"actual"`
	Passed   bool        `json:"passed"`
}

// GradingResult represents the outcome of grading one submission
type GradingResult struct {
	ID          uuid.UUID
	Language    string
	Version     string
	EntryPoint  string
	Passed      bool
	TestCases   []TestCaseResult
	CompletedAt time.Time
}
