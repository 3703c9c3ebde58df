package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionFile is one source file of a submission. Grading only inspects
// the first file; any others are forwarded to the sandbox untouched.
type SubmissionFile struct {
	Name    string `json:"name,omitempty"`
	Content string `json:"content"`
}

// Submission represents a batch of source files submitted for grading
type Submission struct {
	ID          uuid.UUID
	Language    string
	Version     string
	Files       []SubmissionFile
	TestCases   []TestCase
	Stdin       string
	Args        []string
	Limits      ExecutionLimits
	SubmittedAt time.Time
}

// NewSubmission creates a new submission
func NewSubmission(language, version string, files []SubmissionFile, testCases []TestCase) *Submission {
	return &Submission{
		ID:          uuid.New(),
		Language:    language,
		Version:     version,
		Files:       files,
		TestCases:   testCases,
		SubmittedAt: time.Now(),
	}
}

// PrimaryFile returns the file the grading pipeline analyzes
func (s *Submission) PrimaryFile() (SubmissionFile, bool) {
	if len(s.Files) == 0 {
		return SubmissionFile{}, false
	}
	return s.Files[0], true
}
