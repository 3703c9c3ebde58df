package executions

import (
	"fmt"
	"strings"

	"gitlab.com/gradelab-2025.net/internal/domain"
	"gitlab.com/gradelab-2025.net/internal/handlers/response"
)

// FilePayload is one submitted source file
type FilePayload struct {
	Name    string `json:"name,omitempty"`
	Content string `json:"content"`
}

// TestCasePayload is one input/expected-output pair. Input must be a JSON
// array literal (the argument list), output a JSON literal.
type TestCasePayload struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// ExecuteTestCasesRequest represents a request to grade a submission
// against test cases
type ExecuteTestCasesRequest struct {
	Language           string            `json:"language"`
	Version            string            `json:"version"`
	Files              []FilePayload     `json:"files"`
	TestCase           []TestCasePayload `json:"testCase"`
	Stdin              string            `json:"stdin,omitempty"`
	Args               []string          `json:"args,omitempty"`
	RunTimeout         int               `json:"run_timeout,omitempty"`
	CompileTimeout     int               `json:"compile_timeout,omitempty"`
	RunMemoryLimit     int64             `json:"run_memory_limit,omitempty"`
	CompileMemoryLimit int64             `json:"compile_memory_limit,omitempty"`
}

// Validate checks the request schema and reports every violation
func (r *ExecuteTestCasesRequest) Validate() []response.FieldError {
	fieldErrors := validateExecution(r.Language, r.Version, r.Files)
	if len(r.TestCase) == 0 {
		fieldErrors = append(fieldErrors, response.FieldError{
			Field:   "testCase",
			Message: "at least one test case is required",
		})
	}
	for i, tc := range r.TestCase {
		if strings.TrimSpace(tc.Input) == "" {
			fieldErrors = append(fieldErrors, response.FieldError{
				Field:   fmt.Sprintf("testCase[%d].input", i),
				Message: "input must not be empty",
			})
		}
		if strings.TrimSpace(tc.Output) == "" {
			fieldErrors = append(fieldErrors, response.FieldError{
				Field:   fmt.Sprintf("testCase[%d].output", i),
				Message: "output must not be empty",
			})
		}
	}
	return fieldErrors
}

// ToSubmission converts the request into a domain submission
func (r *ExecuteTestCasesRequest) ToSubmission() *domain.Submission {
	testCases := make([]domain.TestCase, 0, len(r.TestCase))
	for _, tc := range r.TestCase {
		testCases = append(testCases, domain.TestCase{Input: tc.Input, Output: tc.Output})
	}
	submission := domain.NewSubmission(r.Language, r.Version, toDomainFiles(r.Files), testCases)
	submission.Stdin = r.Stdin
	submission.Args = r.Args
	submission.Limits = domain.ExecutionLimits{
		RunTimeout:         r.RunTimeout,
		CompileTimeout:     r.CompileTimeout,
		RunMemoryLimit:     r.RunMemoryLimit,
		CompileMemoryLimit: r.CompileMemoryLimit,
	}
	return submission
}

// ExecuteRequest represents a raw pass-through execution request
type ExecuteRequest struct {
	Language           string        `json:"language"`
	Version            string        `json:"version"`
	Files              []FilePayload `json:"files"`
	Stdin              string        `json:"stdin,omitempty"`
	Args               []string      `json:"args,omitempty"`
	RunTimeout         int           `json:"run_timeout,omitempty"`
	CompileTimeout     int           `json:"compile_timeout,omitempty"`
	RunMemoryLimit     int64         `json:"run_memory_limit,omitempty"`
	CompileMemoryLimit int64         `json:"compile_memory_limit,omitempty"`
}

// Validate checks the request schema and reports every violation
func (r *ExecuteRequest) Validate() []response.FieldError {
	return validateExecution(r.Language, r.Version, r.Files)
}

// ToSubmission converts the request into a domain submission
func (r *ExecuteRequest) ToSubmission() *domain.Submission {
	submission := domain.NewSubmission(r.Language, r.Version, toDomainFiles(r.Files), nil)
	submission.Stdin = r.Stdin
	submission.Args = r.Args
	submission.Limits = domain.ExecutionLimits{
		RunTimeout:         r.RunTimeout,
		CompileTimeout:     r.CompileTimeout,
		RunMemoryLimit:     r.RunMemoryLimit,
		CompileMemoryLimit: r.CompileMemoryLimit,
	}
	return submission
}

func validateExecution(language, version string, files []FilePayload) []response.FieldError {
	var fieldErrors []response.FieldError
	if strings.TrimSpace(language) == "" {
		fieldErrors = append(fieldErrors, response.FieldError{Field: "language", Message: "language is required"})
	}
	if strings.TrimSpace(version) == "" {
		fieldErrors = append(fieldErrors, response.FieldError{Field: "version", Message: "version is required"})
	}
	if len(files) == 0 {
		fieldErrors = append(fieldErrors, response.FieldError{Field: "files", Message: "at least one file is required"})
	} else if strings.TrimSpace(files[0].Content) == "" {
		fieldErrors = append(fieldErrors, response.FieldError{Field: "files[0].content", Message: "content must not be empty"})
	}
	return fieldErrors
}

func toDomainFiles(files []FilePayload) []domain.SubmissionFile {
	domainFiles := make([]domain.SubmissionFile, 0, len(files))
	for _, f := range files {
		domainFiles = append(domainFiles, domain.SubmissionFile{Name: f.Name, Content: f.Content})
	}
	return domainFiles
}
