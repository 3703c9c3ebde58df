package executions

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/gradelab-2025.net/internal/core/ports/primary"
	"gitlab.com/gradelab-2025.net/internal/core/services/grading"
	"gitlab.com/gradelab-2025.net/internal/domain"
	"gitlab.com/gradelab-2025.net/internal/handlers"
	"gitlab.com/gradelab-2025.net/internal/handlers/response"
	"gitlab.com/gradelab-2025.net/internal/static/errs"
)

// GradingHandler handles code execution API requests
type GradingHandler struct {
	gradingService grading.IGradingService
	logger         primary.Logger
}

// NewGradingHandler creates a new grading handler
func NewGradingHandler(gradingService grading.IGradingService, logger primary.Logger) *GradingHandler {
	return &GradingHandler{
		gradingService: gradingService,
		logger:         logger,
	}
}

// RegisterRoutes registers the API routes for GradingHandler. The two POST
// routes start sandbox executions and carry the rate limit.
func (h *GradingHandler) RegisterRoutes(router *mux.Router, mw *handlers.MiddlewareProvider) {
	router.Handle("/api/executions/testcases",
		mw.RateLimitMiddleware(http.HandlerFunc(h.ExecuteTestCases))).Methods("POST")
	router.Handle("/api/executions",
		mw.RateLimitMiddleware(http.HandlerFunc(h.Execute))).Methods("POST")
	router.HandleFunc("/api/executions/{executionId}", h.GetExecution).Methods("GET")
	router.HandleFunc("/api/runtimes", h.GetRuntimes).Methods("GET")
}

// GradingResponse is the data payload of a successful grading run
type GradingResponse struct {
	ID         uuid.UUID               `json:"id"`
	EntryPoint string                  `json:"entryPoint"`
	Passed     bool                    `json:"passed"`
	TestCase   []domain.TestCaseResult `json:"testCase"`
}

// ExecuteTestCases handles grading requests: the submission's first file is
// normalized, instrumented and executed, and its output is reconciled
// against the expected values
func (h *GradingHandler) ExecuteTestCases(w http.ResponseWriter, r *http.Request) {
	var req ExecuteTestCasesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		response.WriteError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		response.WriteValidationErrors(w, "Invalid grading request", fieldErrors)
		return
	}

	result, err := h.gradingService.GradeSubmission(r.Context(), req.ToSubmission())
	if err != nil {
		h.writeGradingError(w, err)
		return
	}

	response.WriteSuccess(w, "Test cases executed", GradingResponse{
		ID:         result.ID,
		EntryPoint: result.EntryPoint,
		Passed:     result.Passed,
		TestCase:   result.TestCases,
	})
}

// Execute handles raw pass-through execution requests
func (h *GradingHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var req ExecuteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		response.WriteError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		response.WriteValidationErrors(w, "Invalid execution request", fieldErrors)
		return
	}

	outcome, err := h.gradingService.RunSubmission(r.Context(), req.ToSubmission())
	if err != nil {
		h.logger.Error("Failed to run submission", "error", err)
		response.WriteError(w, http.StatusInternalServerError, "Failed to execute code", err)
		return
	}

	response.WriteSuccess(w, "Code executed", toExecutionResponse(outcome))
}

// GetExecution handles retrieval of a stored grading run
func (h *GradingHandler) GetExecution(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	idStr := vars["executionId"]

	id, err := uuid.Parse(idStr)
	if err != nil {
		h.logger.Error("Invalid execution ID", "id", idStr)
		response.WriteError(w, http.StatusBadRequest, "Invalid execution ID", err)
		return
	}

	result, err := h.gradingService.GetGrading(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to get grading run", "error", err)
		response.WriteError(w, http.StatusInternalServerError, "Failed to get execution", err)
		return
	}
	if result == nil {
		response.WriteError(w, http.StatusNotFound, "Execution not found", nil)
		return
	}

	response.WriteSuccess(w, "Execution retrieved", GradingResponse{
		ID:         result.ID,
		EntryPoint: result.EntryPoint,
		Passed:     result.Passed,
		TestCase:   result.TestCases,
	})
}

// GetRuntimes handles retrieval of the execution service's runtime catalog
func (h *GradingHandler) GetRuntimes(w http.ResponseWriter, r *http.Request) {
	runtimes, err := h.gradingService.ListRuntimes(r.Context())
	if err != nil {
		h.logger.Error("Failed to list runtimes", "error", err)
		response.WriteError(w, http.StatusInternalServerError, "Failed to list runtimes", err)
		return
	}

	response.WriteSuccess(w, "Runtimes retrieved", map[string][]domain.Runtime{"runtimes": runtimes})
}

// writeGradingError maps pipeline failures onto the HTTP error shapes. A
// missing entry point is the caller's submission problem; everything else
// is reported as a server-side failure.
func (h *GradingHandler) writeGradingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.NoValidFunction):
		response.WriteError(w, http.StatusBadRequest, "no valid function found", nil)
	case errors.Is(err, errs.EmptySubmission):
		response.WriteError(w, http.StatusBadRequest, "submission contains no files", nil)
	default:
		h.logger.Error("Failed to grade submission", "error", err)
		response.WriteError(w, http.StatusInternalServerError, "Failed to execute test cases", err)
	}
}

// ExecutionResponse is the data payload of a raw execution
type ExecutionResponse struct {
	Language string          `json:"language"`
	Version  string          `json:"version"`
	Run      ProcessPayload  `json:"run"`
	Compile  *ProcessPayload `json:"compile,omitempty"`
}

// ProcessPayload mirrors one process stage of an execution outcome
type ProcessPayload struct {
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
	Output string `json:"output"`
	Code   int    `json:"code"`
	Signal string `json:"signal,omitempty"`
}

func toExecutionResponse(outcome *domain.ExecutionOutcome) ExecutionResponse {
	resp := ExecutionResponse{
		Language: outcome.Language,
		Version:  outcome.Version,
		Run:      toProcessPayload(outcome.Run),
	}
	if outcome.Compile != nil {
		compile := toProcessPayload(*outcome.Compile)
		resp.Compile = &compile
	}
	return resp
}

func toProcessPayload(p domain.ProcessResult) ProcessPayload {
	return ProcessPayload{
		Stdout: p.Stdout,
		Stderr: p.Stderr,
		Output: p.Output,
		Code:   p.Code,
		Signal: p.Signal,
	}
}

