package piston

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"gitlab.com/gradelab-2025.net/internal/config"
	"gitlab.com/gradelab-2025.net/internal/core/ports/primary"
	"gitlab.com/gradelab-2025.net/internal/domain"
	"gitlab.com/gradelab-2025.net/internal/static/errs"
)

// Client implements the CodeExecutor interface against a Piston-compatible
// execution service. Transport failures surface as ExecutionUnavailable (a
// caller may retry); a non-2xx response surfaces as ExecutionRejected with
// the service's message attached. In-band compile and runtime errors are
// part of the outcome, not errors.
type Client struct {
	baseURL    string
	httpClient *http.Client
	defaults   *config.ExecutorConfig
	logger     primary.Logger
}

// NewClient creates a new execution service client
func NewClient(cfg *config.ExecutorConfig, logger primary.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		defaults:   cfg,
		logger:     logger,
	}
}

// Execute submits a composite program for sandboxed execution
func (c *Client) Execute(ctx context.Context, req *domain.ExecutionRequest) (*domain.ExecutionOutcome, error) {
	payload := executeRequest{
		Language:           req.Language,
		Version:            req.Version,
		Stdin:              req.Stdin,
		Args:               req.Args,
		RunTimeout:         req.Limits.RunTimeout,
		CompileTimeout:     req.Limits.CompileTimeout,
		RunMemoryLimit:     req.Limits.RunMemoryLimit,
		CompileMemoryLimit: req.Limits.CompileMemoryLimit,
	}
	if payload.RunTimeout == 0 {
		payload.RunTimeout = c.defaults.RunTimeout
	}
	if payload.CompileTimeout == 0 {
		payload.CompileTimeout = c.defaults.CompileTimeout
	}
	for _, f := range req.Files {
		payload.Files = append(payload.Files, fileEntry{Name: f.Name, Content: f.Content})
	}

	var resp executeResponse
	if err := c.post(ctx, "/api/v2/execute", payload, &resp); err != nil {
		return nil, err
	}

	outcome := &domain.ExecutionOutcome{
		Language: resp.Language,
		Version:  resp.Version,
		Run: domain.ProcessResult{
			Stdout: resp.Run.Stdout,
			Stderr: resp.Run.Stderr,
			Output: resp.Run.Output,
			Code:   resp.Run.Code,
			Signal: resp.Run.Signal,
		},
	}
	if resp.Compile != nil {
		outcome.Compile = &domain.ProcessResult{
			Stdout: resp.Compile.Stdout,
			Stderr: resp.Compile.Stderr,
			Output: resp.Compile.Output,
			Code:   resp.Compile.Code,
			Signal: resp.Compile.Signal,
		}
	}
	return outcome, nil
}

// Runtimes lists the installed language runtimes
func (c *Client) Runtimes(ctx context.Context) ([]domain.Runtime, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v2/runtimes", nil)
	if err != nil {
		return nil, err
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ExecutionUnavailable, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", errs.ExecutionRejected, httpResp.StatusCode)
	}

	var entries []runtimeEntry
	if err := json.NewDecoder(httpResp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode runtimes response: %w", err)
	}

	runtimes := make([]domain.Runtime, 0, len(entries))
	for _, e := range entries {
		runtimes = append(runtimes, domain.Runtime{
			Language: e.Language,
			Version:  e.Version,
			Aliases:  e.Aliases,
		})
	}
	return runtimes, nil
}

func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal execution request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ExecutionUnavailable, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(httpResp.Body, 4096))
		c.logger.Error("Execution service rejected request",
			"status", httpResp.StatusCode,
			"body", string(detail))
		return fmt.Errorf("%w: status %d: %s", errs.ExecutionRejected, httpResp.StatusCode, serviceMessage(detail))
	}

	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode execution response: %w", err)
	}
	return nil
}

// serviceMessage pulls the message field out of an error body, falling back
// to the raw text
func serviceMessage(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return strings.TrimSpace(string(body))
}
