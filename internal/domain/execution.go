package domain

// ExecutionLimits carries the optional resource limits forwarded to the
// execution service. Zero values mean "use the service default".
type ExecutionLimits struct {
	RunTimeout         int
	CompileTimeout     int
	RunMemoryLimit     int64
	CompileMemoryLimit int64
}

// ExecutionRequest is the composite payload sent to the execution service
type ExecutionRequest struct {
	Language string
	Version  string
	Files    []SubmissionFile
	Stdin    string
	Args     []string
	Limits   ExecutionLimits
}

// ProcessResult captures one process stage (compile or run) of an execution
type ProcessResult struct {
	Stdout string
	Stderr string
	Output string
	Code   int
	Signal string
}

// ExecutionOutcome is what the execution service reports for one request.
// Compile is nil for interpreted languages.
type ExecutionOutcome struct {
	Language string
	Version  string
	Run      ProcessResult
	Compile  *ProcessResult
}

// Runtime is one language/version pair the execution service can run
type Runtime struct {
	Language string   `json:"language"`
	Version  string   `json:"version"`
	Aliases  []string `json:"aliases,omitempty"`
}
