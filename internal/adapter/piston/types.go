package piston

// Wire types for the Piston execute API (api/v2)

type fileEntry struct {
	Name    string `json:"name,omitempty"`
	Content string `json:"content"`
}

type executeRequest struct {
	Language           string      `json:"language"`
	Version            string      `json:"version"`
	Files              []fileEntry `json:"files"`
	Stdin              string      `json:"stdin,omitempty"`
	Args               []string    `json:"args,omitempty"`
	RunTimeout         int         `json:"run_timeout,omitempty"`
	CompileTimeout     int         `json:"compile_timeout,omitempty"`
	RunMemoryLimit     int64       `json:"run_memory_limit,omitempty"`
	CompileMemoryLimit int64       `json:"compile_memory_limit,omitempty"`
}

type stageResult struct {
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
	Output string `json:"output"`
	Code   int    `json:"code"`
	Signal string `json:"signal"`
}

type executeResponse struct {
	Language string       `json:"language"`
	Version  string       `json:"version"`
	Run      stageResult  `json:"run"`
	Compile  *stageResult `json:"compile,omitempty"`
	Message  string       `json:"message,omitempty"`
}

type runtimeEntry struct {
	Language string   `json:"language"`
	Version  string   `json:"version"`
	Aliases  []string `json:"aliases"`
}
