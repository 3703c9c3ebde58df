package errs

import "errors"

var NoValidFunction = errors.New("no valid function found")

var (
	InternalError          = errors.New("internal error")
	EmptySubmission        = errors.New("submission contains no files")
	SubmissionUnparsable   = errors.New("submission source could not be parsed")
	MalformedExpectedValue = errors.New("expected output is not valid JSON")
	ExecutionUnavailable   = errors.New("execution service unavailable")
	ExecutionRejected      = errors.New("execution service rejected the request")
	GradingNotFound        = errors.New("grading run not found")
	RateLimited            = errors.New("execution rate limit exceeded")
)
