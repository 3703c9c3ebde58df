package grading

import (
	"encoding/json"
	"fmt"
	"strings"

	"gitlab.com/gradelab-2025.net/internal/domain"
	"gitlab.com/gradelab-2025.net/internal/static/errs"
)

// Reconcile splits the captured stdout into per-test-case verdicts. Line i
// of the blank-line-filtered output belongs to test case i; a missing line
// (the program crashed before emitting it) fails that case with a nil
// actual value. An output line that is not valid JSON degrades to raw text
// rather than aborting the run.
func Reconcile(stdout string, testCases []domain.TestCase) (*domain.GradingResult, error) {
	lines := outputLines(stdout)

	result := &domain.GradingResult{
		Passed:    true,
		TestCases: make([]domain.TestCaseResult, 0, len(testCases)),
	}
	for i, tc := range testCases {
		var expected interface{}
		if err := json.Unmarshal([]byte(tc.Output), &expected); err != nil {
			return nil, fmt.Errorf("%w: test case %d: %v", errs.MalformedExpectedValue, i, err)
		}

		caseResult := domain.TestCaseResult{
			Input:    flattenInput(tc.Input),
			Expected: expected,
		}
		if i < len(lines) {
			caseResult.Actual = parseActual(lines[i])
			caseResult.Passed = strictEqual(caseResult.Actual, expected)
		}
		if !caseResult.Passed {
			result.Passed = false
		}
		result.TestCases = append(result.TestCases, caseResult)
	}
	return result, nil
}

// outputLines filters blank lines out of the captured stdout
func outputLines(stdout string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(stdout, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// parseActual parses one output line as JSON, falling back to the raw text
func parseActual(line string) interface{} {
	var v interface{}
	if err := json.Unmarshal([]byte(line), &v); err != nil {
		return line
	}
	return v
}

// flattenInput parses the test case input and flattens it one level:
// inputs are argument lists written as an outer array, and the reported
// input is the arguments themselves. Unparseable input is reported raw.
func flattenInput(raw string) interface{} {
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	outer, ok := v.([]interface{})
	if !ok {
		return v
	}
	flat := make([]interface{}, 0, len(outer))
	for _, el := range outer {
		if inner, ok := el.([]interface{}); ok {
			flat = append(flat, inner...)
			continue
		}
		flat = append(flat, el)
	}
	return flat
}
