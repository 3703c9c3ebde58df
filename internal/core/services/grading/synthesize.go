package grading

import (
	"fmt"
	"strings"

	"gitlab.com/gradelab-2025.net/internal/domain"
)

// Synthesize appends one harness statement per test case to the cleaned
// source. Each statement prints the entry point applied to the test case's
// input expression, spread as the argument list. Statement i corresponds to
// test case i; since Normalize stripped every pre-existing console.log, the
// program's output lines map 1:1 onto test cases.
func Synthesize(source, entryPoint string, testCases []domain.TestCase) string {
	var b strings.Builder
	b.WriteString(source)
	b.WriteString("\n\n")
	for i, tc := range testCases {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "console.log(%s(...%s));", entryPoint, tc.Input)
	}
	return b.String()
}
