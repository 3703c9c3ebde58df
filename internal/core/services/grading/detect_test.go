package grading_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/gradelab-2025.net/internal/core/services/grading"
)

func TestDetectEntryPoint(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "function declaration",
			source: "function sum(a,b){return a+b}",
			want:   "sum",
		},
		{
			name:   "const arrow function",
			source: "const sum = (a,b) => a+b",
			want:   "sum",
		},
		{
			name:   "var function expression",
			source: "var sum = function(a,b){return a+b}",
			want:   "sum",
		},
		{
			name:   "let arrow function",
			source: "let twice = x => x*2",
			want:   "twice",
		},
		{
			name:   "first statement is a block",
			source: "if (true) { }\nfunction sum(a,b){return a+b}",
			want:   "",
		},
		{
			name:   "empty program",
			source: "",
			want:   "",
		},
		{
			name:   "variable bound to a non-function",
			source: "const x = 3",
			want:   "",
		},
		{
			name:   "multi-declarator statement",
			source: "const a = () => 1, b = () => 2",
			want:   "",
		},
		{
			name:   "destructuring target",
			source: "const [f] = [() => 1]",
			want:   "",
		},
		{
			name:   "anonymous function expression",
			source: "(function(a,b){return a+b})",
			want:   "",
		},
		{
			name:   "unparsable source",
			source: "function (broken {",
			want:   "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, grading.DetectEntryPoint(tt.source))
		})
	}
}
