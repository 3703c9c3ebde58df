package grading

import (
	"strings"

	"github.com/dop251/goja/ast"
	"github.com/dop251/goja/parser"
)

// Normalize parses JavaScript source, drops every top-level statement that
// is a console.log call and prints the remaining statements back out.
// Statements nested inside function bodies or blocks are left untouched.
func Normalize(source string) (string, error) {
	program, err := parser.ParseFile(nil, "submission.js", source, 0)
	if err != nil {
		return "", err
	}

	kept := make([]string, 0, len(program.Body))
	for _, stmt := range program.Body {
		if isConsoleLog(stmt) {
			continue
		}
		kept = append(kept, printStatement(source, stmt))
	}
	return strings.Join(kept, "\n\n"), nil
}

// isConsoleLog reports whether the statement is a call on the dotted
// identifier console.log
func isConsoleLog(stmt ast.Statement) bool {
	exprStmt, ok := stmt.(*ast.ExpressionStatement)
	if !ok {
		return false
	}
	call, ok := exprStmt.Expression.(*ast.CallExpression)
	if !ok {
		return false
	}
	dot, ok := call.Callee.(*ast.DotExpression)
	if !ok {
		return false
	}
	object, ok := dot.Left.(*ast.Identifier)
	if !ok {
		return false
	}
	return object.Name == "console" && dot.Identifier.Name == "log"
}

// printStatement serializes one statement from its source range. The parser
// excludes trailing semicolons from statement ranges, so one is restored to
// keep the reprinted program unambiguous.
func printStatement(source string, stmt ast.Statement) string {
	text := strings.TrimSpace(source[int(stmt.Idx0())-1 : int(stmt.Idx1())-1])
	if !strings.HasSuffix(text, ";") && !strings.HasSuffix(text, "}") {
		text += ";"
	}
	return text
}
