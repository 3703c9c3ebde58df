package domain

// TestCase is one author-supplied input/expected-output pair. Input is the
// argument list as a JSON array literal, Output the expected return value as
// a JSON literal. Both stay raw text until reconciliation.
type TestCase struct {
	Input  string
	Output string
}
