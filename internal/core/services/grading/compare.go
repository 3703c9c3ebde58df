package grading

// strictEqual compares a reconciled actual value against the expected value
// the way the grader always has: primitive values by value, composite values
// never. Two structurally identical arrays or objects therefore do not
// match. Deep comparison would go here if that behavior is ever changed.
func strictEqual(actual, expected interface{}) bool {
	if isComposite(actual) || isComposite(expected) {
		return false
	}
	return actual == expected
}

func isComposite(v interface{}) bool {
	switch v.(type) {
	case []interface{}, map[string]interface{}:
		return true
	}
	return false
}
