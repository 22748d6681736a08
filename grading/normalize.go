package grading

import "strings"

// NormalizeOutput unifies line endings to "\n" and makes sure s ends with
// exactly the trailing newline it would have had if the program printed one.
func NormalizeOutput(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return s
}

// OutputsMatch reports whether actual and expected are equal after
// normalization. The comparison is otherwise byte-exact.
func OutputsMatch(actual, expected string) bool {
	return NormalizeOutput(actual) == NormalizeOutput(expected)
}
