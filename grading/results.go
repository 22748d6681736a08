package grading

import "time"

// TestResult is the outcome of a single TestCase. Points is always either 0 or
// MaxPoints; use PassResult and FailResult to build one.
type TestResult struct {
	Name      string
	Passed    bool
	Points    int
	MaxPoints int
	Message   string
	Stdout    string
	Stderr    string
	// ReturnCode is nil when the process never ran to completion.
	ReturnCode  *int
	ElapsedTime time.Duration
}

// Outcome carries what was observed while running a TestCase.
type Outcome struct {
	Stdout      string
	Stderr      string
	ReturnCode  *int
	ElapsedTime time.Duration
}

// PassResult records full credit for tc.
func PassResult(tc TestCase, message string, o Outcome) TestResult {
	return newResult(tc, true, message, o)
}

// FailResult records zero credit for tc.
func FailResult(tc TestCase, message string, o Outcome) TestResult {
	return newResult(tc, false, message, o)
}

func newResult(tc TestCase, passed bool, message string, o Outcome) TestResult {
	points := 0
	if passed {
		points = tc.Points
	}
	return TestResult{
		Name:        tc.Name,
		Passed:      passed,
		Points:      points,
		MaxPoints:   tc.Points,
		Message:     message,
		Stdout:      o.Stdout,
		Stderr:      o.Stderr,
		ReturnCode:  o.ReturnCode,
		ElapsedTime: o.ElapsedTime,
	}
}

// ExitCode returns a pointer to code, for populating Outcome.ReturnCode.
func ExitCode(code int) *int {
	return &code
}

// Results is the ordered list of test results from one grading run.
type Results struct {
	RunID string
	Tests []TestResult
}

// Score is the sum of points awarded.
func (r Results) Score() int {
	score := 0
	for _, t := range r.Tests {
		score += t.Points
	}
	return score
}

// MaxScore is the sum of points available.
func (r Results) MaxScore() int {
	total := 0
	for _, t := range r.Tests {
		total += t.MaxPoints
	}
	return total
}

// PassedOverall is true when every scored test passed. Tests worth zero points
// are informational and never fail the run.
func (r Results) PassedOverall() bool {
	for _, t := range r.Tests {
		if t.MaxPoints > 0 && !t.Passed {
			return false
		}
	}
	return true
}

// Failed returns the results that did not pass, in order.
func (r Results) Failed() []TestResult {
	failed := make([]TestResult, 0, len(r.Tests))
	for _, t := range r.Tests {
		if !t.Passed {
			failed = append(failed, t)
		}
	}
	return failed
}
