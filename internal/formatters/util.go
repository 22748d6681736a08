package formatters

import (
	"github.com/autograde-tools/autograde/grading"
)

// getResponse flattens grading.Results into the structured report shape.
func getResponse(r grading.Results) UserResponse {
	tests := make([]testExecutionInfo, 0, len(r.Tests))
	for _, t := range r.Tests {
		tests = append(tests, testExecutionInfo{
			Name:       t.Name,
			Passed:     t.Passed,
			Points:     t.Points,
			MaxPoints:  t.MaxPoints,
			Message:    t.Message,
			Stdout:     t.Stdout,
			Stderr:     t.Stderr,
			ReturnCode: t.ReturnCode,
		})
	}

	return UserResponse{
		Passed:   r.PassedOverall(),
		Score:    r.Score(),
		MaxScore: r.MaxScore(),
		Tests:    tests,
	}
}

// UserResponse is the structured report written to the JSON results file.
type UserResponse struct {
	Passed   bool                `json:"passed"`
	Score    int                 `json:"score"`
	MaxScore int                 `json:"max_score"`
	Tests    []testExecutionInfo `json:"tests"`
}

// testExecutionInfo is one entry of UserResponse.Tests. ReturnCode is
// serialized as null when the process never completed.
type testExecutionInfo struct {
	Name       string `json:"name"`
	Passed     bool   `json:"passed"`
	Points     int    `json:"points"`
	MaxPoints  int    `json:"max_points"`
	Message    string `json:"message"`
	Stdout     string `json:"stdout"`
	Stderr     string `json:"stderr"`
	ReturnCode *int   `json:"returncode"`
}
