// Package suite defines which tests a grading run executes and against which
// entry point.
package suite

import (
	"strings"

	"github.com/autograde-tools/autograde/grading"
)

const (
	// DefaultEntrypoint is the file the built-in suite expects in the working
	// directory.
	DefaultEntrypoint = "main.py"
	// DefaultInterpreter runs DefaultEntrypoint unless another one is given.
	DefaultInterpreter = "python3"

	// EntrypointPoints is what the entry point check is worth. It is awarded
	// in full when the entry point exists and is part of every run's score.
	EntrypointPoints = 10
)

// Suite is an ordered list of test cases plus the file that must exist before
// any of them is run.
type Suite struct {
	Entrypoint string
	Tests      []grading.TestCase
}

// Default returns the built-in hello-world suite run with DefaultInterpreter.
func Default() Suite {
	return ForInterpreter(DefaultInterpreter)
}

// ForInterpreter returns the built-in hello-world suite run with python.
func ForInterpreter(python string) Suite {
	if python == "" {
		python = DefaultInterpreter
	}
	interpreter := []string{python, DefaultEntrypoint}
	return Suite{
		Entrypoint: DefaultEntrypoint,
		Tests: []grading.TestCase{
			{
				Name:     "Default output: python main.py",
				Command:  interpreter,
				Expected: repeatLine("Hello, World!", 1),
				Points:   10,
			},
			{
				Name:     "Uppercase flag: python main.py --uppercase",
				Command:  withArgs(interpreter, "--uppercase"),
				Expected: repeatLine("HELLO, WORLD!", 1),
				Points:   10,
			},
			{
				Name:     "Uppercase + times: python main.py --uppercase --times 3",
				Command:  withArgs(interpreter, "--uppercase", "--times", "3"),
				Expected: repeatLine("HELLO, WORLD!", 3),
				Points:   10,
			},
			{
				Name:     "Times only: python main.py --times 2",
				Command:  withArgs(interpreter, "--times", "2"),
				Expected: repeatLine("Hello, World!", 2),
				Points:   5,
			},
		},
	}
}

// TotalPoints is the maximum score a run of s can reach, entry point check
// included.
func (s Suite) TotalPoints() int {
	total := EntrypointPoints
	for _, tc := range s.Tests {
		total += tc.Points
	}
	return total
}

func repeatLine(line string, times int) string {
	return strings.Repeat(line+"\n", times)
}

func withArgs(base []string, args ...string) []string {
	cmd := make([]string, 0, len(base)+len(args))
	cmd = append(cmd, base...)
	return append(cmd, args...)
}
