// Package engine runs a suite's test cases against the target program, one
// after another, and records a result for each.
package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/autograde-tools/autograde/artifacts"
	autograderr "github.com/autograde-tools/autograde/errors"
	"github.com/autograde-tools/autograde/grading"
	"github.com/autograde-tools/autograde/internal/log"
	"github.com/autograde-tools/autograde/internal/suite"
)

const (
	// MessagePassed is recorded for a test whose output matched.
	MessagePassed = "Output matches expected output"
	// MessageMismatch is recorded when the program exited cleanly but printed
	// something else.
	MessageMismatch = "Output does not match expected output"

	// waitDelay bounds how long Wait keeps draining output after the process
	// was killed, in case a grandchild still holds the pipes open.
	waitDelay = 500 * time.Millisecond
)

// Define a type that is the signature of the exec.CommandContext function.
// This allows us to override that function with our own for
// testing purposes.
type execContext = func(ctx context.Context, name string, arg ...string) *exec.Cmd

// Option configures a Runner.
type Option func(*Runner)

// WithFs sets the filesystem the entry point is looked up on.
func WithFs(fs afero.Fs) Option {
	return func(r *Runner) {
		r.fs = fs
	}
}

// WithCommandContext replaces exec.CommandContext.
func WithCommandContext(fn execContext) Option {
	return func(r *Runner) {
		r.cmdContext = fn
	}
}

// WithWorkDir runs every test from dir and resolves the entry point against it.
func WithWorkDir(dir string) Option {
	return func(r *Runner) {
		r.workDir = dir
	}
}

// Runner executes a suite.Suite and holds the resulting grading.Results.
type Runner struct {
	suite      suite.Suite
	fs         afero.Fs
	cmdContext execContext
	workDir    string

	executed bool
	results  grading.Results
}

// New creates a Runner for s.
func New(s suite.Suite, opts ...Option) *Runner {
	r := &Runner{
		suite:      s,
		fs:         afero.NewOsFs(),
		cmdContext: exec.CommandContext,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Results returns what ExecuteTests recorded.
func (r *Runner) Results() grading.Results {
	return r.results
}

// ExecuteTests records the entry point check, then runs every test case once,
// in order. A test that fails, errors or times out never stops the ones after
// it. The only short-circuit is a missing entry point, which is recorded as a
// single failed result.
func (r *Runner) ExecuteTests(ctx context.Context) error {
	if r.executed {
		return autograderr.ErrAlreadyExecuted
	}
	r.executed = true

	if err := r.suite.Validate(); err != nil {
		return fmt.Errorf("%w: %w", autograderr.ErrInvalidSuite, err)
	}

	logger := logr.FromContextOrDiscard(ctx)
	runID := uuid.NewString()
	logger = logger.WithValues("run", runID)
	ctx = logr.NewContext(ctx, logger)

	results := grading.Results{RunID: runID}

	present, err := r.entrypointPresent()
	if err != nil {
		return fmt.Errorf("could not check for entry point %s: %w", r.suite.Entrypoint, err)
	}
	if !present {
		logger.Info("entry point not found, skipping all tests", "entrypoint", r.suite.Entrypoint)
		results.Tests = []grading.TestResult{missingEntrypointResult(r.suite.Entrypoint)}
		r.results = results
		return nil
	}

	logger.V(log.DBG).Info("executing tests", "count", len(r.suite.Tests))
	results.Tests = make([]grading.TestResult, 0, len(r.suite.Tests)+1)
	results.Tests = append(results.Tests, foundEntrypointResult(r.suite.Entrypoint))
	for i, tc := range r.suite.Tests {
		result := r.runTest(ctx, tc)
		if err := writeOutputArtifacts(ctx, i, result); err != nil {
			return err
		}
		results.Tests = append(results.Tests, result)
	}

	r.results = results
	return nil
}

func (r *Runner) entrypointPresent() (bool, error) {
	p := r.suite.Entrypoint
	if r.workDir != "" && !filepath.IsAbs(p) {
		p = filepath.Join(r.workDir, p)
	}
	return afero.Exists(r.fs, p)
}

// EntrypointCheckName names the result recording whether entrypoint exists.
func EntrypointCheckName(entrypoint string) string {
	return entrypoint + " exists"
}

func entrypointCheck(entrypoint string) grading.TestCase {
	return grading.TestCase{Name: EntrypointCheckName(entrypoint), Points: suite.EntrypointPoints}
}

func foundEntrypointResult(entrypoint string) grading.TestResult {
	msg := fmt.Sprintf("Found %s in the working directory.", entrypoint)
	return grading.PassResult(entrypointCheck(entrypoint), msg, grading.Outcome{})
}

func missingEntrypointResult(entrypoint string) grading.TestResult {
	msg := fmt.Sprintf("%s not found in the working directory; no tests were run", entrypoint)
	return grading.FailResult(entrypointCheck(entrypoint), msg, grading.Outcome{})
}

// runTest spawns tc's command, waits for it or its deadline, and classifies
// the outcome. The process is always reaped before runTest returns.
func (r *Runner) runTest(ctx context.Context, tc grading.TestCase) grading.TestResult {
	logger := logr.FromContextOrDiscard(ctx).WithValues("test", tc.Name)

	timeout := tc.EffectiveTimeout()
	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := r.cmdContext(tctx, tc.Command[0], tc.Command[1:]...)
	cmd.Dir = r.workDir
	cmd.WaitDelay = waitDelay
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.V(log.DBG).Info("running test command", "command", cmd.Args, "timeout", timeout)
	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	var result grading.TestResult
	var exitErr *exec.ExitError
	switch {
	case err != nil && errors.Is(tctx.Err(), context.DeadlineExceeded):
		msg := fmt.Sprintf("Timed out after %s running: %s", timeout, tc.CommandLine())
		result = grading.FailResult(tc, msg, grading.Outcome{ElapsedTime: elapsed})
	case err != nil && !errors.As(err, &exitErr):
		msg := fmt.Sprintf("Failed to start command: %v", err)
		result = grading.FailResult(tc, msg, grading.Outcome{Stderr: stderr.String(), ElapsedTime: elapsed})
	default:
		code, sig := exitStatus(cmd.ProcessState)
		result = judge(tc, stdout.String(), stderr.String(), code, sig, elapsed)
	}

	status := "PASSED"
	if !result.Passed {
		status = "FAILED"
	}
	logger.WithValues("result", status).Info("test completed",
		"points", fmt.Sprintf("%d/%d", result.Points, result.MaxPoints),
		"elapsed", elapsed.Round(time.Millisecond).String())
	if !result.Passed {
		logger.V(log.DBG).Info("test failure detail", "message", result.Message)
	}

	return result
}

// exitStatus returns the exit code of a finished process. A process killed by
// a signal reports the negated signal number, along with the signal.
func exitStatus(ps *os.ProcessState) (int, syscall.Signal) {
	if ws, ok := ps.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return -int(ws.Signal()), ws.Signal()
	}
	return ps.ExitCode(), 0
}

// judge decides a completed run. A non-zero exit code is reported ahead of
// any output difference.
func judge(tc grading.TestCase, stdout, stderr string, code int, sig syscall.Signal, elapsed time.Duration) grading.TestResult {
	outcome := grading.Outcome{
		Stdout:      stdout,
		Stderr:      stderr,
		ReturnCode:  grading.ExitCode(code),
		ElapsedTime: elapsed,
	}

	if sig != 0 {
		msg := fmt.Sprintf("Program exited with code %d (killed by signal: %s)", code, sig)
		return grading.FailResult(tc, msg, outcome)
	}
	if code != 0 {
		return grading.FailResult(tc, fmt.Sprintf("Program exited with code %d", code), outcome)
	}
	if !grading.OutputsMatch(stdout, tc.Expected) {
		return grading.FailResult(tc, MessageMismatch, outcome)
	}
	return grading.PassResult(tc, MessagePassed, outcome)
}

// writeOutputArtifacts saves what a test printed when an ArtifactWriter is
// configured in ctx.
func writeOutputArtifacts(ctx context.Context, index int, result grading.TestResult) error {
	aw := artifacts.WriterFromContext(ctx)
	if aw == nil {
		return nil
	}

	base := fmt.Sprintf("%02d-%s", index+1, slug(result.Name))
	for suffix, contents := range map[string]string{
		".stdout.txt": result.Stdout,
		".stderr.txt": result.Stderr,
	} {
		if _, err := aw.WriteFile(base+suffix, strings.NewReader(contents)); err != nil {
			return fmt.Errorf("could not write output of %q: %w", result.Name, err)
		}
	}
	return nil
}

// slug lowercases name and collapses every run of other characters than
// letters and digits into a single hyphen.
func slug(name string) string {
	var b strings.Builder
	hyphen := false
	for _, c := range strings.ToLower(name) {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteRune(c)
			hyphen = false
			continue
		}
		if !hyphen && b.Len() > 0 {
			b.WriteByte('-')
			hyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
