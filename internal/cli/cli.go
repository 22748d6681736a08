// Package cli runs a grading suite and publishes its reports.
package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"

	"github.com/autograde-tools/autograde/artifacts"
	autograderr "github.com/autograde-tools/autograde/errors"
	"github.com/autograde-tools/autograde/grading"
	"github.com/autograde-tools/autograde/internal/formatters"
	"github.com/autograde-tools/autograde/internal/log"
)

type CheckConfig struct {
	// JSONPath receives the structured report.
	JSONPath string
	// SummaryPath receives the Markdown summary.
	SummaryPath string
	// JUnitPath receives JUnit XML when set.
	JUnitPath string
	// Out is where the summary is echoed. Defaults to os.Stdout.
	Out io.Writer
}

// RunAutograde executes the tests, then writes the JSON report, the Markdown
// summary and, if requested, the JUnit XML through rw. Every report is
// written once, after all tests have run.
func RunAutograde(
	ctx context.Context,
	runTests func(context.Context) (grading.Results, error),
	cfg CheckConfig,
	rw artifacts.ArtifactWriter,
) (grading.Results, error) {
	if rw == nil {
		return grading.Results{}, autograderr.ErrNoArtifactWriter
	}
	logger := logr.FromContextOrDiscard(ctx)

	// Execute tests.
	results, err := runTests(ctx)
	if err != nil {
		return results, err
	}

	if err := writeReport(ctx, "json", cfg.JSONPath, results, rw, nil); err != nil {
		return results, err
	}

	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	if err := writeReport(ctx, "markdown", cfg.SummaryPath, results, rw, out); err != nil {
		return results, err
	}

	// Optionally write the JUnit results alongside the regular results.
	if cfg.JUnitPath != "" {
		if err := writeReport(ctx, "junitxml", cfg.JUnitPath, results, rw, nil); err != nil {
			return results, err
		}
	}

	logger.Info(fmt.Sprintf("Autograde result: %s", convertPassedOverall(results.PassedOverall())),
		"score", fmt.Sprintf("%d/%d", results.Score(), results.MaxScore()))

	return results, nil
}

// writeReport formats results with the named formatter and writes them to
// path. When echo is not nil the formatted report is copied there too.
func writeReport(ctx context.Context, format, path string, results grading.Results, rw artifacts.ArtifactWriter, echo io.Writer) error {
	formatter, err := formatters.NewByName(format)
	if err != nil {
		return err
	}

	formatted, err := formatter.Format(ctx, results)
	if err != nil {
		return err
	}

	fullPath, err := rw.WriteFile(reportPath(path, formatter), bytes.NewReader(formatted))
	if err != nil {
		return err
	}
	logr.FromContextOrDiscard(ctx).V(log.TRC).Info("report written", "format", format, "path", fullPath)

	if echo != nil {
		if _, err := echo.Write(formatted); err != nil {
			return fmt.Errorf("could not echo %s report: %w", formatter.PrettyName(), err)
		}
	}
	return nil
}

// reportPath appends the formatter's file extension when path has none.
func reportPath(path string, formatter formatters.ResponseFormatter) string {
	if filepath.Ext(path) != "" {
		return path
	}
	return path + "." + formatter.FileExtension()
}

func convertPassedOverall(passedOverall bool) string {
	if passedOverall {
		return "PASSED"
	}

	return "FAILED"
}
