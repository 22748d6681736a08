package formatters

import (
	"context"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/autograde-tools/autograde/grading"
)

const (
	glyphPass = "✅"
	glyphFail = "❌"

	// ComparisonNote closes the summary whenever a test failed.
	ComparisonNote = "> [!NOTE]\n" +
		"> Output is compared exactly (case + punctuation). A missing final newline is tolerated."
)

// markdownFormatter is a FormatterFunc that renders the human-readable summary,
// suitable for a CI job summary.
func markdownFormatter(ctx context.Context, r grading.Results) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Autograding Report\n\n")
	if r.PassedOverall() {
		fmt.Fprintf(&b, "**Result:** %s PASS\n", glyphPass)
	} else {
		fmt.Fprintf(&b, "**Result:** %s FAIL\n", glyphFail)
	}
	fmt.Fprintf(&b, "**Score:** %d/%d\n\n", r.Score(), r.MaxScore())

	b.WriteString("## Tests\n\n")
	b.WriteString(resultsTable(r))

	failed := r.Failed()
	if len(failed) == 0 {
		return []byte(b.String()), nil
	}

	b.WriteString("\n## Failure Details\n")
	for _, t := range failed {
		fmt.Fprintf(&b, "\n### %s\n", t.Name)
		if t.Message != "" {
			fmt.Fprintf(&b, "\n**Reason:** %s\n", t.Message)
		}
		if t.ReturnCode != nil {
			fmt.Fprintf(&b, "**Return code:** %d\n", *t.ReturnCode)
		}
		if t.Stderr != "" {
			b.WriteString("\n**stderr:**\n")
			b.WriteString(fenced(t.Stderr))
		}
		if t.Stdout != "" {
			b.WriteString("\n**stdout:**\n")
			b.WriteString(fenced(t.Stdout))
		}
	}
	b.WriteString("\n" + ComparisonNote + "\n")

	return []byte(b.String()), nil
}

// resultsTable renders one row per test as a Markdown table, points
// right-aligned and status centered.
func resultsTable(r grading.Results) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleDefault)
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(table.Row{"Test", "Points", "Status"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignCenter},
	})
	for _, res := range r.Tests {
		status := glyphFail
		if res.Passed {
			status = glyphPass
		}
		t.AppendRow(table.Row{res.Name, fmt.Sprintf("%d/%d", res.Points, res.MaxPoints), status})
	}
	return t.RenderMarkdown() + "\n"
}

// fenced wraps body in a code fence long enough not to collide with any
// backtick run inside it.
func fenced(body string) string {
	fence := "```"
	for strings.Contains(body, fence) {
		fence += "`"
	}
	if body != "" && !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	return fence + "\n" + body + fence + "\n"
}
