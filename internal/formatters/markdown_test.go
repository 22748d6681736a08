package formatters

import (
	"context"
	"strings"

	"github.com/autograde-tools/autograde/grading"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Markdown summary", func() {
	render := func(r grading.Results) string {
		out, err := markdownFormatter(context.TODO(), r)
		Expect(err).ToNot(HaveOccurred())
		return string(out)
	}

	Context("when every test passed", func() {
		var out string
		BeforeEach(func() {
			tc := grading.TestCase{Name: "Hello World", Points: 10}
			out = render(grading.Results{Tests: []grading.TestResult{
				grading.PassResult(tc, "ok", grading.Outcome{Stdout: "Hello, World!\n", ReturnCode: grading.ExitCode(0)}),
			}})
		})

		It("should show the passing banner and score", func() {
			Expect(out).To(HavePrefix("# Autograding Report\n\n**Result:** ✅ PASS\n**Score:** 10/10\n\n## Tests\n\n"))
		})

		It("should render the results table", func() {
			Expect(out).To(MatchRegexp(`(?i)\|\s*test\s*\|\s*points\s*\|\s*status\s*\|`))
			Expect(out).To(ContainSubstring("| --- | ---:|:---:|\n"))
			Expect(out).To(MatchRegexp(`\|\s*Hello World\s*\|\s*10/10\s*\|\s*✅\s*\|`))
		})

		It("should leave out the failure details and the note", func() {
			Expect(out).ToNot(ContainSubstring("Failure Details"))
			Expect(out).ToNot(ContainSubstring(ComparisonNote))
		})
	})

	Context("when some tests failed", func() {
		var out string
		BeforeEach(func() {
			out = render(sampleResults())
		})

		It("should show the failing banner and score", func() {
			Expect(out).To(ContainSubstring("**Result:** ❌ FAIL\n"))
			Expect(out).To(ContainSubstring("**Score:** 10/25\n"))
		})

		It("should list every test in the table", func() {
			Expect(out).To(MatchRegexp(`\|\s*hello\s*\|\s*10/10\s*\|\s*✅\s*\|`))
			Expect(out).To(MatchRegexp(`\|\s*upper\s*\|\s*0/10\s*\|\s*❌\s*\|`))
			Expect(out).To(MatchRegexp(`\|\s*hang\s*\|\s*0/5\s*\|\s*❌\s*\|`))
		})

		It("should detail only the failing tests", func() {
			details := out[strings.Index(out, "## Failure Details"):]
			Expect(details).ToNot(ContainSubstring("### hello"))
			Expect(details).To(ContainSubstring("### upper"))
			Expect(details).To(ContainSubstring("### hang"))
		})

		It("should include reason, return code and verbatim output", func() {
			Expect(out).To(ContainSubstring("**Reason:** Program exited with code 2\n**Return code:** 2\n"))
			Expect(out).To(ContainSubstring("**stderr:**\n```\nTraceback\n```"))
			Expect(out).To(ContainSubstring("**stdout:**\n```\n<html> & more\n```"))
		})

		It("should omit the return code and empty output when the process never completed", func() {
			hang := out[strings.Index(out, "### hang"):]
			Expect(hang).To(ContainSubstring("**Reason:** Timed out after 3s"))
			Expect(hang).ToNot(ContainSubstring("**Return code:**"))
			Expect(hang).ToNot(ContainSubstring("**stderr:**"))
			Expect(hang).ToNot(ContainSubstring("**stdout:**"))
		})

		It("should end with the comparison note", func() {
			Expect(out).To(HaveSuffix("\n> [!NOTE]\n> Output is compared exactly (case + punctuation). A missing final newline is tolerated.\n"))
			Expect(out).To(HaveSuffix(ComparisonNote + "\n"))
		})
	})

	Context("when output contains a code fence", func() {
		It("should pick a longer fence", func() {
			Expect(fenced("```go\nx\n```\n")).To(Equal("````\n```go\nx\n```\n````\n"))
		})
		It("should render an empty body as an empty block", func() {
			Expect(fenced("")).To(Equal("```\n```\n"))
		})
	})
})
