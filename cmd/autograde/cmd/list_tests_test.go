package cmd

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/autograde-tools/autograde/internal/suite"
)

var _ = Describe("list tests subcommand", func() {
	Context("When formatting a test list for print", func() {
		s := suite.Default()
		It("should have one line per test", func() {
			res := formatList(s)
			resSplit := strings.Split(res, "\n")
			Expect(len(resSplit)).To(Equal(len(s.Tests) + 1)) // account for newline at the end.
		})
	})

	Context("When calling dashPrefix on an input string", func() {
		It("should be prepended with a hyphen and a space", func() {
			Expect(dashPrefix("foo")).To(Equal("- foo"))
		})
	})

	Context("Printing the built-in suite", func() {
		It("should show the entry point, total and every command", func() {
			buf := strings.Builder{}
			printTests(&buf, suite.Default())

			Expect(buf.String()).To(HavePrefix("Entry point: main.py [10 pts]\nTests (45 points total):\n"))
			Expect(buf.String()).To(ContainSubstring("- Default output: python main.py [10 pts]: python3 main.py\n"))
			Expect(buf.String()).To(ContainSubstring("- Uppercase + times: python main.py --uppercase --times 3 [10 pts]: python3 main.py --uppercase --times 3\n"))
			Expect(buf.String()).To(ContainSubstring("- Times only: python main.py --times 2 [5 pts]: python3 main.py --times 2\n"))
		})
	})

	Context("When executing the cobra command", func() {
		BeforeEach(func() { inTempWorkDir() })
		It("should contain output equivalent to printTests", func() {
			buf := strings.Builder{}
			printTests(&buf, suite.Default())

			out, err := executeCommand(rootCmd(), "list-tests")
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(ContainSubstring(buf.String()))
		})

		It("should run the built-in suite with the requested interpreter", func() {
			out, err := executeCommand(rootCmd(), "list-tests", "--python", "/opt/python/bin/python3")
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(ContainSubstring("- Default output: python main.py [10 pts]: /opt/python/bin/python3 main.py\n"))
		})
	})
})
