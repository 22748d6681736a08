package grading

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Results", func() {
	tc := func(name string, points int) TestCase {
		return TestCase{Name: name, Command: []string{"true"}, Points: points}
	}

	Context("When building a single result", func() {
		It("should award full points on a pass", func() {
			r := PassResult(tc("a", 7), "ok", Outcome{ReturnCode: ExitCode(0)})
			Expect(r.Passed).To(BeTrue())
			Expect(r.Points).To(Equal(7))
			Expect(r.MaxPoints).To(Equal(7))
			Expect(*r.ReturnCode).To(Equal(0))
		})
		It("should award no points on a failure", func() {
			r := FailResult(tc("a", 7), "nope", Outcome{Stderr: "boom"})
			Expect(r.Passed).To(BeFalse())
			Expect(r.Points).To(BeZero())
			Expect(r.MaxPoints).To(Equal(7))
			Expect(r.Stderr).To(Equal("boom"))
			Expect(r.ReturnCode).To(BeNil())
		})
	})

	DescribeTable("Aggregating results",
		func(tests []TestResult, score, maxScore int, passed bool) {
			r := Results{Tests: tests}
			Expect(r.Score()).To(Equal(score))
			Expect(r.MaxScore()).To(Equal(maxScore))
			Expect(r.PassedOverall()).To(Equal(passed))
		},
		Entry("with no tests", []TestResult{}, 0, 0, true),
		Entry("with all tests passing",
			[]TestResult{PassResult(tc("a", 10), "", Outcome{}), PassResult(tc("b", 5), "", Outcome{})},
			15, 15, true),
		Entry("with one scored failure",
			[]TestResult{PassResult(tc("a", 10), "", Outcome{}), FailResult(tc("b", 5), "", Outcome{})},
			10, 15, false),
		Entry("with only an unscored failure",
			[]TestResult{PassResult(tc("a", 10), "", Outcome{}), FailResult(tc("info", 0), "", Outcome{})},
			10, 10, true),
		Entry("with every test failing",
			[]TestResult{FailResult(tc("a", 10), "", Outcome{}), FailResult(tc("b", 10), "", Outcome{})},
			0, 20, false),
	)

	Context("When listing failures", func() {
		It("should keep the original order", func() {
			r := Results{Tests: []TestResult{
				FailResult(tc("first", 1), "", Outcome{}),
				PassResult(tc("second", 1), "", Outcome{}),
				FailResult(tc("third", 1), "", Outcome{}),
			}}
			failed := r.Failed()
			Expect(failed).To(HaveLen(2))
			Expect(failed[0].Name).To(Equal("first"))
			Expect(failed[1].Name).To(Equal("third"))
		})
	})

	Context("When resolving a test case timeout", func() {
		It("should fall back to the default", func() {
			Expect(TestCase{}.EffectiveTimeout()).To(Equal(DefaultTimeout))
		})
		It("should honour an explicit value", func() {
			Expect(TestCase{Timeout: 500 * time.Millisecond}.EffectiveTimeout()).To(Equal(500 * time.Millisecond))
		})
	})
})
