package formatters

import (
	"context"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/autograde-tools/autograde/grading"
)

type JUnitTestSuites struct {
	XMLName xml.Name         `xml:"testsuites"`
	Suites  []JUnitTestSuite `xml:"testsuite"`
}

type JUnitTestSuite struct {
	XMLName    xml.Name        `xml:"testsuite"`
	Tests      int             `xml:"tests,attr"`
	Failures   int             `xml:"failures,attr"`
	Time       string          `xml:"time,attr"`
	Name       string          `xml:"name,attr"`
	Properties []JUnitProperty `xml:"properties>property,omitempty"`
	TestCases  []JUnitTestCase `xml:"testcase"`
}

type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Classname string        `xml:"classname,attr"`
	Name      string        `xml:"name,attr"`
	Time      string        `xml:"time,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
	SystemOut string        `xml:"system-out,omitempty"`
	SystemErr string        `xml:"system-err,omitempty"`
}

type JUnitProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

type JUnitFailure struct {
	Message  string `xml:"message,attr"`
	Type     string `xml:"type,attr"`
	Contents string `xml:",chardata"`
}

var xmlMarshalIndent = xml.MarshalIndent

func junitXMLFormatter(ctx context.Context, r grading.Results) ([]byte, error) {
	testsuite := JUnitTestSuite{
		Tests:    len(r.Tests),
		Failures: len(r.Failed()),
		Name:     "autograde",
		Properties: []JUnitProperty{
			{Name: "run_id", Value: r.RunID},
			{Name: "score", Value: fmt.Sprintf("%d/%d", r.Score(), r.MaxScore())},
		},
		TestCases: make([]JUnitTestCase, 0, len(r.Tests)),
	}

	totalDuration := time.Duration(0)
	for _, result := range r.Tests {
		testCase := JUnitTestCase{
			Classname: "autograde",
			Name:      result.Name,
			Time:      seconds(result.ElapsedTime),
			SystemOut: result.Stdout,
			SystemErr: result.Stderr,
		}
		if !result.Passed {
			testCase.Failure = &JUnitFailure{
				Message:  result.Message,
				Type:     "Failed",
				Contents: fmt.Sprintf("%s (%d/%d points)", result.Message, result.Points, result.MaxPoints),
			}
		}
		testsuite.TestCases = append(testsuite.TestCases, testCase)
		totalDuration += result.ElapsedTime
	}
	testsuite.Time = seconds(totalDuration)

	suites := JUnitTestSuites{Suites: []JUnitTestSuite{testsuite}}
	out, err := xmlMarshalIndent(suites, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("error formatting results with formatter %s: %w", "junitxml", err)
	}

	return append([]byte(xml.Header), out...), nil
}

// seconds renders d the way JUnit consumers expect the time attribute.
func seconds(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}
