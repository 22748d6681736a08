// Package formatters holds the public contract for turning grading results
// into bytes.
package formatters

import (
	"context"

	"github.com/autograde-tools/autograde/grading"
)

// FormatterFunc describes a function that formats grading results.
type FormatterFunc = func(context.Context, grading.Results) (response []byte, formattingError error)
