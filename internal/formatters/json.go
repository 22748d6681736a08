package formatters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/autograde-tools/autograde/grading"
)

// jsonEncode is swapped out in tests to exercise the error path.
var jsonEncode = func(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// jsonFormatter is a FormatterFunc that formats results as the structured
// JSON report.
func jsonFormatter(ctx context.Context, r grading.Results) ([]byte, error) {
	response := getResponse(r)

	responseJSON, err := jsonEncode(response)
	if err != nil {
		e := fmt.Errorf("error formatting results with formatter %s: %w",
			"json",
			err,
		)

		return nil, e
	}

	return responseJSON, nil
}
