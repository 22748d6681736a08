package suite

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	"github.com/autograde-tools/autograde/grading"
)

var (
	ErrNoEntrypoint = errors.New("suite has no entrypoint")
	ErrNoTests      = errors.New("suite has no tests")
)

// suiteFile is the on-disk form of a Suite.
type suiteFile struct {
	Entrypoint string     `json:"entrypoint"`
	Tests      []testFile `json:"tests"`
}

type testFile struct {
	Name     string   `json:"name"`
	Command  []string `json:"command"`
	Expected string   `json:"expected"`
	Points   int      `json:"points"`
	Timeout  duration `json:"timeout,omitempty"`
}

// duration accepts either a Go duration string ("1500ms") or a number of
// seconds (2.5).
type duration time.Duration

func (d *duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		*d = duration(value * float64(time.Second))
	case string:
		if secs, err := strconv.ParseFloat(value, 64); err == nil {
			*d = duration(secs * float64(time.Second))
			return nil
		}
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", value, err)
		}
		*d = duration(parsed)
	case nil:
		*d = 0
	default:
		return fmt.Errorf("invalid timeout %v", value)
	}
	return nil
}

// Load reads a YAML suite definition from path on fs.
func Load(fs afero.Fs, path string) (Suite, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return Suite{}, fmt.Errorf("could not read suite file: %w", err)
	}

	return Parse(b)
}

// Parse decodes and validates a YAML (or JSON) suite definition.
func Parse(b []byte) (Suite, error) {
	var sf suiteFile
	if err := yaml.UnmarshalStrict(b, &sf); err != nil {
		return Suite{}, fmt.Errorf("could not parse suite file: %w", err)
	}

	s := Suite{
		Entrypoint: sf.Entrypoint,
		Tests:      make([]grading.TestCase, 0, len(sf.Tests)),
	}
	for _, t := range sf.Tests {
		s.Tests = append(s.Tests, grading.TestCase{
			Name:     t.Name,
			Command:  t.Command,
			Expected: t.Expected,
			Points:   t.Points,
			Timeout:  time.Duration(t.Timeout),
		})
	}

	if err := s.Validate(); err != nil {
		return Suite{}, err
	}
	return s, nil
}

// Validate reports the first problem that would keep s from being run.
func (s Suite) Validate() error {
	if s.Entrypoint == "" {
		return ErrNoEntrypoint
	}
	if len(s.Tests) == 0 {
		return ErrNoTests
	}
	for i, tc := range s.Tests {
		switch {
		case tc.Name == "":
			return fmt.Errorf("test %d: name is required", i+1)
		case len(tc.Command) == 0 || tc.Command[0] == "":
			return fmt.Errorf("test %q: command is required", tc.Name)
		case tc.Points < 0:
			return fmt.Errorf("test %q: points must not be negative", tc.Name)
		case tc.Timeout < 0:
			return fmt.Errorf("test %q: timeout must not be negative", tc.Name)
		}
	}
	return nil
}
