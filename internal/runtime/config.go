// Package runtime holds the configuration autograde runs with, rendered from
// flags, environment and config file.
package runtime

import (
	"github.com/spf13/viper"
)

// Config contains configuration details for a grading run.
type Config struct {
	// JSONPath is where the structured report is written.
	JSONPath string
	// SummaryPath is where the Markdown summary is written.
	SummaryPath string
	// JUnitPath optionally receives a JUnit XML rendition of the results.
	JUnitPath string
	// SuiteFile optionally replaces the built-in suite.
	SuiteFile string
	// Python runs the built-in suite.
	Python string
	// Artifacts optionally receives the captured output of every test.
	Artifacts string
	LogFile   string
	LogLevel  string
}

// NewConfigFrom will return a runtime.Config based on the stored inputs in
// the provided viper.Viper. Defaults are expected to be registered on vcfg
// already.
func NewConfigFrom(vcfg viper.Viper) (*Config, error) {
	cfg := Config{}
	cfg.JSONPath = vcfg.GetString("json")
	cfg.SummaryPath = vcfg.GetString("summary")
	cfg.JUnitPath = vcfg.GetString("junit")
	cfg.SuiteFile = vcfg.GetString("suite")
	cfg.Python = vcfg.GetString("python")
	cfg.Artifacts = vcfg.GetString("artifacts")
	cfg.LogFile = vcfg.GetString("logfile")
	cfg.LogLevel = vcfg.GetString("loglevel")
	return &cfg, nil
}
