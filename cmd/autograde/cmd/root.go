// Package cmd implements the command-line interface for autograde.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bombsimon/logrusr/v4"
	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	spfviper "github.com/spf13/viper"

	"github.com/autograde-tools/autograde/artifacts"
	autograderr "github.com/autograde-tools/autograde/errors"
	"github.com/autograde-tools/autograde/grading"
	"github.com/autograde-tools/autograde/internal/cli"
	"github.com/autograde-tools/autograde/internal/engine"
	"github.com/autograde-tools/autograde/internal/log"
	"github.com/autograde-tools/autograde/internal/runtime"
	"github.com/autograde-tools/autograde/internal/suite"
	"github.com/autograde-tools/autograde/internal/viper"
	"github.com/autograde-tools/autograde/version"
)

var configFileUsed bool

func init() {
	cobra.OnInitialize(func() { initConfig(viper.Instance()) })
}

func rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "autograde",
		Short: "Grade a command-line program against expected output.",
		Long: "Runs the program in the working directory with each test's arguments, compares its output " +
			"against the expected output and writes a JSON report and a Markdown summary.",
		Version:          version.Version.String(),
		Args:             cobra.NoArgs,
		PersistentPreRun: preRunConfig,
		RunE:             gradeRunE,
		SilenceUsage:     true,
		SilenceErrors:    true,
	}

	viper := viper.Instance()
	flags := rootCmd.Flags()
	flags.String("json", runtime.DefaultJSONPath, "Where the structured JSON report is written. (env: AUTOGRADE_JSON)")
	_ = viper.BindPFlag("json", flags.Lookup("json"))

	flags.String("summary", runtime.DefaultSummaryPath, "Where the Markdown summary is written. (env: AUTOGRADE_SUMMARY)")
	_ = viper.BindPFlag("summary", flags.Lookup("summary"))

	flags.String("junit", "", "Also write JUnit XML results to this path. (env: AUTOGRADE_JUNIT)")
	_ = viper.BindPFlag("junit", flags.Lookup("junit"))

	flags.String("artifacts", "", "Directory receiving the captured output of every test. (env: AUTOGRADE_ARTIFACTS)")
	_ = viper.BindPFlag("artifacts", flags.Lookup("artifacts"))

	rootCmd.PersistentFlags().String("suite", "", "A YAML file replacing the built-in test suite. (env: AUTOGRADE_SUITE)")
	_ = viper.BindPFlag("suite", rootCmd.PersistentFlags().Lookup("suite"))

	rootCmd.PersistentFlags().String("python", suite.DefaultInterpreter, "The interpreter running the built-in suite. (env: AUTOGRADE_PYTHON)")
	_ = viper.BindPFlag("python", rootCmd.PersistentFlags().Lookup("python"))

	rootCmd.PersistentFlags().String("logfile", "", "Where the execution logfile will be written. (env: AUTOGRADE_LOGFILE)")
	_ = viper.BindPFlag("logfile", rootCmd.PersistentFlags().Lookup("logfile"))

	rootCmd.PersistentFlags().String("loglevel", "", "The verbosity of autograde itself. Ex. warn, debug, trace, info, error. (env: AUTOGRADE_LOGLEVEL)")
	_ = viper.BindPFlag("loglevel", rootCmd.PersistentFlags().Lookup("loglevel"))

	rootCmd.AddCommand(listTestsCmd())

	return rootCmd
}

func Execute() error {
	return rootCmd().ExecuteContext(context.Background())
}

func initConfig(viper *spfviper.Viper) {
	// set up ENV var support
	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	// set up optional config file support
	viper.SetConfigName(DefaultConfigName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	configFileUsed = true
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(spfviper.ConfigFileNotFoundError); ok {
			configFileUsed = false
		}
	}

	viper.SetDefault("json", runtime.DefaultJSONPath)
	viper.SetDefault("summary", runtime.DefaultSummaryPath)
	viper.SetDefault("python", suite.DefaultInterpreter)
	viper.SetDefault("logfile", DefaultLogFile)
	viper.SetDefault("loglevel", DefaultLogLevel)
}

// preRunConfig is used by cobra.PersistentPreRun to set up logging for every command.
func preRunConfig(cmd *cobra.Command, args []string) {
	viper := viper.Instance()
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	l.SetOutput(cmd.ErrOrStderr())

	// set up logging
	if logname := viper.GetString("logfile"); logname != "" {
		logFile, err := os.OpenFile(logname, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
		if err == nil {
			l.SetOutput(io.MultiWriter(cmd.ErrOrStderr(), logFile))
		} else {
			l.Infof("Failed to log to file, using default stderr")
		}
	}
	if ll, err := logrus.ParseLevel(viper.GetString("loglevel")); err == nil {
		l.SetLevel(ll)
	}

	if !configFileUsed {
		l.Debug("config file not found, proceeding without it")
	}

	logger := logrusr.New(l)
	ctx := logr.NewContext(cmd.Context(), logger)
	cmd.SetContext(ctx)
}

// gradeRunE runs the configured suite and publishes the reports. A run that
// completes without passing returns errors.ErrGradingFailed.
func gradeRunE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := logr.FromContextOrDiscard(ctx)
	logger.Info("autograde starting", "version", version.Version.String())

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			logger.V(log.DBG).Info("flag set", "name", f.Name, "value", f.Value.String())
		}
	})

	cfg, err := runtime.NewConfigFrom(*viper.Instance())
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	s, err := loadSuite(afero.NewOsFs(), cfg.SuiteFile, cfg.Python)
	if err != nil {
		return err
	}

	rw, err := artifacts.NewFilesystemWriter()
	if err != nil {
		return err
	}

	if cfg.Artifacts != "" {
		aw, err := artifacts.NewFilesystemWriter(artifacts.WithDirectory(cfg.Artifacts))
		if err != nil {
			return err
		}
		ctx = artifacts.ContextWithWriter(ctx, aw)
		logger.V(log.DBG).Info("capturing test output", "directory", aw.Path())
	}

	runner := engine.New(s)
	results, err := cli.RunAutograde(
		ctx,
		func(ctx context.Context) (grading.Results, error) {
			if err := runner.ExecuteTests(ctx); err != nil {
				return grading.Results{}, err
			}
			return runner.Results(), nil
		},
		cli.CheckConfig{
			JSONPath:    cfg.JSONPath,
			SummaryPath: cfg.SummaryPath,
			JUnitPath:   cfg.JUnitPath,
			Out:         cmd.OutOrStdout(),
		},
		rw,
	)
	if err != nil {
		return err
	}

	if !results.PassedOverall() {
		return autograderr.ErrGradingFailed
	}
	return nil
}

// loadSuite returns the built-in suite run with python unless path names a
// suite file.
func loadSuite(fs afero.Fs, path, python string) (suite.Suite, error) {
	if path == "" {
		return suite.ForInterpreter(python), nil
	}
	s, err := suite.Load(fs, path)
	if err != nil {
		return suite.Suite{}, fmt.Errorf("could not load suite %s: %w", path, err)
	}
	return s, nil
}
