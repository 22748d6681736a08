package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/autograde-tools/autograde/internal/suite"
	"github.com/autograde-tools/autograde/internal/viper"
)

func listTestsCmd() *cobra.Command {
	listTestsCmd := &cobra.Command{
		Use:   "list-tests",
		Short: "List the tests that will be executed",
		Long:  "This command will list every test of the configured suite with its points and command",
		Args:  cobra.NoArgs,
		RunE:  listTestsRunE,
	}
	return listTestsCmd
}

// listTestsRunE binds printTests to cobra's RunE function
// definition, passing the cobra command's output as an io.Writer.
func listTestsRunE(cmd *cobra.Command, args []string) error {
	v := viper.Instance()
	s, err := loadSuite(afero.NewOsFs(), v.GetString("suite"), v.GetString("python"))
	if err != nil {
		return err
	}
	printTests(cmd.OutOrStdout(), s)
	return nil
}

// printTests writes the formatted test list output to w.
func printTests(w io.Writer, s suite.Suite) {
	fmt.Fprintf(w, "Entry point: %s [%d pts]\n", s.Entrypoint, suite.EntrypointPoints)
	fmt.Fprintf(w, "Tests (%d points total):\n", s.TotalPoints())
	fmt.Fprint(w, formatList(s))
}

// formatList returns one hyphen-prefixed line per test.
func formatList(s suite.Suite) string {
	var b strings.Builder
	for _, tc := range s.Tests {
		b.WriteString(dashPrefix(fmt.Sprintf("%s [%d pts]: %s", tc.Name, tc.Points, tc.CommandLine())))
		b.WriteString("\n")
	}
	return b.String()
}

// dashPrefix prefixes string s with a hyphen.
func dashPrefix(s string) string {
	return fmt.Sprintf("- %s", s)
}
