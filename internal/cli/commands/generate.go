// Package commands implements the joinforge subcommands.
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joinforge-labs/joinforge/pkg/sqlgen"
)

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	var inputFile string

	cmd := &cobra.Command{
		Use:   "generate [query]",
		Short: "Generate a SQL SELECT statement from a table description",
		Long: `Generate a SQL SELECT statement from a line-oriented table description.

The description is taken from the argument, from --file, or from stdin.
One table per line:

  <table> [ - <alias> ] : [ <columns> ] : <join condition>`,
		Example: `  # From an argument (quote the newline)
  joinforge generate $'customers - c : name age\norders - o : order_date : c.id = o.customer_id'

  # From a file
  joinforge generate --file query.jf

  # From stdin
  cat query.jf | joinforge generate`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := readQuery(cmd, args, inputFile)
			if err != nil {
				return err
			}

			sql, err := sqlgen.Generate(query)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), sql)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "Read the table description from a file")

	return cmd
}

// readQuery resolves the query text from argument, file, or stdin, in that
// order of preference.
func readQuery(cmd *cobra.Command, args []string, inputFile string) (string, error) {
	switch {
	case len(args) == 1 && inputFile != "":
		return "", fmt.Errorf("pass the query as an argument or via --file, not both")
	case len(args) == 1:
		return args[0], nil
	case inputFile != "":
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", inputFile, err)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		if strings.TrimSpace(string(data)) == "" {
			return "", fmt.Errorf("no query given: pass an argument, --file, or pipe to stdin")
		}
		return string(data), nil
	}
}
