package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/joinforge-labs/joinforge/internal/cli/config"
	"github.com/joinforge-labs/joinforge/pkg/parser"
	"github.com/joinforge-labs/joinforge/pkg/sqlgen"
)

const (
	replPrompt = "joinforge> "
	contPrompt = "      ...> "
)

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively build SQL statements",
		Long: `Start an interactive session. Enter one table per line and submit with an
empty line. Dot-commands:

  .help     show the input format
  .explain  show how the last submitted description was parsed
  .quit     exit`,
		RunE: runREPL,
	}
}

func runREPL(cmd *cobra.Command, _ []string) error {
	cfg := config.FromContext(cmd.Context())

	historyFile := cfg.HistoryFile
	if dir := filepath.Dir(historyFile); dir != "." && dir != "" {
		_ = os.MkdirAll(dir, 0o750)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdout:          cmd.OutOrStdout(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, "joinforge REPL")
	_, _ = fmt.Fprintln(out, "One table per line; an empty line generates the SQL. Type .help for help.")
	_, _ = fmt.Fprintln(out)

	var (
		buffer    []string
		lastQuery string
	)
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buffer = nil
			rl.SetPrompt(replPrompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}

		line = strings.TrimSpace(line)

		if len(buffer) == 0 && strings.HasPrefix(line, ".") {
			if line == ".quit" || line == ".exit" {
				return nil
			}
			handleDotCommand(out, line, lastQuery)
			continue
		}

		if line != "" {
			buffer = append(buffer, line)
			rl.SetPrompt(contPrompt)
			continue
		}
		if len(buffer) == 0 {
			continue
		}

		// Empty line submits the accumulated description
		lastQuery = strings.Join(buffer, "\n")
		buffer = nil
		rl.SetPrompt(replPrompt)

		sql, err := sqlgen.Generate(lastQuery)
		if err != nil {
			_, _ = fmt.Fprintln(out, errStyle.Render("Error: "+err.Error()))
			continue
		}
		_, _ = fmt.Fprintln(out, sql)
		_, _ = fmt.Fprintln(out)
	}
}

func handleDotCommand(out io.Writer, line, lastQuery string) {
	switch line {
	case ".help":
		_, _ = fmt.Fprintln(out, `Input format, one table per line:

  <table> [ - <alias> ] : [ <columns> ] : <join condition>

The first table carries no join condition; every later table must.
Submit with an empty line.

Example:
  customers - c : name age
  orders - o : order_date : c.id = o.customer_id`)
	case ".explain":
		if lastQuery == "" {
			_, _ = fmt.Fprintln(out, "Nothing to explain yet; submit a description first.")
			return
		}
		renderDescriptors(out, parser.ParseQuery(lastQuery))
	default:
		_, _ = fmt.Fprintf(out, "Unknown command %s; try .help\n", line)
	}
}

// renderDescriptors prints the parsed form of each input line, which is
// handy for spotting why a description is rejected.
func renderDescriptors(out io.Writer, descriptors []parser.Descriptor) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Table", "Alias", "Columns", "Join condition"})
	for i, d := range descriptors {
		t.AppendRow(table.Row{i + 1, d.Name, d.Alias, strings.Join(d.Columns, " "), d.JoinCondition})
	}
	t.Render()
}
