package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/reeldash/reeldash/internal/engine"
)

func runQueryREPL(cmd *cobra.Command, cmdCtx *CommandContext, opts *QueryOptions) error {
	ctx := cmd.Context()
	eng := cmdCtx.Engine

	// Setup history file (project-local)
	historyFile := filepath.Join(cmdCtx.Cfg.ProjectRoot, ".reeldash_history")

	// Get table names for completion
	completer := newTableCompleter(ctx, eng)

	// Configure readline
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "reeldash> ",
		HistoryFile:     historyFile,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	// Print welcome message
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ReelDash Query REPL (engine: %s, dataset: %s)\n", eng.Type(), cmdCtx.Cfg.DatasetPath())
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	// REPL loop
	format := opts.Format
	var multiLineBuffer strings.Builder
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			multiLineBuffer.Reset()
			rl.SetPrompt("reeldash> ")
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Handle dot-commands
		if strings.HasPrefix(line, ".") {
			if handled := handleDotCommand(ctx, cmd, eng, line, &format); handled {
				if line == ".quit" || line == ".exit" {
					break
				}
				continue
			}
		}

		// Accumulate multi-line SQL until semicolon
		multiLineBuffer.WriteString(line)
		if !strings.HasSuffix(line, ";") {
			multiLineBuffer.WriteString(" ")
			rl.SetPrompt("    ...> ")
			continue
		}
		rl.SetPrompt("reeldash> ")

		// Execute query
		query := strings.TrimSuffix(multiLineBuffer.String(), ";")
		multiLineBuffer.Reset()

		if err := executeAndRenderQuery(ctx, cmd, eng, query, format); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
	}

	return nil
}

func handleDotCommand(ctx context.Context, cmd *cobra.Command, eng *engine.Engine, line string, format *string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(cmd.OutOrStdout())
		return true

	case ".tables":
		if err := listTablesFromEngine(ctx, cmd.OutOrStdout(), eng, *format); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return true

	case ".schema":
		if len(parts) < 2 {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Usage: .schema <table>")
			return true
		}
		if err := showSchemaFromEngine(ctx, cmd.OutOrStdout(), eng, parts[1], *format); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return true

	case ".format":
		if len(parts) < 2 {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Current format: %s\n", *format)
			return true
		}
		switch parts[1] {
		case "table", "json", "csv", "md", "markdown":
			*format = parts[1]
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Format set to %s\n", parts[1])
		default:
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Usage: .format table|json|csv|md")
		}
		return true

	case ".clear":
		fmt.Print("\033[H\033[2J")
		return true

	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s (type .help for commands)\n", command)
		return true
	}
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .tables         List the seeded tables
  .schema <name>  Show schema for a table
  .format <fmt>   Set result format (table, json, csv, md)
  .clear          Clear the screen
  .quit / .exit   Exit the REPL

Tips:
  - SQL statements must end with a semicolon (;)
  - Use arrow keys to navigate history
  - Tab completion works for table names
  - movies holds the cleaned dataset, movies_raw the source text
`
	_, _ = fmt.Fprintln(w, help)
}

// sqlKeywords are offered by tab completion alongside table names.
var sqlKeywords = []string{
	"SELECT", "FROM", "WHERE", "GROUP BY", "ORDER BY", "HAVING",
	"LIMIT", "OFFSET", "JOIN", "LEFT JOIN", "ON", "AS", "AND", "OR",
	"NOT", "NULL", "IS", "IN", "LIKE", "BETWEEN", "DISTINCT",
	"COUNT", "SUM", "AVG", "MIN", "MAX", "DESC", "ASC",
}

// newTableCompleter creates a readline completer over table names, SQL
// keywords, and the dot-commands.
func newTableCompleter(ctx context.Context, eng *engine.Engine) *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface

	tables, err := eng.ListTables(ctx)
	if err == nil {
		for _, name := range tables {
			items = append(items, readline.PcItem(name))
		}
	}

	for _, kw := range sqlKeywords {
		items = append(items, readline.PcItem(kw))
	}

	items = append(items,
		readline.PcItem(".help"),
		readline.PcItem(".tables"),
		readline.PcItem(".schema"),
		readline.PcItem(".format",
			readline.PcItem("table"), readline.PcItem("json"),
			readline.PcItem("csv"), readline.PcItem("md")),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)

	return readline.NewPrefixCompleter(items...)
}
