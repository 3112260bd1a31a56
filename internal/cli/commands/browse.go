package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/reeldash/reeldash/internal/cli/browse"
)

// NewBrowseCommand creates the browse command.
func NewBrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the movies in an interactive terminal table",
		Long: `Browse the Top 250 in a full-screen terminal table.

Filters narrow the table in place and the status bar recomputes the
headline KPIs for the selection as you type. Press ? inside the
browser for the full key reference.`,
		Example: `  # Open the browser
  reeldash browse`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContextWithoutEngine(cmd)
			if err != nil {
				return err
			}

			model := browse.NewModel(cmdCtx.Dataset, cmdCtx.Cfg.GetUIConfig().PageSize)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("browser failed: %w", err)
			}
			return nil
		},
	}
}
