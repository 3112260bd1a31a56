package commands

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/reeldash/reeldash/internal/ui"
)

// UIOptions holds options for the ui command.
type UIOptions struct {
	Port      int
	NoBrowser bool
}

// NewUICommand creates the ui command.
func NewUICommand() *cobra.Command {
	opts := &UIOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Start the ReelDash web dashboard",
		Long: `Start a local web server providing the interactive dashboard.

The dashboard provides:
- Headline KPIs for the filtered selection
- Genre, certificate, director, and year breakdowns
- Leaderboards by rating, gross, and runtime
- A browsable movie table
- A SQL console against the embedded engine`,
		Example: `  # Start the dashboard on the default port
  reeldash ui

  # Start on custom port
  reeldash ui --port 3000

  # Start without auto-opening browser
  reeldash ui --no-browser`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 8765)")
	cmd.Flags().BoolVar(&opts.NoBrowser, "no-browser", false, "Don't auto-open browser")

	return cmd
}

func runUI(cmd *cobra.Command, opts *UIOptions) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	// Get UI config with defaults
	uiCfg := cmdCtx.Cfg.GetUIConfig()

	// CLI flags override config file
	port := uiCfg.Port
	if opts.Port != 0 {
		port = opts.Port
	}

	autoOpen := uiCfg.AutoOpen
	if opts.NoBrowser {
		autoOpen = false
	}

	// Create and start UI server
	serverCfg := ui.Config{
		Dataset:       cmdCtx.Dataset,
		Engine:        cmdCtx.Engine,
		Host:          uiCfg.Host,
		Port:          port,
		PageSize:      uiCfg.PageSize,
		SessionSecret: sessionSecret(),
		Logger:        cmdCtx.Logger,
	}

	server := ui.NewServer(serverCfg)

	url := fmt.Sprintf("http://%s:%d", uiCfg.Host, port)

	// Open browser if configured
	if autoOpen {
		go openBrowser(url)
	}

	fmt.Printf("Starting dashboard on %s\n", url)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Serve(ctx)
}

// sessionSecret returns the cookie secret for the dashboard session.
// Sessions only remember filter selections, so a per-process random
// secret is fine when none is configured.
func sessionSecret() string {
	if secret := os.Getenv("REELDASH_SESSION_SECRET"); secret != "" {
		return secret
	}
	return uuid.NewString()
}

// openBrowser opens the default browser to the specified URL.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url) //nolint:noctx
	case "linux":
		cmd = exec.Command("xdg-open", url) //nolint:noctx
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:noctx
	default:
		return
	}

	_ = cmd.Start()
}
