package commands

import (
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/reeldash/reeldash/internal/cli/output"
)

// VersionInfo holds the build metadata shown by the version command.
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
}

// NewVersionCommand creates the version command. Version, commit, and
// date are normally injected via ldflags; when they are not, commit
// and date fall back to the binary's embedded VCS stamp.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display ReelDash version and build information.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := resolveVersionInfo(version, commit, date)

			cfg := getConfig()
			r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))
			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(info)
			}

			r.Printf("ReelDash v%s\n", info.Version)
			r.Printf("  commit: %s\n", info.Commit)
			r.Printf("  built:  %s\n", info.BuildDate)
			r.Println("IMDB Top 250 dashboard built with Go and DuckDB")
			return nil
		},
	}
}

func resolveVersionInfo(version, commit, date string) VersionInfo {
	info := VersionInfo{Version: version, Commit: commit, BuildDate: date}
	if info.Commit != "unknown" && info.BuildDate != "unknown" {
		return info
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "unknown" {
				info.Commit = s.Value
				if len(info.Commit) > 12 {
					info.Commit = info.Commit[:12]
				}
			}
		case "vcs.time":
			if info.BuildDate == "unknown" {
				info.BuildDate = s.Value
			}
		}
	}
	return info
}
