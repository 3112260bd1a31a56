package commands

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/spf13/cobra"

	"github.com/reeldash/reeldash/internal/cli/config"
	"github.com/reeldash/reeldash/internal/cli/output"
	"github.com/reeldash/reeldash/internal/dataset"
	"github.com/reeldash/reeldash/internal/engine"
	"github.com/reeldash/reeldash/pkg/adapter"
)

// expectedRows is the nominal size of a Top 250 export.
const expectedRows = 250

// DoctorOptions holds options for the doctor command.
type DoctorOptions struct {
	Format string // Output format: text, json
}

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand() *cobra.Command {
	opts := &DoctorOptions{}
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Run a comprehensive pipeline health check",
		Long: `Analyze the ReelDash setup for potential issues.

The doctor command inspects the configuration, the dataset file, and
the embedded engine, and provides a comprehensive report including:
- Dataset summary (rows, year range, cleaning fallbacks)
- Health checks grouped by category (Configuration, Dataset, Engine)
- Health score (0-100)
- Actionable recommendations

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Run health check
  reeldash doctor

  # Output as JSON
  reeldash doctor --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")

	return cmd
}

// DoctorOutput is the JSON output for the doctor command.
type DoctorOutput struct {
	Summary         DatasetSummary `json:"summary"`
	HealthChecks    []HealthCheck  `json:"health_checks"`
	Score           int            `json:"score"`
	Recommendations []string       `json:"recommendations"`
	IssueCount      int            `json:"issue_count"`
}

// DatasetSummary contains dataset-level statistics.
type DatasetSummary struct {
	Rows               int `json:"rows"`
	YearFrom           int `json:"year_from"`
	YearTo             int `json:"year_to"`
	Certificates       int `json:"certificates"`
	MissingRatings     int `json:"missing_ratings"`
	BoxOfficeFallbacks int `json:"box_office_fallbacks"`
}

// HealthCheck represents a single health check result.
type HealthCheck struct {
	CheckID    string   `json:"check_id"`
	Name       string   `json:"name"`
	Group      string   `json:"group"`
	Status     string   `json:"status"` // "pass", "warn", "error"
	IssueCount int      `json:"issue_count"`
	Details    []string `json:"details,omitempty"`
}

func runDoctor(cmd *cobra.Command, opts *DoctorOptions) error {
	// The doctor builds its own context so a broken dataset still
	// produces a report instead of aborting the command.
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	doctorOutput := buildDoctorOutput(cmd, cfg)
	logger.Debug("health check complete", "score", doctorOutput.Score, "issues", doctorOutput.IssueCount)

	// Render based on mode
	var renderErr error
	switch r.EffectiveMode() {
	case output.ModeJSON:
		renderErr = r.JSON(doctorOutput)
	case output.ModeMarkdown:
		renderErr = renderDoctorMarkdown(r, doctorOutput)
	default:
		renderErr = renderDoctorText(r, doctorOutput)
	}
	if renderErr != nil {
		return renderErr
	}

	// A failed check means the pipeline is not usable; exit non-zero.
	failed := 0
	for _, check := range doctorOutput.HealthChecks {
		if check.Status == "error" {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d health check(s) failed", failed)
	}
	return nil
}

func buildDoctorOutput(cmd *cobra.Command, cfg *config.Config) *DoctorOutput {
	var checks []HealthCheck
	var summary DatasetSummary

	checks = append(checks, checkConfigFile())
	checks = append(checks, checkEngineRegistered(cfg))

	ds, dsChecks := checkDataset(cfg)
	checks = append(checks, dsChecks...)

	if ds != nil {
		summary = buildDatasetSummary(ds)
		checks = append(checks, checkEngineConnectivity(cmd, cfg, ds))
	}

	issueCount := 0
	for _, c := range checks {
		issueCount += c.IssueCount
	}

	return &DoctorOutput{
		Summary:         summary,
		HealthChecks:    checks,
		Score:           calculateHealthScore(checks),
		Recommendations: generateRecommendations(checks),
		IssueCount:      issueCount,
	}
}

func checkConfigFile() HealthCheck {
	check := HealthCheck{
		CheckID: "CF01",
		Name:    "Config file",
		Group:   "configuration",
		Status:  "pass",
	}

	if used := config.GetConfigFileUsed(); used != "" {
		check.Details = []string{used}
		return check
	}

	check.Status = "warn"
	check.IssueCount = 1
	check.Details = []string{"no reeldash.yaml found, using defaults"}
	return check
}

func checkEngineRegistered(cfg *config.Config) HealthCheck {
	check := HealthCheck{
		CheckID: "CF02",
		Name:    "Engine registered",
		Group:   "configuration",
		Status:  "pass",
	}

	if err := cfg.Engine.Validate(); err != nil {
		check.Status = "error"
		check.IssueCount = 1
		check.Details = []string{err.Error()}
		return check
	}

	check.Details = []string{fmt.Sprintf("%s (available: %s)", cfg.Engine.Type, strings.Join(adapter.ListEngines(), ", "))}
	return check
}

// checkDataset validates and loads the dataset file, returning the loaded
// dataset (nil when unusable) plus the checks it could run.
func checkDataset(cfg *config.Config) (*dataset.Dataset, []HealthCheck) {
	fileCheck := HealthCheck{
		CheckID: "DS01",
		Name:    "Dataset file",
		Group:   "dataset",
		Status:  "pass",
		Details: []string{cfg.DatasetPath()},
	}

	if err := cfg.ValidateDataset(); err != nil {
		fileCheck.Status = "error"
		fileCheck.IssueCount = 1
		fileCheck.Details = []string{fmt.Sprintf("dataset file does not exist: %s", cfg.DatasetPath())}
		return nil, []HealthCheck{fileCheck}
	}

	parseCheck := HealthCheck{
		CheckID: "DS02",
		Name:    "Dataset parses",
		Group:   "dataset",
		Status:  "pass",
	}

	ds, err := dataset.Load(cfg.DatasetPath())
	if err != nil {
		parseCheck.Status = "error"
		parseCheck.IssueCount = 1
		parseCheck.Details = []string{err.Error()}
		return nil, []HealthCheck{fileCheck, parseCheck}
	}

	st := ds.Stats()
	checks := []HealthCheck{fileCheck, parseCheck}

	rowCheck := HealthCheck{
		CheckID: "DS03",
		Name:    "Row count",
		Group:   "dataset",
		Status:  "pass",
		Details: []string{fmt.Sprintf("%d rows", st.Rows)},
	}
	if st.Rows != expectedRows {
		rowCheck.Status = "warn"
		rowCheck.IssueCount = 1
		rowCheck.Details = []string{fmt.Sprintf("expected %d rows, found %d", expectedRows, st.Rows)}
	}
	checks = append(checks, rowCheck)

	ratingCheck := HealthCheck{
		CheckID: "DS04",
		Name:    "Ratings coverage",
		Group:   "dataset",
		Status:  "pass",
	}
	if st.MissingRatings > 0 {
		ratingCheck.Status = "warn"
		ratingCheck.IssueCount = 1
		ratingCheck.Details = []string{fmt.Sprintf("%d rows have no usable rating", st.MissingRatings)}
	}
	checks = append(checks, ratingCheck)

	boxOfficeCheck := HealthCheck{
		CheckID: "DS05",
		Name:    "Box office coverage",
		Group:   "dataset",
		Status:  "pass",
	}
	if st.BoxOfficeFallbacks > 0 {
		boxOfficeCheck.Status = "warn"
		boxOfficeCheck.IssueCount = 1
		boxOfficeCheck.Details = []string{fmt.Sprintf("%d rows fell back to $0", st.BoxOfficeFallbacks)}
	}
	checks = append(checks, boxOfficeCheck)

	return ds, checks
}

func checkEngineConnectivity(cmd *cobra.Command, cfg *config.Config, ds *dataset.Dataset) HealthCheck {
	check := HealthCheck{
		CheckID: "EN01",
		Name:    "Engine connectivity",
		Group:   "engine",
		Status:  "pass",
	}

	eng := engine.New(engine.Config{
		Adapter: cfg.Engine.ToAdapterConfig(),
		Dataset: ds,
		Logger:  config.GetLogger(cmd.Context()),
	})
	defer func() { _ = eng.Close() }()

	rows, err := eng.Query(cmd.Context(), fmt.Sprintf("SELECT COUNT(*) FROM %s", engine.MoviesTable))
	if err != nil {
		check.Status = "error"
		check.IssueCount = 1
		check.Details = []string{err.Error()}
		return check
	}
	defer func() { _ = rows.Close() }()

	var seeded int
	if rows.Next() {
		_ = rows.Scan(&seeded)
	}
	check.Details = []string{fmt.Sprintf("%s engine seeded %d rows", eng.Type(), seeded)}
	return check
}

func buildDatasetSummary(ds *dataset.Dataset) DatasetSummary {
	st := ds.Stats()
	return DatasetSummary{
		Rows:               st.Rows,
		YearFrom:           ds.MinYear(),
		YearTo:             ds.MaxYear(),
		Certificates:       len(ds.Certificates()),
		MissingRatings:     st.MissingRatings,
		BoxOfficeFallbacks: st.BoxOfficeFallbacks,
	}
}

// calculateHealthScore computes a health score from 0-100.
// Each warning costs 5 points and each error costs 10; a failing check
// counts once regardless of how many rows it touches.
func calculateHealthScore(checks []HealthCheck) int {
	if len(checks) == 0 {
		return 100
	}

	score := 100.0
	const basePenalty = 5.0

	for _, check := range checks {
		switch check.Status {
		case "error":
			score -= basePenalty * 2
		case "warn":
			score -= basePenalty
		}
	}

	// Clamp to 0-100
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return int(score)
}

// generateRecommendations creates actionable recommendations based on findings.
func generateRecommendations(checks []HealthCheck) []string {
	var recommendations []string
	seen := make(map[string]bool)

	for _, check := range checks {
		if check.IssueCount == 0 {
			continue
		}

		rec := getRecommendation(check.CheckID)
		if rec != "" && !seen[rec] {
			recommendations = append(recommendations, rec)
			seen[rec] = true
		}
	}

	// Limit to top 5 recommendations
	if len(recommendations) > 5 {
		recommendations = recommendations[:5]
	}

	return recommendations
}

// getRecommendation returns a recommendation for a specific check.
func getRecommendation(checkID string) string {
	switch checkID {
	case "CF01":
		return "Run 'reeldash init' to scaffold a reeldash.yaml"
	case "CF02":
		return "Switch to a registered engine with --engine or in reeldash.yaml"
	case "DS01":
		return "Download the IMDB Top 250 CSV or point --dataset at your copy"
	case "DS02":
		return "Check the dataset export for a malformed header or encoding"
	case "DS03":
		return "Verify the dataset export is complete; a Top 250 file should have 250 rows"
	case "DS04":
		return "Rows without a usable rating are kept but excluded from rating boards"
	case "DS05":
		return "Rows with unparseable box office fall back to $0 and lower gross totals"
	case "EN01":
		return "Verify the engine configuration or try --engine sqlite"
	default:
		return ""
	}
}

func renderDoctorText(r *output.Renderer, out *DoctorOutput) error {
	styles := r.Styles()

	// Header
	r.Println("")
	r.Println(styles.Header1.Render("ReelDash Health Report"))
	r.Println(styles.Muted.Render(strings.Repeat("=", 55)))
	r.Println("")

	// Dataset Summary
	r.Println(styles.Header2.Render("Dataset Summary"))
	r.Printf("   Movies: %d | Years: %d-%d | Certificates: %d\n",
		out.Summary.Rows, out.Summary.YearFrom, out.Summary.YearTo, out.Summary.Certificates)
	r.Printf("   Missing ratings: %d | Box office fallbacks: %d\n",
		out.Summary.MissingRatings, out.Summary.BoxOfficeFallbacks)
	r.Println("")

	// Health Checks grouped by category
	r.Println(styles.Header2.Render("Health Checks"))
	r.Println("")

	currentGroup := ""
	titleCaser := cases.Title(language.English)
	for _, check := range out.HealthChecks {
		if check.Group != currentGroup {
			currentGroup = check.Group
			r.Println(styles.Bold.Render("   " + titleCaser.String(currentGroup)))
			r.Println(styles.Muted.Render("   " + strings.Repeat("-", 40)))
		}

		icon := styles.StatusSuccess.String()
		switch check.Status {
		case "warn":
			icon = styles.Warning.Render("!")
		case "error":
			icon = styles.StatusFailed.String()
		}

		status := fmt.Sprintf("%s %s: %s", icon, check.CheckID, check.Name)
		r.Println("   " + status)

		// Show first 3 details
		for i, detail := range check.Details {
			if i >= 3 {
				r.Println(styles.Muted.Render(fmt.Sprintf("       ... and %d more", len(check.Details)-3)))
				break
			}
			r.Println(styles.Muted.Render("       - " + detail))
		}
	}
	r.Println("")

	// Health Score
	r.Println(styles.Muted.Render(strings.Repeat("=", 55)))
	scoreStyle := styles.Success
	if out.Score < 70 {
		scoreStyle = styles.Warning
	}
	if out.Score < 50 {
		scoreStyle = styles.Error
	}
	r.Printf("   Health Score: %s\n", scoreStyle.Render(fmt.Sprintf("%d/100", out.Score)))
	r.Println("")

	// Recommendations
	if len(out.Recommendations) > 0 {
		r.Println(styles.Header2.Render("Recommendations"))
		for i, rec := range out.Recommendations {
			r.Printf("   %d. %s\n", i+1, rec)
		}
		r.Println("")
	}

	return nil
}

func renderDoctorMarkdown(r *output.Renderer, out *DoctorOutput) error {
	r.Println("# ReelDash Health Report")
	r.Println("")

	// Dataset Summary
	r.Println("## Dataset Summary")
	r.Println("")
	r.Printf("- **Movies**: %d\n", out.Summary.Rows)
	r.Printf("- **Years**: %d-%d\n", out.Summary.YearFrom, out.Summary.YearTo)
	r.Printf("- **Certificates**: %d\n", out.Summary.Certificates)
	r.Printf("- **Missing ratings**: %d\n", out.Summary.MissingRatings)
	r.Printf("- **Box office fallbacks**: %d\n", out.Summary.BoxOfficeFallbacks)
	r.Println("")

	// Health Checks
	r.Println("## Health Checks")
	r.Println("")

	currentGroup := ""
	titleCaser := cases.Title(language.English)
	for _, check := range out.HealthChecks {
		if check.Group != currentGroup {
			currentGroup = check.Group
			r.Println("### " + titleCaser.String(currentGroup))
			r.Println("")
		}

		status := "PASS"
		switch check.Status {
		case "warn":
			status = "WARN"
		case "error":
			status = "ERROR"
		}

		r.Printf("- **[%s]** %s: %s\n", status, check.CheckID, check.Name)
		for _, detail := range check.Details {
			r.Printf("  - %s\n", detail)
		}
	}
	r.Println("")

	// Health Score
	r.Println("## Health Score")
	r.Println("")
	r.Printf("**%d/100**\n", out.Score)
	r.Println("")

	// Recommendations
	if len(out.Recommendations) > 0 {
		r.Println("## Recommendations")
		r.Println("")
		for i, rec := range out.Recommendations {
			r.Printf("%d. %s\n", i+1, rec)
		}
		r.Println("")
	}

	return nil
}
