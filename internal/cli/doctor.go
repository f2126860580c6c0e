package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/lookout-dev/lookout/internal/config"
	"github.com/lookout-dev/lookout/internal/doctor"
	"github.com/lookout-dev/lookout/internal/errors"
	"github.com/lookout-dev/lookout/internal/ui"
)

var doctorJSON bool

// doctorCmd diagnoses configuration and connectivity issues.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose config and connectivity issues",
	Long: `Run diagnostic checks to identify common issues before they show up as
mystery Down rows in the dashboard.

Checks:
  - Config file presence, parseability, and validity
  - DNS resolution for every configured host address
  - Probe timeouts vs the refresh interval

Examples:
  lookout doctor
  lookout doctor --json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand(cmd, doctorJSON)
	},
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")
	rootCmd.AddCommand(doctorCmd)
}

// DoctorOutput is the JSON shape of a doctor run.
type DoctorOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Summary    SummaryOutput    `json:"summary"`
}

// CategoryOutput groups check results under their category.
type CategoryOutput struct {
	Name    string               `json:"name"`
	Results []doctor.CheckResult `json:"results"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	AllClear bool `json:"all_clear"`
}

// doctorCommand collects and runs all diagnostic checks.
func doctorCommand(cmd *cobra.Command, asJSON bool) error {
	// Find may fail on an unreadable --config path; the config checks
	// report that themselves, so the error is dropped here.
	configPath, _ := config.Find(configFlag)

	checks := doctor.NewConfigChecks(configPath)
	results := doctor.RunAll(checks)

	// Deeper checks need a parseable config. Load errors are already
	// covered by the config checks above.
	if configPath != "" {
		if cfg, err := config.Load(configPath); err == nil {
			dnsChecks := doctor.NewDNSChecks(cfg)
			checks = append(checks, dnsChecks...)
			results = append(results, doctor.RunAllParallel(dnsChecks)...)

			settingsChecks := doctor.NewSettingsChecks(cfg)
			checks = append(checks, settingsChecks...)
			results = append(results, doctor.RunAll(settingsChecks)...)
		}
	}

	if asJSON {
		if err := printDoctorJSON(cmd, checks, results); err != nil {
			return err
		}
	} else {
		printDoctorText(cmd, checks, results)
	}

	if doctor.HasFailures(results) {
		os.Exit(1)
	}
	return nil
}

func printDoctorText(cmd *cobra.Command, checks []doctor.Check, results []doctor.CheckResult) {
	rows := make([]ui.DoctorCheckRow, len(results))
	for i, result := range results {
		rows[i] = ui.DoctorCheckRow{
			Status:     result.Status.String(),
			Category:   checks[i].Category(),
			Message:    result.Message,
			Suggestion: result.Suggestion,
		}
	}

	cmd.Println(ui.RenderDoctorReport(rows))
	cmd.Println(doctor.Summary(results))
}

func printDoctorJSON(cmd *cobra.Command, checks []doctor.Check, results []doctor.CheckResult) error {
	categories := make(map[string]*CategoryOutput)
	var order []string
	for i, result := range results {
		name := checks[i].Category()
		cat, ok := categories[name]
		if !ok {
			cat = &CategoryOutput{Name: name}
			categories[name] = cat
			order = append(order, name)
		}
		cat.Results = append(cat.Results, result)
	}

	counts := doctor.CountByStatus(results)
	out := DoctorOutput{
		Summary: SummaryOutput{
			Pass:     counts[doctor.StatusPass],
			Warn:     counts[doctor.StatusWarn],
			Fail:     counts[doctor.StatusFail],
			AllClear: !doctor.HasIssues(results),
		},
	}
	for _, name := range order {
		out.Categories = append(out.Categories, *categories[name])
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrInternal,
			"Failed to encode doctor report as JSON",
			"This shouldn't happen - please report this bug")
	}
	cmd.Println(string(data))
	return nil
}
