package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/lookout-dev/lookout/internal/engine"
	"github.com/lookout-dev/lookout/internal/errors"
	"github.com/lookout-dev/lookout/internal/logger"
	"github.com/lookout-dev/lookout/internal/monitor"
	"github.com/lookout-dev/lookout/internal/probe"
	"github.com/lookout-dev/lookout/internal/ui"
)

var (
	checkJSON      bool
	checkHostsFlag string
)

// checkCmd runs a single probe round and prints the results.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Probe every service once and print the results",
	Long: `Run one probe round across all configured services and print a status
table to stdout. Useful for scripts, cron jobs, and CI.

Exits with code 1 when any service is down, so the exit status alone can
gate a pipeline.

Examples:
  lookout check
  lookout check --json
  lookout check --hosts web1`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		down, err := checkCommand(cmd, checkHostsFlag, checkJSON)
		if err != nil {
			return err
		}
		if down > 0 {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output results as JSON")
	checkCmd.Flags().StringVar(&checkHostsFlag, "hosts", "", "only check specific hosts (comma-separated)")
	rootCmd.AddCommand(checkCmd)
}

// checkJSONOutput is the machine-readable shape of one check round.
type checkJSONOutput struct {
	Results []engine.CheckResult `json:"results"`
	Summary checkJSONSummary     `json:"summary"`
}

type checkJSONSummary struct {
	Up    int `json:"up"`
	Down  int `json:"down"`
	Total int `json:"total"`
}

// checkCommand runs one round and prints it. Returns the number of services
// that are down.
func checkCommand(cmd *cobra.Command, hostsFilter string, asJSON bool) (int, error) {
	cfg, err := loadConfig()
	if err != nil {
		return 0, err
	}

	cfg, err = applyHostsFilter(cfg, hostsFilter)
	if err != nil {
		return 0, err
	}

	eng := engine.New(cfg, probe.NewDispatcher(), logger.Default())
	eng.RunRound(context.Background())

	snapshot := eng.Statuses()
	groups := monitor.GroupResults(snapshot)
	stats := monitor.Tally(snapshot)

	if asJSON {
		if err := printCheckJSON(cmd, groups, stats); err != nil {
			return 0, err
		}
		return stats.Down, nil
	}

	rows := buildCheckRows(groups)
	cmd.Println(ui.RenderCheckTable(rows))
	if summary := ui.RenderCheckSummary(ui.CheckSummary{Up: stats.Up, Down: stats.Down}); summary != "" {
		cmd.Println(summary)
	}

	return stats.Down, nil
}

// buildCheckRows flattens grouped results into table rows, host then
// service order.
func buildCheckRows(groups []monitor.HostGroup) []ui.CheckRow {
	var rows []ui.CheckRow
	for _, group := range groups {
		for _, r := range group.Services {
			rows = append(rows, ui.CheckRow{
				Up:       r.Status == engine.StatusUp,
				Host:     r.HostName,
				Service:  r.ServiceName,
				Target:   net.JoinHostPort(r.Address, strconv.Itoa(r.Port)),
				Response: formatCheckResponse(r),
				Error:    r.ErrorMessage,
			})
		}
	}
	return rows
}

func printCheckJSON(cmd *cobra.Command, groups []monitor.HostGroup, stats monitor.Stats) error {
	out := checkJSONOutput{
		Results: []engine.CheckResult{},
		Summary: checkJSONSummary{Up: stats.Up, Down: stats.Down, Total: stats.Total()},
	}
	for _, group := range groups {
		out.Results = append(out.Results, group.Services...)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrInternal,
			"Failed to encode results as JSON",
			"This shouldn't happen - please report this bug")
	}
	cmd.Println(string(data))
	return nil
}

// formatCheckResponse renders a response time cell. Down services show
// their time to failure; only a pair that was never probed gets a dash.
func formatCheckResponse(r engine.CheckResult) string {
	if r.ResponseTime == 0 {
		return "-"
	}
	if r.ResponseTime < time.Millisecond {
		return "<1ms"
	}
	if r.ResponseTime < time.Second {
		return fmt.Sprintf("%dms", r.ResponseTime.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", r.ResponseTime.Seconds())
}
