package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lookout-dev/lookout/internal/config"
	"github.com/lookout-dev/lookout/internal/engine"
	"github.com/lookout-dev/lookout/internal/errors"
	"github.com/lookout-dev/lookout/internal/logger"
	"github.com/lookout-dev/lookout/internal/monitor"
	"github.com/lookout-dev/lookout/internal/probe"
)

// Global and root-command flags
var (
	configFlag       string
	rootHostsFlag    string
	rootIntervalFlag string
	rootLogFileFlag  string
)

// rootCmd runs the dashboard when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "lookout",
	Short: "Terminal dashboard for network service health",
	Long: `Monitor the reachability of TCP, UDP, HTTP, and HTTPS services across
your hosts from an interactive terminal dashboard.

lookout probes every configured service on a fixed cadence and shows the
latest result per service, grouped by host. Drill into a host for full
detail on each of its services.

Keyboard shortcuts:
  q / Esc / Ctrl+C  Quit
  h / ?             Toggle help
  j / down          Select next row
  k / up            Select previous row
  Enter             Open host detail
  b                 Back to overview
  r                 Refresh now

Examples:
  lookout
  lookout --hosts web1,web2
  lookout --interval 10s`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(rootHostsFlag, rootIntervalFlag, rootLogFileFlag)
	},
}

func init() {
	// Command output (tables, JSON) belongs on stdout so it pipes cleanly;
	// without this cobra's Print helpers default to stderr.
	rootCmd.SetOut(os.Stdout)

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "path to config file")
	rootCmd.Flags().StringVar(&rootHostsFlag, "hosts", "", "only monitor specific hosts (comma-separated)")
	rootCmd.Flags().StringVar(&rootIntervalFlag, "interval", "", "refresh interval override (e.g. 2s, 5s, 1m)")
	rootCmd.Flags().StringVar(&rootLogFileFlag, "log-file", "", "write engine logs to a rotating file")
}

// Execute runs the root command. Structured errors render their own
// message and suggestion; anything else prints as-is.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// dashboardCommand loads config, starts the engine, and runs the TUI until
// the operator quits.
func dashboardCommand(hostsFilter, intervalFlag, logFileFlag string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if interval, err := parseIntervalFlag(intervalFlag); err != nil {
		return err
	} else if interval > 0 {
		cfg.Settings.RefreshInterval = interval
	}

	cfg, err = applyHostsFilter(cfg, hostsFilter)
	if err != nil {
		return err
	}

	if logFileFlag != "" {
		cfg.Settings.LogFile = logFileFlag
	}

	// The dashboard owns the terminal, so engine logs go to a file when
	// one is configured and are dropped otherwise.
	log := logger.Noop()
	if cfg.Settings.LogFile != "" {
		fileLog, err := logger.NewFileLogger(cfg.Settings.LogFile)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot open log file: "+cfg.Settings.LogFile,
				"Check the path is writable, or unset log_file")
		}
		defer fileLog.Close()
		log = fileLog

		// Route package-level logging into the same file for the length
		// of the session; stderr would corrupt the alternate screen.
		logger.SetDefault(fileLog)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eng := engine.New(cfg, probe.NewDispatcher(), log)
	eng.Start(ctx)

	p := tea.NewProgram(monitor.New(eng, cfg), tea.WithAltScreen())
	_, runErr := p.Run()

	// Stop the probe loop before returning the terminal. In-flight probes
	// are bounded by their own timeouts, so cancel-and-join is enough.
	cancel()
	<-eng.Done()

	if runErr != nil {
		return errors.WrapWithCode(runErr, errors.ErrUI,
			"Dashboard terminated unexpectedly",
			"Check your terminal supports the alternate screen, or run 'lookout check' for one-shot output")
	}
	return nil
}

// loadConfig finds and loads the config file, honoring --config.
func loadConfig() (*config.Config, error) {
	path, err := config.Find(configFlag)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, errors.New(errors.ErrConfig,
			"No config file found",
			"Run 'lookout init' to create lookout.yaml, or pass one with --config")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseIntervalFlag parses an --interval override. Empty means no override.
func parseIntervalFlag(flag string) (time.Duration, error) {
	if flag == "" {
		return 0, nil
	}

	interval, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid interval: %s", flag),
			"Use a valid duration like 2s, 5s, or 1m")
	}
	if interval < config.MinRefreshInterval {
		return 0, errors.New(errors.ErrConfig,
			"Interval too short",
			fmt.Sprintf("Minimum interval is %s to avoid hammering your services", config.MinRefreshInterval))
	}
	return interval, nil
}

// applyHostsFilter restricts the config to a comma-separated host list.
func applyHostsFilter(cfg *config.Config, filter string) (*config.Config, error) {
	if filter == "" {
		if len(cfg.Hosts) == 0 {
			return nil, errors.New(errors.ErrConfig,
				"No hosts configured",
				"Add a host to lookout.yaml, or run 'lookout init' for a starter config")
		}
		return cfg, nil
	}

	filtered := cfg.FilterHosts(strings.Split(filter, ","))
	if len(filtered.Hosts) == 0 {
		return nil, errors.New(errors.ErrConfig,
			fmt.Sprintf("No hosts match '%s'", filter),
			"Double-check your host names or try without the --hosts filter")
	}
	return filtered, nil
}
