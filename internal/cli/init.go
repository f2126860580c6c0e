package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/lookout-dev/lookout/internal/config"
	"github.com/lookout-dev/lookout/internal/errors"
)

var (
	initHostFlag    string
	initAddressFlag string
	initForce       bool
)

// initCmd creates a new lookout.yaml configuration.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create lookout.yaml configuration",
	Long: `Initialize a new lookout configuration file.

Creates lookout.yaml in the current directory with your first host and a
couple of starter services. Guides you through the values with interactive
prompts; pass --host and --address to skip them.

Examples:
  lookout init
  lookout init --host web1 --address 192.168.1.10
  lookout init --force`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(InitOptions{
			Host:           initHostFlag,
			Address:        initAddressFlag,
			Overwrite:      initForce,
			NonInteractive: initHostFlag != "" || initAddressFlag != "",
		})
	},
}

func init() {
	initCmd.Flags().StringVar(&initHostFlag, "host", "", "pre-specify the host name")
	initCmd.Flags().StringVar(&initAddressFlag, "address", "", "pre-specify the host address")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	rootCmd.AddCommand(initCmd)
}

// InitOptions holds options for the init command.
type InitOptions struct {
	Host           string // Pre-specified host name
	Address        string // Pre-specified host address
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use provided values
}

// initCommand creates a new lookout.yaml configuration file.
func initCommand(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	hostName := opts.Host
	address := opts.Address

	if opts.NonInteractive {
		if hostName == "" {
			hostName = "local"
		}
		if address == "" {
			address = "127.0.0.1"
		}
	} else {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Host name").
					Description("A friendly name for the first monitored host").
					Placeholder("web1").
					Value(&hostName).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("host name is required")
						}
						if strings.ContainsAny(s, " \t\n") {
							return fmt.Errorf("host name cannot contain whitespace")
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Address").
					Description("Hostname or IP that probes connect to").
					Placeholder("192.168.1.10 or server.example.com").
					Value(&address).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("address is required")
						}
						return nil
					}),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try non-interactive mode: lookout init --host web1 --address 192.168.1.10")
		}
	}

	cfg := config.Sample(strings.TrimSpace(hostName), strings.TrimSpace(address))
	if err := config.Save(cfg, configPath); err != nil {
		return err
	}

	fmt.Printf("Created %s with host '%s'.\n", configPath, hostName)
	fmt.Println("Edit it to add your services, then run 'lookout' to start the dashboard.")
	return nil
}
