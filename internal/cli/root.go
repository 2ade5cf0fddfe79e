package cli

import (
	"fmt"

	"github.com/exitsim/exit-value-estimator/internal/config"
	"github.com/exitsim/exit-value-estimator/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by subcommands once the root pre-run has loaded it.
type app struct {
	settingsFile string
	logLevel     string
	debug        bool

	settings *config.Settings
	logger   *zap.Logger
}

// NewRootCommand builds the exitsim command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "exitsim",
		Short: "Monte Carlo estimator of a company's exit value",
		Long: `exitsim simulates two years of uncertain revenue growth and an uncertain
exit multiple to estimate the distribution of a company's exit value.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.settingsFile, "settings", "", "application settings file (yaml, json or toml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable development logging")

	root.AddCommand(
		newRunCommand(a),
		newValidateCommand(a),
		newExampleCommand(a),
		newServeCommand(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	settings, err := config.LoadSettings(a.settingsFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		settings.LogLevel = a.logLevel
	}
	if a.debug {
		settings.Development = true
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{
		Level:       settings.LogLevel,
		Development: settings.Development,
		Output:      cmd.ErrOrStderr(),
		File:        settings.LogFile,
	})
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	a.settings = settings
	a.logger = logger
	return nil
}
