package cli

import (
	"fmt"

	"github.com/exitsim/exit-value-estimator/internal/config"
	"github.com/exitsim/exit-value-estimator/internal/output"
	"github.com/spf13/cobra"
)

func newValidateCommand(a *app) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a parameter file without running the simulation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFile(configFile)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Configuration %s is valid\n", configFile)
			fmt.Fprintf(out, "  Starting ARR:   %s\n", output.FormatCurrency(cfg.StartingARR))
			fmt.Fprintf(out, "  Growth:         %s / %s / %s\n",
				output.FormatPercentage(cfg.GrowthBounds.Low),
				output.FormatPercentage(cfg.GrowthBounds.Mode),
				output.FormatPercentage(cfg.GrowthBounds.High))
			fmt.Fprintf(out, "  Exit multiple:  %gx / %gx / %gx\n",
				cfg.ExitMultipleBounds.Low, cfg.ExitMultipleBounds.Mode, cfg.ExitMultipleBounds.High)
			fmt.Fprintf(out, "  Simulations:    %d\n", cfg.NumSimulations)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "parameter file (yaml)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
