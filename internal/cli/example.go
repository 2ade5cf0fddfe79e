package cli

import (
	"fmt"

	"github.com/exitsim/exit-value-estimator/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newExampleCommand(a *app) *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write the default parameter file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if outputFile == "" {
				b, err := yaml.Marshal(cfg)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			if err := config.SaveConfiguration(cfg, outputFile); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", outputFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "file to write (prints to stdout when empty)")
	return cmd
}
