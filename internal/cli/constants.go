package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConstantsCmd(global *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "Print the effective model constants as YAML",
		Long:  `Prints the model constants after applying the configuration file. The output can be pasted under the "constants" key of vignes.yaml.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap(*global)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(app.Estimator.Constants()); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
