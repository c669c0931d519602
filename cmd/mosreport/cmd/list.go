package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"mosreport/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stocks that have every category folder",
	Long: `List the folders under Evaluation that qualify for the report.

Example:
  mosreport list --root ~/Research`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entities, err := commands.NewListEntitiesCommand(GetRepo()).Execute(cmd.Context())
		if err != nil {
			return err
		}

		for _, e := range entities {
			fmt.Fprintln(cmd.OutOrStdout(), e.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
