package cmd

import (
	"github.com/spf13/cobra"

	"mosreport/internal/adapters/render"
	"mosreport/internal/application/commands"
)

var showCmd = &cobra.Command{
	Use:   "show <stock>",
	Short: "Show which snapshots feed a stock's report line",
	Long: `Show, per category, the latest snapshot file, the value taken from it and
how many snapshots the category holds.

Example:
  mosreport show ACME`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		detail, err := commands.NewShowEntityCommand(GetRepo(), args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		return render.Detail(cmd.OutOrStdout(), detail)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
