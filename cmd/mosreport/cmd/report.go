package cmd

import (
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"mosreport/internal/adapters/render"
	"mosreport/internal/application/commands"
	"mosreport/internal/logger"
)

var (
	reportFormat string
	copyReport   bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the snapshot summary of every stock",
	Long: `Print the header followed by one line per qualifying stock.

Examples:
  mosreport report --root ~/Research
  mosreport report --format table
  mosreport report --copy`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(reportFormat)
	if err != nil {
		return err
	}

	report, err := commands.NewBuildReportCommand(GetRepo()).Execute(cmd.Context())
	if err != nil {
		return err
	}

	if err := render.Report(cmd.OutOrStdout(), report, format); err != nil {
		return err
	}

	if copyReport {
		text, err := render.String(report, render.FormatCSV)
		if err != nil {
			return err
		}
		if err := clipboard.WriteAll(text); err != nil {
			logger.Log.WithError(err).Warn("could not copy report to clipboard")
		} else {
			logger.Log.Info("report copied to clipboard")
		}
	}
	return nil
}

func addReportFlags(c *cobra.Command) {
	c.Flags().StringVarP(&reportFormat, "format", "f", string(render.FormatCSV), "output format (csv, table)")
	c.Flags().BoolVar(&copyReport, "copy", false, "also copy the CSV report to the clipboard")
}

func init() {
	addReportFlags(reportCmd)
	rootCmd.AddCommand(reportCmd)
}
