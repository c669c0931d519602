package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mosreport/internal/adapters/filesystem"
	"mosreport/internal/config"
	"mosreport/internal/logger"
	"mosreport/internal/ports"
)

var (
	rootPath   string
	configPath string
	logLevel   string
	repo       ports.ResearchRepository
)

var rootCmd = &cobra.Command{
	Use:   "mosreport",
	Short: "Summarize the latest research snapshots of every stock",
	Long: `mosreport reads the research folders under <root>/Evaluation and prints one
line per stock with its current price, screen rating, management and moat
scores, total score and both margin-of-safety buy prices.

A stock folder is reported only when it holds all of 01-data, 02-screen,
03-management, 04-moat and 05-mos. Within each folder the JSON file with the
greatest name is taken as the latest snapshot.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return setup(cmd)
	},
	RunE: runReport,
}

func setup(cmd *cobra.Command) error {
	path, explicit := config.ConfigFile()
	if cmd.Flags().Changed("config") {
		path, explicit = configPath, true
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return err
	}

	level := cfg.LogLevel()
	if cmd.Flags().Changed("log-level") {
		level = logLevel
	}
	if err := logger.Init(level, cmd.ErrOrStderr()); err != nil {
		logger.Log.Warnf("unknown log level %q, using %s", level, logger.DefaultLevel)
	}

	root := cfg.RootPath()
	if cmd.Flags().Changed("root") {
		root = rootPath
	}
	logger.Log.Debugf("research root: %s", root)

	repo = filesystem.NewRepository(root)
	return nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", config.DefaultRootPath, "research root containing the Evaluation folder")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigFile, "path to the config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logger.DefaultLevel, "log level (debug, info, warn, error)")
	addReportFlags(rootCmd)
}

// GetRepo returns the initialized repository
func GetRepo() ports.ResearchRepository {
	return repo
}
