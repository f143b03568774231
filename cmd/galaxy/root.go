package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/vi-galaxy/config"
)

var (
	configPath string
	debug      bool
	logFile    *os.File
)

var rootCmd = &cobra.Command{
	Use:   "galaxy",
	Short: "galaxy, a site map you can fly through",
	Long: brand.Sprint("✦ galaxy") + ", sites as stars in a terminal galaxy\n" +
		subtle.Sprint("Hover to inspect, click to fly in, Esc to pull back"),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logFile = setupLogging(debug)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "galaxy.toml", "Config file (missing file uses defaults)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write logs to "+logDir+"/"+logFileName)

	rootCmd.AddCommand(
		runCmd(),
		sitesCmd(),
		layoutCmd(),
		configCmd(),
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (config.Config, error) {
	return config.Load(configPath)
}

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return config.Encode(cmd.OutOrStdout(), cfg)
		},
	}
}
