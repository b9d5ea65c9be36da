package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"explorer/internal/config"
	"explorer/internal/log"
)

var (
	version = "dev"

	cfgFile string
	debug   bool
	cfg     *config.Config
)

// Entry point for the application
func main() {
	rootCmd := &cobra.Command{
		Use:     "explorer",
		Short:   "Project explorer path engine",
		Long:    `Explorer resolves, completes, and names filesystem paths the way the project explorer does.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var err error
			if cfgFile != "" {
				cfg, err = config.LoadConfigFile(cfgFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				log.Warnf("config load failed, using defaults: %v", err)
				cfg = config.New()
			}
			log.SetDebug(debug || cfg.Debug)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/explorer/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(completeCmd())
	rootCmd.AddCommand(normalizeCmd())
	rootCmd.AddCommand(splitCmd())
	rootCmd.AddCommand(nameCmd())
	rootCmd.AddCommand(lsCmd())
	rootCmd.AddCommand(menuCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
