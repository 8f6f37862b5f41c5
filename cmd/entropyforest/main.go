package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/entropyforest/pkg/config"
	"github.com/YuminosukeSato/entropyforest/pkg/log"
)

type rootCmdConfig struct {
	logLevel   string
	configPath string
}

func main() {
	if err := cliParser().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootConfig := &rootCmdConfig{}
	rootCmd := &cobra.Command{
		Use:           "entropyforest",
		Short:         "entropyforest grows entropy-based decision trees and forests",
		Long:          `A tool to train decision trees, bagged trees and random forests on numeric data, score them on a held-out split, export them and classify new samples.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return log.SetupLogger(rootConfig.logLevel, cmd.ErrOrStderr())
		},
	}
	rootCmd.PersistentFlags().StringVar(&rootConfig.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVarP(&rootConfig.configPath, "config", "c", "", "path to a YAML file with run settings")
	rootCmd.AddCommand(versionCmd(), trainCmd(rootConfig), predictCmd(rootConfig), interactiveCmd(rootConfig))
	return rootCmd
}

// baseConfig returns the YAML settings, or the defaults when no file was given.
// A log_level in the file applies unless --log-level was set.
func (rc *rootCmdConfig) baseConfig(cmd *cobra.Command) (config.Config, error) {
	if rc.configPath == "" {
		cfg := config.Default()
		cfg.LogLevel = rc.logLevel
		return cfg, nil
	}
	cfg, err := config.Load(rc.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = rc.logLevel
	} else if err := log.SetupLogger(cfg.LogLevel, cmd.ErrOrStderr()); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
