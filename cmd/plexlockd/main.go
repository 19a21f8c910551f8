package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagHome    = "home"
	flagConfig  = "config"
	flagListen  = "listen"
	flagDB      = "db-backend"
	flagLogLvl  = "log-level"
	flagLogJSON = "log-json"
)

var version = "dev"

func main() {
	cobra.EnableCommandSorting = false
	rootCmd := &cobra.Command{
		Use:   "plexlockd",
		Short: "plexlock accounting engine daemon",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			cfgFile := viper.GetString(flagConfig)
			if cfgFile == "" {
				return nil
			}
			viper.SetConfigFile(cfgFile)
			return viper.ReadInConfig()
		},
	}

	rootCmd.PersistentFlags().String(flagHome, defaultHome(), "directory for config and data")
	rootCmd.PersistentFlags().String(flagConfig, "", "config file (optional, overrides flags)")
	rootCmd.PersistentFlags().String(flagLogLvl, "info", "log level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().Bool(flagLogJSON, false, "emit logs as JSON")

	rootCmd.AddCommand(startCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the daemon version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}

func defaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".plexlockd"
	}
	return home + "/.plexlockd"
}
