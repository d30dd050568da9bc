package main

import (
	"github.com/spf13/cobra"
)

var rootArgs struct {
	rootPath string
	env      string
}

func Execute() error {
	rootCmd := &cobra.Command{
		Use:           "venuesim",
		Short:         "venuesim runs a simulated trading venue",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&rootArgs.rootPath, "root", ".",
		"directory holding the configuration")
	rootCmd.PersistentFlags().StringVar(&rootArgs.env, "env", "dev",
		"logger flavour (dev or prod)")

	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(runCmd())
	return rootCmd.Execute()
}
