package main

import (
	"github.com/Quod-Financial/quantreplay-sub002/config"
	"github.com/Quod-Financial/quantreplay-sub002/logging"

	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "write a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.NewLoggerFromEnv(rootArgs.env)
			defer log.AtExit()

			if err := config.Write(rootArgs.rootPath, config.NewDefaultConfig()); err != nil {
				return err
			}
			log.Info("configuration written", logging.String("root", rootArgs.rootPath))
			return nil
		},
	}
}
