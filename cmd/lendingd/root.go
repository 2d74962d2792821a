package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:           "lendingd",
		Short:         "Library lending service",
		Long:          "HTTP service managing a library catalog, a lending ledger and hold fulfillment.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			// A missing .env file is fine, the environment may already be set.
			if err := godotenv.Load(envFile); err != nil && envFile != defaultEnvFile {
				return err
			}

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", defaultEnvFile, "env file to load before reading configuration")

	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}

const defaultEnvFile = ".env"
