package main

import (
	"os"

	"github.com/spf13/cobra"

	"scholaris/internal/interfaces/cli/migrate"
	"scholaris/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "scholaris",
		Short: "Scholaris school management platform",
		Long:  `Scholaris runs the school management HTTP API along with its database migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
