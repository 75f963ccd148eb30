package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/doramashorts/backend/internal/interfaces/cli/admin"
	"github.com/doramashorts/backend/internal/interfaces/cli/migrate"
	"github.com/doramashorts/backend/internal/interfaces/cli/server"
	"github.com/doramashorts/backend/internal/interfaces/cli/sweep"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "doramashorts",
		Short: "Dorama Shorts - subscription and entitlement backend",
		Long:  `Dorama Shorts backend with the API server, migration tools, the subscription sweep and administrative commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		sweep.NewCommand(),
		admin.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
