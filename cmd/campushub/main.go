package main

import (
	"os"

	"github.com/spf13/cobra"

	"campushub/internal/interfaces/cli/migrate"
	"campushub/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "campushub",
		Short: "CampusHub - campus cafeteria and hostel services portal",
		Long:  `CampusHub serves the campus cafeteria ordering widget and the hostel complaint tracker behind one HTTP API.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
