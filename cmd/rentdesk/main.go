package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/beesaferoot/rentdesk/property/commands"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "rentdesk",
		Short: "Single-building property management dashboard",
	}

	rootCmd.AddCommand(
		commands.ServeCmd(),
		commands.InitDBCmd(),
		commands.StatusCmd(),
		commands.LedgerCmd(),
		commands.BackupCmd(),
		commands.RegisterCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
