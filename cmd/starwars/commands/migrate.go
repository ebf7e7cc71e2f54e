package commands

import (
	"github.com/spf13/cobra"
)

// InitDB migrates on connect, so migrate only has to connect.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := connect()
		return err
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
