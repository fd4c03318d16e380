package cmd

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, err := bootstrap()
		return err
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
