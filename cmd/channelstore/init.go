// Init command creates the database file and schema.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database and schema",
	Long: `Init opens (or creates) the database file and ensures the channels,
sources, and sites tables exist. Safe to run repeatedly; existing data is
never touched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		fmt.Printf("Initialized store at %s\n", store.Path())
		return nil
	},
}
