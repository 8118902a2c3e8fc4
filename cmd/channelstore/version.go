// Version command for the channelstore CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/feedforge/channelstore/pkg/channelstore"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the channelstore version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("channelstore", channelstore.Version)
	},
}
