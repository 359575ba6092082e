package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shotbridge/shotbridge/internal/mcp"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the shotbridge version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", mcp.ServerName, mcp.ServerVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
