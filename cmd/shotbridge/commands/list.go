package commands

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/shotbridge/shotbridge/internal/screen"
	"github.com/shotbridge/shotbridge/internal/target"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List visible application windows",
	Long: `List every visible, titled top-level window with its 1-based number,
title and owning process. The number feeds 'shot --number'.`,
	Example: `  # List all windows
  shotbridge list

  # Only windows whose title or process matches "chrome"
  shotbridge list --filter chrome

  # Include process ids, handles and window states
  shotbridge list --detailed`,
	RunE: runList,
}

var (
	listFilter   string
	listDetailed bool
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "substring matched against titles and process names")
	listCmd.Flags().BoolVarP(&listDetailed, "detailed", "d", false, "include pid, handle and window state")
}

func runList(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	windows, err := target.ListWindows(screen.New(), listFilter)
	if err != nil {
		return err
	}
	if len(windows) == 0 {
		fmt.Println("no windows found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	if listDetailed {
		t.AppendHeader(table.Row{"#", "Title", "Process", "PID", "Handle", "State"})
		for _, w := range windows {
			t.AppendRow(table.Row{w.Index, w.Title, w.Process, w.PID, w.Handle, w.State})
		}
	} else {
		t.AppendHeader(table.Row{"#", "Title", "Process"})
		for _, w := range windows {
			t.AppendRow(table.Row{w.Index, w.Title, w.Process})
		}
	}
	t.Render()
	return nil
}
