package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shotbridge/shotbridge/internal/capture"
	"github.com/shotbridge/shotbridge/internal/mcp"
	"github.com/shotbridge/shotbridge/internal/screen"
)

var shotCmd = &cobra.Command{
	Use:   "shot",
	Short: "Capture a screenshot",
	Long: `Capture the full virtual screen, one monitor, or one application window
to an image file.

Window selectors are honored in priority order: --handle, --number,
--title, --process. Without a selector the capture targets monitors
(--monitor, default: all).`,
	Example: `  # Full virtual screen into the default folder
  shotbridge shot

  # Primary monitor only
  shotbridge shot --monitor primary

  # First window titled like "chrome", allowing a focus fallback
  shotbridge shot --title chrome --allow-focus

  # Window 2 of the notepad-filtered listing, restoring it if minimized
  shotbridge shot --number 2 --filter notepad --restore-if-minimized`,
	RunE: runShot,
}

var shotArgs mcp.TakeScreenshotInput

func init() {
	rootCmd.AddCommand(shotCmd)

	shotCmd.Flags().StringVarP(&shotArgs.Filename, "filename", "o", "", "output file name (extension selects png or bmp)")
	shotCmd.Flags().StringVarP(&shotArgs.Monitor, "monitor", "m", "", "monitor number, \"primary\", or \"all\"")
	shotCmd.Flags().StringVarP(&shotArgs.WindowTitle, "title", "t", "", "window title substring")
	shotCmd.Flags().StringVarP(&shotArgs.ProcessName, "process", "p", "", "owning process name substring")
	shotCmd.Flags().IntVarP(&shotArgs.WindowNumber, "number", "n", 0, "1-based window number from the listing")
	shotCmd.Flags().StringVar(&shotArgs.WindowHandle, "handle", "", "exact window handle (0x hex or decimal)")
	shotCmd.Flags().StringVarP(&shotArgs.Filter, "filter", "f", "", "narrow the enumeration before selection")
	shotCmd.Flags().BoolVar(&shotArgs.AllowFocus, "allow-focus", false, "permit foregrounding the window when background capture fails")
	shotCmd.Flags().BoolVar(&shotArgs.RestoreIfMinimized, "restore-if-minimized", false, "restore a minimized window for the capture")
	shotCmd.Flags().StringVar(&shotArgs.Folder, "folder", "", "output folder (Windows or WSL form)")
}

func runShot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	backend := screen.New()
	out, err := mcp.TakeScreenshot(backend, capture.NewEngine(backend), cfg, shotArgs)
	if err != nil {
		var f *screen.Failure
		if errors.As(err, &f) {
			msg := f.Msg
			if f.Err != nil {
				msg += ": " + f.Err.Error()
			}
			return fmt.Errorf("%s failure: %s", f.Kind, msg)
		}
		return err
	}

	fmt.Printf("saved %s (%dx%d, %s)\n", out.Path, out.Width, out.Height, out.Strategy)
	return nil
}
