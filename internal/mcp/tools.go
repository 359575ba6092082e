package mcp

import (
	"context"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shotbridge/shotbridge/internal/capture"
	"github.com/shotbridge/shotbridge/internal/config"
	"github.com/shotbridge/shotbridge/internal/pathmap"
	"github.com/shotbridge/shotbridge/internal/screen"
	"github.com/shotbridge/shotbridge/internal/target"
)

// handleListWindows enumerates and renders the current window set. Like
// take_screenshot, domain failures become payloads with ok=false rather than
// tool errors.
func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	windows, err := target.ListWindows(s.backend, args.Filter)
	if err != nil {
		s.log.Warn().Str("kind", screen.KindOf(err).String()).Err(err).Msg("list_windows failed")
		return nil, ListWindowsOutput{
			ErrorKind: screen.KindOf(err).String(),
			Error:     err.Error(),
		}, nil
	}

	out := ListWindowsOutput{
		OK:      true,
		Listing: RenderListing(windows, args.Format),
		Count:   len(windows),
		Windows: make([]WindowEntry, 0, len(windows)),
	}
	for _, w := range windows {
		out.Windows = append(out.Windows, WindowEntry{
			Number:  w.Index,
			Title:   w.Title,
			Process: w.Process,
			PID:     w.PID,
			Handle:  w.Handle.String(),
			State:   w.State.String(),
		})
	}

	s.log.Debug().Str("filter", args.Filter).Int("count", out.Count).Msg("list_windows")
	return nil, out, nil
}

// handleTakeScreenshot runs one full capture transaction: resolve the
// output location, resolve the target, capture, save, verify. Every domain
// failure becomes a payload with ok=false; only transport-level problems
// surface as tool errors.
func (s *Server) handleTakeScreenshot(_ context.Context, _ *mcpsdk.CallToolRequest, args TakeScreenshotInput) (*mcpsdk.CallToolResult, TakeScreenshotOutput, error) {
	out, err := TakeScreenshot(s.backend, s.engine, s.config, args)
	if err != nil {
		s.log.Warn().Str("kind", screen.KindOf(err).String()).Err(err).Msg("take_screenshot failed")
		return nil, TakeScreenshotOutput{
			OK:        false,
			ErrorKind: screen.KindOf(err).String(),
			Error:     err.Error(),
		}, nil
	}
	s.log.Info().Str("path", out.Path).Str("strategy", out.Strategy).Msg("take_screenshot saved")
	return nil, out, nil
}

// TakeScreenshot is the shared request path behind both the MCP tool and
// the CLI shot command.
func TakeScreenshot(backend screen.Backend, engine *capture.Engine, cfg *config.Config, args TakeScreenshotInput) (TakeScreenshotOutput, error) {
	filename := args.Filename
	if filename == "" {
		filename = pathmap.DefaultFilename(cfg.ImageFormat)
	} else {
		filename = pathmap.NormalizeFilename(filename, cfg.ImageFormat)
	}

	loc, err := pathmap.Resolve(args.Folder, cfg.OutputFolder, filename)
	if err != nil {
		return TakeScreenshotOutput{}, err
	}

	var result *capture.Result
	if hasWindowSelector(args) {
		sel, err := target.NewSelector(args.WindowHandle, args.WindowNumber, args.WindowTitle, args.ProcessName, args.Filter)
		if err != nil {
			return TakeScreenshotOutput{}, err
		}
		w, err := target.Resolve(backend, sel)
		if err != nil {
			return TakeScreenshotOutput{}, err
		}
		result, err = engine.Window(w, engineOptions(cfg, args))
		if err != nil {
			return TakeScreenshotOutput{}, err
		}
	} else {
		region, err := target.ResolveMonitorRegion(backend, args.Monitor)
		if err != nil {
			return TakeScreenshotOutput{}, err
		}
		result, err = engine.Region(region)
		if err != nil {
			return TakeScreenshotOutput{}, err
		}
	}

	if err := capture.Save(result.Image, loc.LocalPath); err != nil {
		return TakeScreenshotOutput{}, err
	}

	bounds := result.Image.Bounds()
	return TakeScreenshotOutput{
		OK:       true,
		Path:     loc.NativePath,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Strategy: string(result.Strategy),
	}, nil
}

func hasWindowSelector(args TakeScreenshotInput) bool {
	return args.WindowHandle != "" || args.WindowNumber != 0 ||
		args.WindowTitle != "" || args.ProcessName != ""
}

func engineOptions(cfg *config.Config, args TakeScreenshotInput) capture.Options {
	return capture.Options{
		AllowFocus:          args.AllowFocus,
		RestoreIfMinimized:  args.RestoreIfMinimized,
		Padding:             cfg.PaddingPx,
		SettleDelay:         time.Duration(cfg.SettleDelayMs) * time.Millisecond,
		RestorePollInterval: time.Duration(cfg.RestorePollIntervalMs) * time.Millisecond,
		RestorePollAttempts: cfg.RestorePollAttempts,
	}
}
