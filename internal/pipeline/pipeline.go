// Package pipeline runs the extract, compose and save steps for one comic
// strip.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"comic-relayout/internal/config"
	stripimage "comic-relayout/internal/image"
	"comic-relayout/internal/layout"
	"comic-relayout/internal/panel"
)

// ErrNoLayouts is returned when the panel count has no usable grid shape.
var ErrNoLayouts = errors.New("no images generated")

// Output is one generated image.
type Output struct {
	Layout layout.Layout
	Path   string
}

// Result summarises a run.
type Result struct {
	Panels  int
	Grid    layout.Grid
	Outputs []Output
}

// Run extracts the panels of cfg.InputPath and writes one image per
// possible layout into cfg.OutputDir. The output directory is created
// before the input is read.
func Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	level, err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	if !stripimage.IsSupportedFormat(cfg.InputPath) {
		return nil, fmt.Errorf("%w: %s (supported: %s)", stripimage.ErrUnsupportedFormat,
			cfg.InputPath, strings.Join(stripimage.SupportedFormats(), ", "))
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	layer, err := stripimage.Load(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	size := layer.Size()
	slog.Info("Extracting panels...", "input", layer.Path, "width", size.X, "height", size.Y)
	panels, err := panel.Extract(layer.Image)
	if err != nil {
		return nil, fmt.Errorf("failed to extract panels from %s: %w", layer.Path, err)
	}

	res := &Result{Panels: len(panels)}
	layouts := layout.Layouts(len(panels))
	if len(layouts) == 0 {
		slog.Info("Panels found", "count", len(panels))
		return res, fmt.Errorf("%w: %d panels", ErrNoLayouts, len(panels))
	}

	res.Grid, err = layout.NewGrid(panels, cfg.Padding)
	if err != nil {
		return nil, err
	}
	slog.Info("Panels found",
		"count", len(panels),
		"width", res.Grid.PanelWidth,
		"height", res.Grid.PanelHeight)
	slog.Debug("Signature", "extra_height", res.Grid.SignatureGap)

	for _, l := range layouts {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		slog.Info("Constructing image...", "layout", l.String())
		img, err := layout.Construct(l, panels, cfg.Padding)
		if err != nil {
			return res, fmt.Errorf("failed to construct %s: %w", l, err)
		}

		path, err := stripimage.SavePNG(img, cfg.OutputDir, l.Filename(), level)
		if err != nil {
			return res, err
		}
		slog.Info("Saved", "path", path)
		res.Outputs = append(res.Outputs, Output{Layout: l, Path: path})
	}

	return res, nil
}
