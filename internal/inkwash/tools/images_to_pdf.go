package tools

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/inkwash/inkwash/internal/errors"
	"github.com/inkwash/inkwash/internal/mcp"
)

type imagesToPdfArgs struct {
	ImageDir   string `mapstructure:"image_dir"`
	OutputPath string `mapstructure:"output_path"`
	Pattern    string `mapstructure:"pattern"`
}

func (r *Runner) imagesToPdf(ctx context.Context, raw mcp.M) (*mcp.ToolsCallResponse, error) {
	var args imagesToPdfArgs
	if err := decodeArgs(ToolImagesToPdf.Name, raw, &args); err != nil {
		return nil, err
	}

	if args.ImageDir == "" || args.OutputPath == "" {
		return nil, errors.ToolArgsInvalid(ToolImagesToPdf.Name,
			fmt.Errorf("image_dir and output_path are required"))
	}

	if !isDir(args.ImageDir) {
		return mcp.TextError(fmt.Sprintf("Error: Directory not found: %s", args.ImageDir)), nil
	}

	pattern := args.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}

	log.Info().Str("dir", args.ImageDir).Str("output", args.OutputPath).Str("pattern", pattern).Msg("merging images to PDF")

	stdout, toolErr, err := r.runScript(ctx, ScriptImagesToPdf, args.ImageDir, args.OutputPath, pattern)
	if err != nil {
		return nil, err
	}
	if toolErr != nil {
		return toolErr, nil
	}

	return mcp.TextResult(fmt.Sprintf("Successfully created PDF: %s\n%s", args.OutputPath, stdout)), nil
}
