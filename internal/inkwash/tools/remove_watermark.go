package tools

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/inkwash/inkwash/internal/mcp"
)

type removeWatermarkArgs struct {
	ImagePath string `mapstructure:"image_path"`
	ImageDir  string `mapstructure:"image_dir"`
	OutputDir string `mapstructure:"output_dir"`
}

func (r *Runner) removeWatermark(ctx context.Context, raw mcp.M) (*mcp.ToolsCallResponse, error) {
	var args removeWatermarkArgs
	if err := decodeArgs(ToolRemoveWatermark.Name, raw, &args); err != nil {
		return nil, err
	}

	if args.ImagePath == "" && args.ImageDir == "" {
		return mcp.TextError("Error: Either image_path or image_dir must be provided"), nil
	}

	var scriptArgs []string
	switch {
	case args.ImagePath != "":
		if _, err := os.Stat(args.ImagePath); err != nil {
			return mcp.TextError(fmt.Sprintf("Error: Image file not found: %s", args.ImagePath)), nil
		}
		scriptArgs = append(scriptArgs, "--image", args.ImagePath)
		log.Info().Str("image", args.ImagePath).Msg("removing watermark from image")
	default:
		if !isDir(args.ImageDir) {
			return mcp.TextError(fmt.Sprintf("Error: Directory not found: %s", args.ImageDir)), nil
		}
		scriptArgs = append(scriptArgs, "--dir", args.ImageDir)
		log.Info().Str("dir", args.ImageDir).Msg("removing watermarks from directory")
	}

	if args.OutputDir != "" {
		if err := os.MkdirAll(args.OutputDir, 0755); err != nil {
			return nil, err
		}
		scriptArgs = append(scriptArgs, "--output", args.OutputDir)
	}

	stdout, toolErr, err := r.runScript(ctx, ScriptRemoveWatermark, scriptArgs...)
	if err != nil {
		return nil, err
	}
	if toolErr != nil {
		return toolErr, nil
	}

	return mcp.TextResult(fmt.Sprintf("Successfully removed watermarks.\n%s", stdout)), nil
}
