package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/inkwash/inkwash/internal/mcp"
)

type pdfToImagesArgs struct {
	PdfPath   string `mapstructure:"pdf_path"`
	OutputDir string `mapstructure:"output_dir"`
	DPI       int    `mapstructure:"dpi"`
}

func (r *Runner) pdfToImages(ctx context.Context, raw mcp.M) (*mcp.ToolsCallResponse, error) {
	var args pdfToImagesArgs
	if err := decodeArgs(ToolPdfToImages.Name, raw, &args); err != nil {
		return nil, err
	}

	if _, err := os.Stat(args.PdfPath); err != nil {
		return mcp.TextError(fmt.Sprintf("Error: PDF file not found: %s", args.PdfPath)), nil
	}

	dpi := args.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	outputDir := args.OutputDir
	if outputDir == "" {
		base := filepath.Base(args.PdfPath)
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		outputDir = filepath.Join(filepath.Dir(args.PdfPath), stem+"_pages")
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, err
	}

	log.Info().Str("pdf", args.PdfPath).Str("output", outputDir).Int("dpi", dpi).Msg("converting PDF to images")

	stdout, toolErr, err := r.runScript(ctx, ScriptPdfToImages, args.PdfPath, outputDir, strconv.Itoa(dpi))
	if err != nil {
		return nil, err
	}
	if toolErr != nil {
		return toolErr, nil
	}

	return mcp.TextResult(fmt.Sprintf(
		"Successfully converted PDF to images.\nOutput directory: %s\n%s",
		outputDir, stdout)), nil
}
