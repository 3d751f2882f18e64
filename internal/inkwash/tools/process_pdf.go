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

type processPdfArgs struct {
	PdfPath    string `mapstructure:"pdf_path"`
	OutputPath string `mapstructure:"output_path"`
	DPI        int    `mapstructure:"dpi"`
}

func (r *Runner) processPdf(ctx context.Context, raw mcp.M) (*mcp.ToolsCallResponse, error) {
	var args processPdfArgs
	if err := decodeArgs(ToolProcessPdf.Name, raw, &args); err != nil {
		return nil, err
	}

	if _, err := os.Stat(args.PdfPath); err != nil {
		return mcp.TextError(fmt.Sprintf("Error: PDF file not found: %s", args.PdfPath)), nil
	}

	dpi := args.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	outputPath := args.OutputPath
	if outputPath == "" {
		base := filepath.Base(args.PdfPath)
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		outputPath = filepath.Join(filepath.Dir(args.PdfPath), stem+"_nowatermark.pdf")
	}

	log.Info().Str("pdf", args.PdfPath).Str("output", outputPath).Int("dpi", dpi).Msg("processing PDF")

	stdout, toolErr, err := r.runScript(ctx, ScriptProcessPdf, args.PdfPath, outputPath, strconv.Itoa(dpi))
	if err != nil {
		return nil, err
	}
	if toolErr != nil {
		return toolErr, nil
	}

	return mcp.TextResult(fmt.Sprintf(
		"Successfully processed PDF and removed watermarks!\nOutput PDF: %s\n%s",
		outputPath, stdout)), nil
}
