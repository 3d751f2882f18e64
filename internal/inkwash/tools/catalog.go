package tools

import (
	"github.com/inkwash/inkwash/internal/mcp"
)

const (
	DefaultDPI     = 200
	DefaultPattern = "*_processed.png"
)

// Tool definitions exposed via tools/list. The catalog is fixed for the
// process lifetime.
var (
	ToolPdfToImages = mcp.Tool{
		Name:        "pdf_to_images",
		Description: "Convert a PDF file into PNG images, one image per page.",
		InputSchema: mcp.ToolSchema{
			Type: "object",
			Properties: mcp.M{
				"pdf_path": mcp.M{
					"type":        "string",
					"description": "Absolute path of the PDF file",
				},
				"output_dir": mcp.M{
					"type":        "string",
					"description": "Output directory (optional; defaults to a sibling directory named after the PDF)",
				},
				"dpi": mcp.M{
					"type":        "integer",
					"default":     DefaultDPI,
					"description": "DPI of the rendered images (default 200)",
				},
			},
			Required: []string{"pdf_path"},
		},
	}

	ToolRemoveWatermark = mcp.Tool{
		Name:        "remove_watermark",
		Description: "Remove the watermark in the lower-right corner of images (e.g. the NotebookLM stamp). Accepts a single image or a whole directory.",
		InputSchema: mcp.ToolSchema{
			Type: "object",
			Properties: mcp.M{
				"image_path": mcp.M{
					"type":        "string",
					"description": "Path of a single image (mutually exclusive with image_dir)",
				},
				"image_dir": mcp.M{
					"type":        "string",
					"description": "Directory of images to clean (mutually exclusive with image_path)",
				},
				"output_dir": mcp.M{
					"type":        "string",
					"description": "Output directory (optional; defaults to overwriting in place)",
				},
			},
			Required: []string{},
		},
	}

	ToolImagesToPdf = mcp.Tool{
		Name:        "images_to_pdf",
		Description: "Merge the images in a directory into a single PDF. Images are sorted by file name.",
		InputSchema: mcp.ToolSchema{
			Type: "object",
			Properties: mcp.M{
				"image_dir": mcp.M{
					"type":        "string",
					"description": "Directory containing the images",
				},
				"output_path": mcp.M{
					"type":        "string",
					"description": "Path of the PDF to create",
				},
				"pattern": mcp.M{
					"type":        "string",
					"default":     DefaultPattern,
					"description": "Glob pattern selecting the images (default " + DefaultPattern + ")",
				},
			},
			Required: []string{"image_dir", "output_path"},
		},
	}

	ToolProcessPdf = mcp.Tool{
		Name:        "process_pdf",
		Description: "One-shot pipeline: convert the PDF to images, remove watermarks, merge back into a PDF.",
		InputSchema: mcp.ToolSchema{
			Type: "object",
			Properties: mcp.M{
				"pdf_path": mcp.M{
					"type":        "string",
					"description": "Path of the input PDF",
				},
				"output_path": mcp.M{
					"type":        "string",
					"description": "Path of the cleaned PDF (optional; defaults to <name>_nowatermark.pdf)",
				},
				"dpi": mcp.M{
					"type":        "integer",
					"default":     DefaultDPI,
					"description": "DPI used for the intermediate images (default 200)",
				},
			},
			Required: []string{"pdf_path"},
		},
	}
)

// Catalog returns the static tool list in the order it is advertised.
func Catalog() []mcp.Tool {
	return []mcp.Tool{
		ToolPdfToImages,
		ToolRemoveWatermark,
		ToolImagesToPdf,
		ToolProcessPdf,
	}
}
