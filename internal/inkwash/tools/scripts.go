package tools

import (
	"os"
	"path/filepath"

	"github.com/inkwash/inkwash/internal/errors"
)

const EnvScriptsDir = "INKWASH_SCRIPTS_DIR"

// Script file names, one per tool (process_pdf runs the whole chain inside
// a single script so the staging directories never cross the process
// boundary).
const (
	ScriptPdfToImages     = "pdf_to_images.py"
	ScriptRemoveWatermark = "remove_watermark.py"
	ScriptImagesToPdf     = "images_to_pdf.py"
	ScriptProcessPdf      = "process_pdf.py"
)

// DiscoverScriptsDir resolves the directory holding the conversion scripts:
// the INKWASH_SCRIPTS_DIR environment variable first, then locations next
// to the executable, then ./scripts. Every candidate must exist; when none
// does the error lists what was searched.
func DiscoverScriptsDir() (string, error) {
	var searched []string

	if dir := os.Getenv(EnvScriptsDir); dir != "" {
		if isDir(dir) {
			return dir, nil
		}
		searched = append(searched, dir)
	}

	if exe, err := os.Executable(); err == nil {
		parent := filepath.Dir(exe)
		candidates := []string{
			filepath.Join(parent, "scripts"),
			filepath.Join(parent, "..", "scripts"),
		}
		for _, cand := range candidates {
			if isDir(cand) {
				return filepath.Abs(cand)
			}
			searched = append(searched, cand)
		}
	}

	if cwd, err := os.Getwd(); err == nil {
		cand := filepath.Join(cwd, "scripts")
		if isDir(cand) {
			return cand, nil
		}
		searched = append(searched, cand)
	}

	return "", errors.ScriptsDirNotFound(searched)
}

func isDir(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && stat.IsDir()
}
