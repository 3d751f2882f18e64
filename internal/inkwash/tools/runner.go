package tools

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"

	"github.com/inkwash/inkwash/internal/errors"
	"github.com/inkwash/inkwash/internal/inkwash/conf"
	"github.com/inkwash/inkwash/internal/mcp"
)

// Runner executes the python conversion scripts. It is the concrete Invoker
// used in production; tests substitute their own.
type Runner struct {
	scriptsDir string
	pythonBin  string
}

func NewRunner(c *conf.ServerConfig) (*Runner, error) {
	dir := c.ScriptsDir
	if dir == "" {
		var err error
		dir, err = DiscoverScriptsDir()
		if err != nil {
			return nil, err
		}
	}
	log.Info().Str("scripts_dir", dir).Str("python", c.GetPythonBin()).Msg("tool runner ready")
	return &Runner{
		scriptsDir: dir,
		pythonBin:  c.GetPythonBin(),
	}, nil
}

func (r *Runner) Invoke(ctx context.Context, name string, args mcp.M) (*mcp.ToolsCallResponse, error) {
	id := uuid.New().String()
	logger := log.With().Str("invocation", id).Str("tool", name).Logger()
	start := time.Now()

	var (
		resp *mcp.ToolsCallResponse
		err  error
	)
	switch name {
	case ToolPdfToImages.Name:
		resp, err = r.pdfToImages(ctx, args)
	case ToolRemoveWatermark.Name:
		resp, err = r.removeWatermark(ctx, args)
	case ToolImagesToPdf.Name:
		resp, err = r.imagesToPdf(ctx, args)
	case ToolProcessPdf.Name:
		resp, err = r.processPdf(ctx, args)
	default:
		return nil, errors.ToolNotFound(name)
	}

	if err != nil {
		logger.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("invocation failed")
		return nil, err
	}
	logger.Info().Bool("is_error", resp.IsError).Dur("elapsed", time.Since(start)).Msg("invocation finished")
	return resp, nil
}

// runScript executes one script with captured output. A non-zero exit is a
// tool-domain failure and comes back as an error-marked result; failing to
// start the interpreter at all is an invocation error.
func (r *Runner) runScript(ctx context.Context, script string, args ...string) (string, *mcp.ToolsCallResponse, error) {
	path := filepath.Join(r.scriptsDir, script)

	cmd := exec.CommandContext(ctx, r.pythonBin, append([]string{path}, args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return "", mcp.TextError("Error running " + script + ": " + stderr.String()), nil
		}
		return "", nil, errors.ScriptFailed(script, err)
	}

	return stdout.String(), nil, nil
}

// decodeArgs maps the raw arguments object onto a per-tool struct. Weak
// typing is on because peers routinely send integers as JSON numbers or
// strings.
func decodeArgs(tool string, args mcp.M, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return errors.Internal("failed to build argument decoder", err)
	}
	if args == nil {
		args = mcp.M{}
	}
	if err := dec.Decode(map[string]interface{}(args)); err != nil {
		return errors.ToolArgsInvalid(tool, err)
	}
	return nil
}
