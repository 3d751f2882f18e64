package tools

import (
	"context"

	"github.com/inkwash/inkwash/internal/mcp"
)

// Invoker is the capability boundary between the protocol pipeline and the
// conversion tools. A returned error means the invocation itself failed
// (unknown tool, undecodable arguments, script could not run); the caller
// reports it as an error-marked call result, never as a protocol error. A
// non-nil result with IsError set is a tool-domain failure and is passed
// through as is.
type Invoker interface {
	Invoke(ctx context.Context, name string, args mcp.M) (*mcp.ToolsCallResponse, error)
}
