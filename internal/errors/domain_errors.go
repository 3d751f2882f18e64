package errors

import (
	"fmt"
)

// Tool invocation errors

// ToolNotFound reports an unknown tool name in a tools/call request.
func ToolNotFound(name string) *AppError {
	return New(ErrTypeNotFound, fmt.Sprintf("Unknown tool: %s", name), nil)
}

// ToolArgsInvalid reports arguments that do not decode into the tool's shape.
func ToolArgsInvalid(tool string, cause error) *AppError {
	return New(ErrTypeInvalidArg, fmt.Sprintf("invalid arguments for %s", tool), cause)
}

// ScriptFailed reports a conversion script that could not be started.
func ScriptFailed(script string, cause error) *AppError {
	return New(ErrTypeTool, fmt.Sprintf("Failed to execute %s", script), cause)
}

// Config errors

// Config creates a configuration error.
func Config(message string, cause error) *AppError {
	return New(ErrTypeConfig, message, cause)
}

// ScriptsDirNotFound reports that no scripts directory could be resolved.
func ScriptsDirNotFound(searched []string) *AppError {
	return New(ErrTypeConfig, fmt.Sprintf("scripts directory not found (searched: %v)", searched), nil)
}

// Internal creates an internal error.
func Internal(message string, cause error) *AppError {
	return New(ErrTypeInternal, message, cause).WithStack()
}
