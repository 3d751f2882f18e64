package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCreation(t *testing.T) {
	err := New("test", "test message", nil)
	if err.Type != "test" || err.Message != "test message" {
		t.Errorf("New() created incorrect error: %v", err)
	}

	cause := fmt.Errorf("original error")
	err = New("test", "test with cause", cause)
	if err.Cause != cause {
		t.Errorf("New() did not set cause correctly: %v", err)
	}

	expected := "test: test with cause: original error"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestErrorWrapping(t *testing.T) {
	original := fmt.Errorf("original error")
	wrapped := Wrap(original, "wrapped", "wrapped message")

	if wrapped.Type != "wrapped" || wrapped.Message != "wrapped message" {
		t.Errorf("Wrap() created incorrect error: %v", wrapped)
	}

	if wrapped.Cause != original {
		t.Errorf("Wrap() did not set cause correctly")
	}

	appErr := New("app", "app error", nil)
	rewrapped := Wrap(appErr, "ignored", "new message")

	if rewrapped.Type != "app" {
		t.Errorf("Wrap() did not preserve original AppError type: got %s, want %s",
			rewrapped.Type, appErr.Type)
	}

	if rewrapped.Message != "new message" {
		t.Errorf("Wrap() did not update message: got %s, want %s",
			rewrapped.Message, "new message")
	}

	if Wrap(nil, "any", "any") != nil {
		t.Errorf("Wrap(nil) should return nil")
	}
}

func TestErrorChain(t *testing.T) {
	root := fmt.Errorf("root cause")
	mid := New(ErrTypeTool, "script failed", root)
	top := Wrap(mid, ErrTypeInternal, "call failed")

	if !errors.Is(top, root) {
		t.Errorf("errors.Is should find root cause through the chain")
	}

	if RootCause(top) != root {
		t.Errorf("RootCause() = %v, want %v", RootCause(top), root)
	}

	if !Is(top, ErrTypeTool) {
		t.Errorf("Is() should report the preserved type of the wrapped error")
	}

	if GetType(fmt.Errorf("plain")) != "unknown" {
		t.Errorf("GetType() on non-AppError should be unknown")
	}
}

func TestDomainErrors(t *testing.T) {
	err := ToolNotFound("bogus_tool")
	if !Is(err, ErrTypeNotFound) {
		t.Errorf("ToolNotFound should have type %s, got %s", ErrTypeNotFound, err.Type)
	}
	if err.Message != "Unknown tool: bogus_tool" {
		t.Errorf("ToolNotFound message = %q", err.Message)
	}

	cause := fmt.Errorf("exec: not found")
	serr := ScriptFailed("pdf_to_images.py", cause)
	if !Is(serr, ErrTypeTool) || serr.Cause != cause {
		t.Errorf("ScriptFailed did not carry type/cause: %v", serr)
	}
}
