package export

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat indicates the caller asked for a format outside the
// supported set. Surfaced as-is; never retried.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// ErrEncodingFailed indicates a text encoder could not serialize a projection.
// This should be unreachable for well-formed entries and signals a defect
// rather than a user-facing condition.
var ErrEncodingFailed = errors.New("export encoding failed")

// RenderStage tells callers whether a PDF failure happened while creating the
// document (setup, likely resource exhaustion) or while drawing (a logic or
// cancellation condition).
type RenderStage string

const (
	StageSetup RenderStage = "setup"
	StageDraw  RenderStage = "draw"
)

// RenderError reports a fatal PDF rendering failure.
type RenderError struct {
	Stage RenderStage
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("pdf render failed during %s: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
