package pipeline

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// ErrNoAnalyses is returned when every URL in a competitor batch failed.
var ErrNoAnalyses = eris.New("Failed to analyze any competitors")

// GatewayError wraps a completion API transport or API failure. It is
// the one leaf failure that propagates: without a completion there is
// nothing to normalize.
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string {
	return "completion gateway: " + e.Err.Error()
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// MalformedOutputError indicates the model returned text that failed
// JSON extraction or parsing. Raw carries the original completion text
// for diagnostics.
type MalformedOutputError struct {
	Err error
	Raw string
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed model output: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Err
}
