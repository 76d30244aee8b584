package log

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Errors that stop a command before it does any work.
var (
	ErrMalformedConfig = newFatalError("ERR_MALFORMED_CONFIG", "config file is malformed")
	ErrBadFlags        = newFatalError("ERR_BAD_FLAGS", "bad CLI flags")
)

// FatalError is an error with a stable code that a command exits with.
type FatalError struct {
	Code   string
	Text   string
	Reason error
}

func newFatalError(code, text string) func(reason error) *FatalError {
	return func(reason error) *FatalError {
		return &FatalError{
			Code:   code,
			Text:   text,
			Reason: reason,
		}
	}
}

func (fe *FatalError) Error() string {
	if fe.Reason == nil {
		return fe.Text
	}
	return fmt.Sprintf("%s: %v", fe.Text, fe.Reason)
}

func (fe *FatalError) Unwrap() error {
	return fe.Reason
}

// MarshalLogObject implements logging encoder for FatalError.
func (fe *FatalError) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("code", fe.Code)
	encoder.AddString("error", fe.Error())
	return nil
}
