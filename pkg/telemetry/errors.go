package telemetry

import (
	"errors"
	"fmt"
)

var (
	// ErrShortFrame indicates fewer than FrameSize bytes were given.
	ErrShortFrame = errors.New("short frame")
)

// LengthError reports a length prefix rejected by Assembler.MaxLength.
type LengthError struct {
	Length int
	Max    int
}

// Error implements error.
func (e *LengthError) Error() string {
	return fmt.Sprintf("implausible frame length %d (max %d)", e.Length, e.Max)
}
