package telemetry

import "encoding/binary"

// AssemblerState indicates how far the in-progress frame has got.
type AssemblerState int

const (
	// AssemblerIdle means nothing is buffered.
	AssemblerIdle AssemblerState = iota
	// AssemblerLength means the length prefix is not complete yet.
	AssemblerLength
	// AssemblerBody means the expected length is known and bytes are
	// being accumulated.
	AssemblerBody
)

// AssembleResult is the result after feeding one byte.
type AssembleResult struct {
	State AssemblerState
	// Frame is set when the byte completed a frame.
	Frame *Frame
	// Discarded is the number of bytes dropped because the length prefix
	// failed the MaxLength check, Err tells why.
	Discarded int
	Err       error
}

// Assembler reassembles length-prefixed frames from a byte stream.
// The first two bytes of each frame are its total length, little-endian.
//
// The zero value is ready to use and never rejects a length prefix, which
// means a zero length buffers forever and a large one waits until that many
// bytes arrived. Set MaxLength to bound both.
type Assembler struct {
	// MaxLength rejects length prefixes that are zero or larger than it.
	// Zero disables the check.
	MaxLength int

	buf         []byte
	expected    int
	hasExpected bool
	start       int64
}

// State gets the current state.
func (a *Assembler) State() AssemblerState {
	switch {
	case len(a.buf) == 0:
		return AssemblerIdle
	case !a.hasExpected:
		return AssemblerLength
	default:
		return AssemblerBody
	}
}

// Buffered returns the number of bytes of the in-progress frame.
func (a *Assembler) Buffered() int {
	return len(a.buf)
}

// Expected returns the length read from the prefix, ok is false before
// the prefix is complete.
func (a *Assembler) Expected() (length int, ok bool) {
	return a.expected, a.hasExpected
}

// Reset drops the in-progress frame.
func (a *Assembler) Reset() {
	a.buf, a.expected, a.hasExpected, a.start = nil, 0, false, 0
}

// Feed consumes one byte.
//
// When the buffer reaches the expected length, the whole buffer becomes the
// frame and the assembler starts over. Bytes are never carried over into
// the next frame.
func (a *Assembler) Feed(ev ByteEvent) (r AssembleResult) {
	if len(a.buf) == 0 {
		a.start = ev.Start
	}
	a.buf = append(a.buf, ev.Value)
	if !a.hasExpected && len(a.buf) >= 2 {
		a.expected, a.hasExpected = int(binary.LittleEndian.Uint16(a.buf)), true
		if a.MaxLength > 0 && (a.expected == 0 || a.expected > a.MaxLength) {
			r.Discarded = len(a.buf)
			r.Err = &LengthError{Length: a.expected, Max: a.MaxLength}
			a.Reset()
			return
		}
	}
	// a zero length never completes a frame.
	if a.expected > 0 && len(a.buf) >= a.expected {
		r.Frame = &Frame{Data: a.buf, Start: a.start, End: ev.End}
		a.Reset()
	}
	r.State = a.State()
	return
}
