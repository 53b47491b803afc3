package telemetry

import "encoding/binary"

// Wire layout.
const (
	// FrameSize is the size in bytes of a complete frame.
	FrameSize = 114
	// WordCount is the number of 16-bit words in a frame.
	WordCount = FrameSize / 2
	// ChecksumOffset is the byte offset of the checksum word.
	ChecksumOffset = FrameSize - 2
	// ChecksumWord is the index of the checksum word.
	ChecksumWord = WordCount - 1
)

// ByteEvent is one byte observed on the serial line.
type ByteEvent struct {
	Value byte
	// Start and End mark when the byte was observed, either as sample
	// positions or as timestamps, depending on the source.
	Start int64
	End   int64
}

// Frame is a complete length-delimited unit produced by Assembler.
type Frame struct {
	Data  []byte
	Start int64
	End   int64
}

// Words returns the first 57 words of the frame, or nil if the frame
// is shorter than FrameSize.
func (f *Frame) Words() []uint16 {
	if len(f.Data) < FrameSize {
		return nil
	}
	return DecodeWords(f.Data[:FrameSize])
}

// DecodeWords interprets data as consecutive little-endian words.
// A trailing odd byte is ignored.
func DecodeWords(data []byte) []uint16 {
	words := make([]uint16, len(data)/2)
	for n := range words {
		words[n] = binary.LittleEndian.Uint16(data[n*2:])
	}
	return words
}
