package telemetry

import (
	"encoding/binary"
)

// buildFrame encodes words into a frame. Words not given are zero, word 0
// defaults to FrameSize and the checksum is computed unless given.
func buildFrame(words map[int]uint16) []byte {
	w := make([]uint16, WordCount)
	w[0] = FrameSize
	for n, v := range words {
		w[n] = v
	}
	data := make([]byte, FrameSize)
	for n, v := range w {
		binary.LittleEndian.PutUint16(data[n*2:], v)
	}
	if _, ok := words[ChecksumWord]; !ok {
		binary.LittleEndian.PutUint16(data[ChecksumOffset:], Checksum(data[:ChecksumOffset]))
	}
	return data
}

func byteEvents(data []byte, from int64) []ByteEvent {
	events := make([]ByteEvent, len(data))
	for n, b := range data {
		pos := from + int64(n)*10
		events[n] = ByteEvent{Value: b, Start: pos, End: pos + 9}
	}
	return events
}
