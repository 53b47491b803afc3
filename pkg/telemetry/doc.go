// Package telemetry decodes Mercator Origins V1 telemetry.
package telemetry

// Mercator Origins V1 telemetry is sent by the Mako unit to the Lemon unit
// over a UART. It's receive-only: no acknowledgement, no flow control.
//
// Each message is a fixed 114-byte frame, 57 little-endian 16-bit words.
// Word 0 carries the frame length and word 56 carries an XOR-fold checksum
// of words 0-55. Fields are scaled integers, raw counters, ASCII label pairs
// and IEEE-754 floats split across two consecutive words.
//
// There's no start-of-frame marker, the length prefix is the only framing.
// Once the stream is out of sync it stays out of sync.
//
// Producer: Mako
// Consumer: Lemon / this decoder
