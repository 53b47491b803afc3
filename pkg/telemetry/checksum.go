package telemetry

// ChecksumResult is the outcome of checksum validation for one frame.
type ChecksumResult struct {
	Computed uint16
	Received uint16
	Valid    bool
}

// Checksum folds data as little-endian words with XOR, starting from zero.
// A trailing odd byte is not included.
func Checksum(data []byte) uint16 {
	var sum uint16
	for i := 0; i+1 < len(data); i += 2 {
		sum ^= uint16(data[i]) | uint16(data[i+1])<<8
	}
	return sum
}

// ValidateChecksum computes the checksum over the first 112 bytes of frame
// and compares it with word 56. frame must hold at least FrameSize bytes.
func ValidateChecksum(frame []byte) ChecksumResult {
	r := ChecksumResult{
		Computed: Checksum(frame[:ChecksumOffset]),
		Received: uint16(frame[ChecksumOffset]) | uint16(frame[ChecksumOffset+1])<<8,
	}
	r.Valid = r.Computed == r.Received
	return r
}
