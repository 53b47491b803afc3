package telemetry

import (
	"math"
	"strings"
)

// DecodeFloat reinterprets two consecutive words (lo first, as they appear
// on the wire) as an IEEE-754 single precision float.
func DecodeFloat(lo, hi uint16) float32 {
	return math.Float32frombits(uint32(hi)<<16 | uint32(lo))
}

// EncodeFloat splits a float into the word pair DecodeFloat expects.
func EncodeFloat(f float32) (lo, hi uint16) {
	bits := math.Float32bits(f)
	return uint16(bits), uint16(bits >> 16)
}

// DecodeLabel decodes ASCII pairs, low byte first. Bytes above 0x7f are
// taken as Latin-1 code points.
func DecodeLabel(words ...uint16) string {
	var sb strings.Builder
	for _, w := range words {
		sb.WriteRune(rune(w & 0xff))
		sb.WriteRune(rune((w >> 8) & 0xff))
	}
	return sb.String()
}

// EncodeLabel packs a label into words of ASCII pairs. The label is padded
// with zero bytes or truncated to fill exactly n words. Runes beyond Latin-1
// are replaced by '?'.
func EncodeLabel(label string, n int) []uint16 {
	raw := make([]byte, 0, n*2)
	for _, r := range label {
		if len(raw) == n*2 {
			break
		}
		if r > 0xff {
			r = '?'
		}
		raw = append(raw, byte(r))
	}
	for len(raw) < n*2 {
		raw = append(raw, 0)
	}
	words := make([]uint16, n)
	for i := range words {
		words[i] = uint16(raw[i*2]) | uint16(raw[i*2+1])<<8
	}
	return words
}
