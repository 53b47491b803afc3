package sh

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// ParseHex parses bytes from hex arguments. Spaces, colons and 0x
// prefixes are ignored, e.g. "72 00 01 00" or "0x7200:0100".
func ParseHex(args ...string) ([]byte, error) {
	var sb strings.Builder
	for _, arg := range args {
		for _, field := range strings.FieldsFunc(arg, func(r rune) bool {
			return r == ':' || r == ',' || r == ' '
		}) {
			field = strings.TrimPrefix(strings.TrimPrefix(field, "0x"), "0X")
			sb.WriteString(field)
		}
	}
	data, err := hex.DecodeString(sb.String())
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %v", err)
	}
	return data, nil
}

// FormatHex formats bytes as space separated hex, 16 bytes per line.
func FormatHex(data []byte) string {
	var sb strings.Builder
	for n, b := range data {
		if n > 0 {
			if n%16 == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		fmt.Fprintf(&sb, "%02x", b)
	}
	return sb.String()
}

// ParseWord parses a 16-bit word, in decimal or with a 0x prefix.
func ParseWord(str string) (uint16, error) {
	val, err := strconv.ParseUint(str, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid word %q: %v", str, err)
	}
	return uint16(val), nil
}

// ParseWords parses all arguments as words.
func ParseWords(args []string) ([]uint16, error) {
	words := make([]uint16, len(args))
	for n, arg := range args {
		w, err := ParseWord(arg)
		if err != nil {
			return nil, err
		}
		words[n] = w
	}
	return words, nil
}
