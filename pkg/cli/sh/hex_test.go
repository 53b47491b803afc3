package sh

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/mercator.go/pkg/env"
)

func TestParseHex(t *testing.T) {
	cases := []struct {
		args []string
		data []byte
	}{
		{[]string{"7200", "0100"}, []byte{0x72, 0, 1, 0}},
		{[]string{"72 00 01 00"}, []byte{0x72, 0, 1, 0}},
		{[]string{"0x7200:0x0100"}, []byte{0x72, 0, 1, 0}},
		{[]string{"72,00", "0X01"}, []byte{0x72, 0, 1}},
		{nil, []byte{}},
	}
	for _, c := range cases {
		data, err := ParseHex(c.args...)
		require.NoError(t, err, "%v", c.args)
		require.Equal(t, c.data, data, "%v", c.args)
	}

	_, err := ParseHex("720")
	require.Error(t, err)
	_, err = ParseHex("zz")
	require.Error(t, err)
}

func TestFormatHex(t *testing.T) {
	require.Equal(t, "72 00 01", FormatHex([]byte{0x72, 0, 1}))
	data := make([]byte, 17)
	require.Equal(t, "00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00\n00", FormatHex(data))
}

func TestParseWords(t *testing.T) {
	words, err := ParseWords([]string{"0x4142", "65535", "0"})
	require.NoError(t, err)
	require.Equal(t, []uint16{0x4142, 65535, 0}, words)

	_, err = ParseWords([]string{"65536"})
	require.Error(t, err)
	_, err = ParseWords([]string{"x"})
	require.Error(t, err)
}

func TestFormatInfo(t *testing.T) {
	info := env.DecoderInfo{Ref: env.DecoderRef{Type: "mercator", ID: "lemon"}}
	require.Equal(t, "mercator/lemon", FormatInfo(info))
	info.Meta.Description = "surface"
	require.Equal(t, "mercator/lemon: surface", FormatInfo(info))
}
