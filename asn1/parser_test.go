package asn1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mapConf map[string]string

func (m mapConf) Get(key string) (string, bool) {
	value, ok := m[key]
	return value, ok
}

func TestParserDefaults(t *testing.T) {
	parser := NewParser(nil)
	data, err := parser.Parse("bitstring_overflow")
	assert.Nil(t, err)
	assert.True(t, data.BitstringOverflow)
	assert.Equal(t, DefaultMaxFrames, data.MaxFrames)

	// An empty configuration behaves the same as none.
	parser = NewParser(mapConf{})
	data, err = parser.Parse("bitstring_overflow")
	assert.Nil(t, err)
	assert.Equal(t, DefaultMaxFrames, data.MaxFrames)
}

func TestParserMaxFramesOverride(t *testing.T) {
	parser := NewParser(mapConf{MaxFramesKey: "64"})
	data, err := parser.Parse("oversize_length 1024")
	assert.Nil(t, err)
	assert.Equal(t, uint16(64), data.MaxFrames)

	// The full 16 bit range is usable, including zero.
	parser = NewParser(mapConf{MaxFramesKey: "0"})
	data, err = parser.Parse("oversize_length 1024")
	assert.Nil(t, err)
	assert.Equal(t, uint16(0), data.MaxFrames)

	parser = NewParser(mapConf{MaxFramesKey: "65535"})
	data, err = parser.Parse("oversize_length 1024")
	assert.Nil(t, err)
	assert.Equal(t, uint16(65535), data.MaxFrames)
}

// Override values that do not parse as a 16 bit unsigned integer are
// ignored.
func TestParserMaxFramesBadOverride(t *testing.T) {
	values := []string{
		"",
		"banana",
		"-1",
		"65536",
		"30.5",
	}
	for _, value := range values {
		parser := NewParser(mapConf{MaxFramesKey: value})
		data, err := parser.Parse("bitstring_overflow")
		assert.Nil(t, err)
		assert.Equal(t, DefaultMaxFrames, data.MaxFrames,
			"override %q should have been ignored", value)
	}
}

func TestParserMaxFrames(t *testing.T) {
	parser := NewParser(nil)
	assert.Equal(t, DefaultMaxFrames, parser.MaxFrames())

	parser = NewParser(mapConf{MaxFramesKey: "64"})
	assert.Equal(t, uint16(64), parser.MaxFrames())

	parser = NewParser(mapConf{MaxFramesKey: "bad"})
	assert.Equal(t, DefaultMaxFrames, parser.MaxFrames())
}

func TestParserInvalidEncoding(t *testing.T) {
	parser := NewParser(nil)
	data, err := parser.Parse(string([]byte{0xe2, 0x28, 0xa1}))
	assert.Nil(t, data)
	assert.Equal(t, ErrInvalidEncoding, err)
}

func TestParserParseError(t *testing.T) {
	parser := NewParser(mapConf{MaxFramesKey: "64"})
	data, err := parser.Parse("some_other_param 360")
	assert.Nil(t, data)
	assert.NotNil(t, err)
	parseErr, ok := err.(*UnrecognizedOptionError)
	assert.True(t, ok)
	assert.Equal(t, "some_other_param 360", parseErr.Remainder)
}
