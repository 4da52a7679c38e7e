package conf

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	m := Map{}

	_, ok := m.Get("asn1-max-frames")
	assert.False(t, ok)

	m.Set("asn1-max-frames", "64")
	value, ok := m.Get("asn1-max-frames")
	assert.True(t, ok)
	assert.Equal(t, "64", value)
}

func TestViperSet(t *testing.T) {
	v := viper.New()
	provider := NewViper(v)

	_, ok := provider.Get("asn1-max-frames")
	assert.False(t, ok)

	v.Set("asn1-max-frames", "64")
	value, ok := provider.Get("asn1-max-frames")
	assert.True(t, ok)
	assert.Equal(t, "64", value)
}

func TestViperPFlag(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("max-frames", "", "max frames")

	v := viper.New()
	v.BindPFlag("asn1-max-frames", flags.Lookup("max-frames"))
	provider := NewViper(v)

	// A flag that has not been used does not count as set.
	_, ok := provider.Get("asn1-max-frames")
	assert.False(t, ok)

	err := flags.Parse([]string{"--max-frames", "64"})
	assert.Nil(t, err)
	value, ok := provider.Get("asn1-max-frames")
	assert.True(t, ok)
	assert.Equal(t, "64", value)
}
