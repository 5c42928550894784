package config

import (
	"bytes"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.config")
	defer teardown()
	//
	s := Default()
	require.NoError(t, s.Validate())
	assert.Equal(t, "screen", s.Environment().Type)
	assert.False(t, s.IsPrint())
	// 12pt at 96 dpi
	assert.InDelta(t, 16.0, s.FontSizes().Medium(false), 0.001)
	assert.InDelta(t, 96.0/72.0, s.Units().ToPix(), 0.0001)
}

func TestFromViper(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.config")
	defer teardown()
	//
	yaml := []byte(`
fonts:
  medium: 9
device:
  zoom: 200
media:
  type: Print
  width: 1024
`)
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBuffer(yaml)))
	s, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 9.0, s.Fonts.Medium)
	assert.Equal(t, 10.0, s.Fonts.MediumFixed, "missing keys take defaults")
	assert.Equal(t, 200, s.Device.Zoom)
	assert.True(t, s.IsPrint())
	assert.Equal(t, 1024.0, s.Environment().Width)
	assert.Equal(t, 600.0, s.Environment().Height)
}

func TestInvalidSettings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.config")
	defer teardown()
	//
	v := viper.New()
	v.Set("device.dpi", -1)
	s, err := FromViper(v)
	assert.Error(t, err)
	assert.Equal(t, Default(), s)
}
