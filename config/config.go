/*
Package config holds the settings of the style engine: font sizes, device
resolution, zoom and the media environment style sheets are evaluated for.

Settings may be loaded from any source supported by viper. Keys are

	fonts.medium          medium font size in points
	fonts.medium_fixed    medium font size of fixed-pitch fonts, in points
	fonts.minimum         minimum font size in pixels, 0 for none
	device.dpi            logical resolution
	device.zoom           zoom factor in percent
	media.type            "screen" or "print"
	media.width           viewport width in CSS pixels
	media.height          viewport height in CSS pixels

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/cascade/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/viper"
)

// tracer traces with key 'cascade.config'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.config")
}

// Settings configures a style resolver.
type Settings struct {
	Fonts  FontSettings   `mapstructure:"fonts"`
	Device DeviceSettings `mapstructure:"device"`
	Media  MediaSettings  `mapstructure:"media"`
}

// FontSettings holds the base font sizes.
type FontSettings struct {
	Medium      float64 `mapstructure:"medium"`       // pt
	MediumFixed float64 `mapstructure:"medium_fixed"` // pt
	Minimum     float64 `mapstructure:"minimum"`      // px
}

// DeviceSettings describes the output device.
type DeviceSettings struct {
	DPI  float64 `mapstructure:"dpi"`
	Zoom int     `mapstructure:"zoom"` // percent
}

// MediaSettings describe the media environment for @media rules.
type MediaSettings struct {
	Type   string  `mapstructure:"type"`
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

// Default returns the default settings: 12pt proportional and 10pt
// fixed-pitch fonts, 96 dpi, no zoom, and an 800×600 screen.
func Default() Settings {
	return Settings{
		Fonts:  FontSettings{Medium: 12, MediumFixed: 10},
		Device: DeviceSettings{DPI: 96, Zoom: 100},
		Media:  MediaSettings{Type: "screen", Width: 800, Height: 600},
	}
}

// SetDefaults registers the default settings with a viper instance.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("fonts.medium", d.Fonts.Medium)
	v.SetDefault("fonts.medium_fixed", d.Fonts.MediumFixed)
	v.SetDefault("fonts.minimum", d.Fonts.Minimum)
	v.SetDefault("device.dpi", d.Device.DPI)
	v.SetDefault("device.zoom", d.Device.Zoom)
	v.SetDefault("media.type", d.Media.Type)
	v.SetDefault("media.width", d.Media.Width)
	v.SetDefault("media.height", d.Media.Height)
}

// FromViper reads settings from a viper instance. Keys missing in v are
// taken from the defaults.
func FromViper(v *viper.Viper) (Settings, error) {
	SetDefaults(v)
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Default(), fmt.Errorf("error unmarshaling style settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Default(), err
	}
	s.Media.Type = strings.ToLower(s.Media.Type)
	tracer().Debugf("style settings: %+v", s)
	return s, nil
}

// Validate checks settings for values the engine cannot work with.
func (s Settings) Validate() error {
	switch {
	case s.Fonts.Medium <= 0 || s.Fonts.MediumFixed <= 0:
		return fmt.Errorf("medium font sizes must be positive, are %g/%g", s.Fonts.Medium, s.Fonts.MediumFixed)
	case s.Fonts.Minimum < 0:
		return fmt.Errorf("minimum font size must not be negative, is %g", s.Fonts.Minimum)
	case s.Device.DPI <= 0:
		return fmt.Errorf("dpi must be positive, is %g", s.Device.DPI)
	case s.Device.Zoom < 0:
		return fmt.Errorf("zoom must not be negative, is %d", s.Device.Zoom)
	}
	return nil
}

// Units returns a unit resolver for the device settings.
func (s Settings) Units() css.UnitResolver {
	return css.UnitResolver{DPI: s.Device.DPI, Zoom: s.Device.Zoom}
}

// FontSizes computes the font size table.
func (s Settings) FontSizes() *css.FontSizeTable {
	return css.NewFontSizeTable(s.Fonts.Medium, s.Fonts.MediumFixed, s.Fonts.Minimum, s.Units())
}

// Environment returns the media environment for evaluating @media rules.
func (s Settings) Environment() cssom.MediaEnvironment {
	return cssom.MediaEnvironment{Type: s.Media.Type, Width: s.Media.Width, Height: s.Media.Height}
}

// IsPrint is true for print media.
func (s Settings) IsPrint() bool {
	return s.Media.Type == "print"
}
