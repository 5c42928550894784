/*
Package css provides value types for computed CSS properties.

Computed styles do not carry the textual form of a property, but rather
small typed values: dimensions, display modes, enumerations for keyword
properties, and bit-sets for text decorations. This package also hosts the
numeric side of styling, i.e. conversion of CSS units to absolute
dimensions and the table of keyword font sizes.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.style'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.style")
}
