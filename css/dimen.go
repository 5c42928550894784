package css

import (
	"fmt"
	"math"

	"github.com/npillmayer/tyse/core/dimen"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute  uint32 = 0x0001
	dimenAuto      uint32 = 0x0002
	dimenUnbounded uint32 = 0x0003 // max-width: none etc.
	kindMask       uint32 = 0x000f

	// Flags for content dependent dimensions
	DimenContentMax uint32 = 0x0010
	DimenContentMin uint32 = 0x0020
	DimenContentFit uint32 = 0x0030
	contentMask     uint32 = 0x00f0

	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for computed CSS dimensions.
//
// Font-relative and physical units are resolved to absolute dimensions while
// cascading; only percentages (which need a containing block) and the
// keywords `auto` and `none` survive into a computed style.
type DimenT struct {
	d       dimen.DU
	percent float64
	flags   uint32
}

/*
type DimenT
	= Unset
	| Auto
	| None
	| JustDimen dimen
	| Percentage float
	| ContentRel Min N
	| ContentRel Max N
*/

// Auto creates a dimension of value `auto`.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Unbounded creates a dimension of value `none`, as used by max-width.
func Unbounded() DimenT {
	return DimenT{flags: dimenUnbounded}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Px creates a CSS dimension of a fixed number of CSS pixels.
func Px(px float64) DimenT {
	return JustDimen(PxToDU(px))
}

// Zero is a fixed dimension of 0.
func Zero() DimenT {
	return DimenT{flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n float64) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// pxDU is one CSS pixel (3/4 of a big point) in design units.
const pxDU = dimen.BP * 3 / 4

// PxToDU converts CSS pixels (1/96 in) to design units.
func PxToDU(px float64) dimen.DU {
	return dimen.DU(math.Round(px * float64(pxDU)))
}

// DUToPx converts design units to CSS pixels.
func DUToPx(d dimen.DU) float64 {
	return float64(d) / float64(pxDU)
}

// IsUnset is true for the zero value.
func (d DimenT) IsUnset() bool { return d.flags == dimenNone }

// IsAuto is true for `auto`.
func (d DimenT) IsAuto() bool { return d.flags&kindMask == dimenAuto }

// IsUnbounded is true for `none`.
func (d DimenT) IsUnbounded() bool { return d.flags&kindMask == dimenUnbounded }

// IsAbsolute is true for fixed dimensions.
func (d DimenT) IsAbsolute() bool { return d.flags&kindMask == dimenAbsolute }

// IsPercent is true for %-relative dimensions.
func (d DimenT) IsPercent() bool { return d.flags&dimenPercent == dimenPercent }

// Dimen returns the fixed value or 0.
func (d DimenT) Dimen() dimen.DU {
	if d.IsAbsolute() {
		return d.d
	}
	return 0
}

// Px returns the fixed value in CSS pixels, or 0.
func (d DimenT) Px() float64 {
	return DUToPx(d.Dimen())
}

// Percent returns the percentage value or 0.
func (d DimenT) Percent() float64 {
	if d.IsPercent() {
		return d.percent
	}
	return 0
}

// IsZero is true for fixed dimensions of 0 and for 0%.
func (d DimenT) IsZero() bool {
	return (d.IsAbsolute() && d.d == 0) || (d.IsPercent() && d.percent == 0)
}

// Resolve returns the absolute value of d, using base for percentages.
// `auto`, `none` and unset resolve to 0.
func (d DimenT) Resolve(base dimen.DU) dimen.DU {
	switch {
	case d.IsAbsolute():
		return d.d
	case d.IsPercent():
		return dimen.DU(math.Round(float64(base) * d.percent / 100))
	}
	return 0
}

func (d DimenT) String() string {
	switch {
	case d.IsUnset():
		return "unset"
	case d.IsAuto():
		return "auto"
	case d.IsUnbounded():
		return "none"
	case d.IsPercent():
		return fmt.Sprintf("%g%%", d.percent)
	}
	return fmt.Sprintf("%gpx", math.Round(d.Px()*1000)/1000)
}

// ---------------------------------------------------------------------------

func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

type Matcher struct {
	dimen DimenT
}

func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags&relativeMask > 0) || (d.flags&relativeMask > 0):
		if (m.dimen.flags&dimenPercent > 0) != (d.flags&dimenPercent > 0) {
			return nil
		}
		return m
	case (m.dimen.flags & kindMask) == (d.flags & kindMask):
		return m
	case (m.dimen.flags&contentMask > 0) && (d.flags&contentMask > 0):
		return m
	}
	return nil
}

func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.IsAbsolute() {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

func (m *Matcher) Percentage(p *float64) *Matcher {
	if m.dimen.IsPercent() {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

type DimenPatterns[T any] struct {
	Auto    T
	None    T
	Just    T
	Percent T
	Default T
}

func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

type MatchExpr[T any] struct {
	dimen DimenT
}

func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch {
	case m.dimen.IsAuto():
		return patterns.Auto
	case m.dimen.IsUnbounded():
		return patterns.None
	case m.dimen.IsAbsolute():
		return patterns.Just
	case m.dimen.IsPercent():
		return patterns.Percent
	}
	return patterns.Default
}

func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

func (m *MatchExpr[T]) Const(x T) T {
	return x
}
