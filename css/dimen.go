package css

import (
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	// Flags for content dependent dimensions
	DimenContentMax uint32 = 0x0010
	DimenContentMin uint32 = 0x0020
	DimenContentFit uint32 = 0x0030
	contentMask     uint32 = 0x00f0

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenCH      uint32 = 0x0300
	dimenREM     uint32 = 0x0400
	dimenVW      uint32 = 0x0500
	dimenVH      uint32 = 0x0600
	dimenVMIN    uint32 = 0x0700
	dimenVMAX    uint32 = 0x0800
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d       dimen.DU
	percent percent.Percent
	factor  float64 // multiple of the relative unit, percentage points for %
	flags   uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage percent
	| ViewRel unit
	| FontRel unit
	| ContentRel Min N
	| ContentRel Max N
*/

func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n percent.Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// Content creates a content dependent dimension, given one of the flags
// DimenContentMax, DimenContentMin or DimenContentFit.
func Content(flag uint32) DimenT {
	return DimenT{flags: flag & contentMask}
}

func relative(unit uint32, factor float64) DimenT {
	return DimenT{factor: factor, flags: unit}
}

// FontRelative creates a dimension relative to a font size, e.g. 1.5em.
// Unit must be one of "em", "ex", "ch" or "rem".
func FontRelative(factor float64, unit string) DimenT {
	switch unit {
	case "ex":
		return relative(dimenEX, factor)
	case "ch":
		return relative(dimenCH, factor)
	case "rem":
		return relative(dimenREM, factor)
	}
	return relative(dimenEM, factor)
}

// ViewportRelative creates a dimension relative to the viewport, e.g. 50vw.
// Unit must be one of "vw", "vh", "vmin" or "vmax".
func ViewportRelative(factor float64, unit string) DimenT {
	switch unit {
	case "vh":
		return relative(dimenVH, factor)
	case "vmin":
		return relative(dimenVMIN, factor)
	case "vmax":
		return relative(dimenVMAX, factor)
	}
	return relative(dimenVW, factor)
}

// IsAbsolute is true for fixed dimensions.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

// IsRelative is true for percentages and dimensions relative to fonts or
// the viewport.
func (d DimenT) IsRelative() bool {
	return d.flags&relativeMask != 0
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
	case m.dimen.flags&relativeMask != 0 || d.flags&relativeMask != 0:
		if m.dimen.flags&relativeMask == 0 || d.flags&relativeMask == 0 {
			return nil
		}
		if (m.dimen.flags&relativeMask == dimenPercent) != (d.flags&relativeMask == dimenPercent) {
			return nil
		}
		return m
	case m.dimen.flags&contentMask != 0 || d.flags&contentMask != 0:
		if m.dimen.flags&contentMask != 0 && d.flags&contentMask != 0 {
			return m
		}
		return nil
	case (m.dimen.flags & kindMask) == (d.flags & kindMask):
		return m
	}
	return nil
}

func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

func (m *Matcher) Percentage(p *percent.Percent) *Matcher {
	if m.dimen.flags&relativeMask == dimenPercent {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// Relative matches font and viewport relative dimensions and extracts the
// factor.
func (m *Matcher) Relative(factor *float64) *Matcher {
	if rel := m.dimen.flags & relativeMask; rel != 0 && rel != dimenPercent {
		if factor != nil {
			*factor = m.dimen.factor
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

type DimenPatterns[T any] struct {
	Auto     T
	Inherit  T
	Initial  T
	Just     T
	Relative T
	Default  T
}

func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

type MatchExpr[T any] struct {
	dimen DimenT
}

func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	if m.dimen.flags&relativeMask != 0 {
		return patterns.Relative
	}
	switch m.dimen.flags & kindMask {
	case dimenAuto:
		return patterns.Auto
	case dimenAbsolute:
		return patterns.Just
	case dimenInitial:
		return patterns.Initial
	case dimenInherit:
		return patterns.Inherit
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
