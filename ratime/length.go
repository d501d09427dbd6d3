package ratime

import (
	"fmt"
	"math/big"
)

// Unit enumerates the length units a timed-text length may carry.
type Unit string

const (
	UnitCell    Unit = "c"
	UnitPercent Unit = "%"
	UnitPixel   Unit = "px"
	UnitEm      Unit = "em"
	UnitRH      Unit = "rh"
	UnitRW      Unit = "rw"
)

// ValidUnits is the closed set of units a Length may carry.
var ValidUnits = map[Unit]bool{
	UnitCell: true, UnitPercent: true, UnitPixel: true,
	UnitEm: true, UnitRH: true, UnitRW: true,
}

// Length is a rational value paired with a unit.
type Length struct {
	Value *big.Rat
	Unit  Unit
}

// NewLength builds a Length, rejecting unknown units.
func NewLength(num, den int64, unit Unit) (Length, error) {
	if !ValidUnits[unit] {
		return Length{}, fmt.Errorf("unknown length unit %q", unit)
	}
	return Length{Value: big.NewRat(num, den), Unit: unit}, nil
}

func (l Length) String() string {
	f, _ := l.Value.Float64()
	return fmt.Sprintf("%g%s", f, l.Unit)
}

// Resolution describes the root container's cell and pixel dimensions used
// to convert between units.
type Resolution struct {
	CellWidth, CellHeight int
	PxWidth, PxHeight     int
}

// DefaultResolution is the root container's default cell/pixel size: 32x15 cells, 1920x1080 px.
var DefaultResolution = Resolution{CellWidth: 32, CellHeight: 15, PxWidth: 1920, PxHeight: 1080}

// ToRootRelative converts l to rh (for vertical-axis lengths) or rw (for
// horizontal-axis lengths) using res, the ISD normalization rule for
// position/origin/extent. horizontal selects which axis l belongs to.
func (l Length) ToRootRelative(res Resolution, horizontal bool) Length {
	if l.Unit == UnitRW || l.Unit == UnitRH {
		return l
	}
	pxPerRW := big.NewRat(int64(res.PxWidth), 100)
	pxPerRH := big.NewRat(int64(res.PxHeight), 100)

	var px *big.Rat
	switch l.Unit {
	case UnitPixel:
		px = new(big.Rat).Set(l.Value)
	case UnitPercent:
		if horizontal {
			px = new(big.Rat).Mul(l.Value, big.NewRat(int64(res.PxWidth), 100))
		} else {
			px = new(big.Rat).Mul(l.Value, big.NewRat(int64(res.PxHeight), 100))
		}
	case UnitCell:
		if horizontal {
			px = new(big.Rat).Mul(l.Value, big.NewRat(int64(res.PxWidth), int64(res.CellWidth)))
		} else {
			px = new(big.Rat).Mul(l.Value, big.NewRat(int64(res.PxHeight), int64(res.CellHeight)))
		}
	case UnitEm:
		// 1em is approximated as one cell height, the IMSC convention for
		// text-relative lengths when no font metrics are available.
		px = new(big.Rat).Mul(l.Value, big.NewRat(int64(res.PxHeight), int64(res.CellHeight)))
	default:
		px = new(big.Rat).Set(l.Value)
	}

	if horizontal {
		return Length{Value: new(big.Rat).Quo(px, pxPerRW), Unit: UnitRW}
	}
	return Length{Value: new(big.Rat).Quo(px, pxPerRH), Unit: UnitRH}
}
