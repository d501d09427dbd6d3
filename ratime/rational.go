// Package ratime implements the exact rational time and length primitives
// the Canonical Document Model is built on: time is never a
// float, so two documents that describe the same instants compare equal bit
// for bit regardless of how the numerator/denominator were produced.
package ratime

import (
	"fmt"
	"math"
	"math/big"
)

// Time is a non-negative exact rational number of seconds.
type Time struct {
	r *big.Rat
}

// Zero is the time origin.
var Zero = Time{r: big.NewRat(0, 1)}

// PositiveInfinity represents an unbounded end time.
// Comparisons treat it as greater than every finite Time.
var PositiveInfinity = Time{r: nil}

// FromSeconds builds a Time from an integer numerator/denominator pair of
// seconds, e.g. FromSeconds(22, 30) for frame 22 at 30fps.
func FromSeconds(num, den int64) Time {
	if den == 0 {
		panic("ratime: zero denominator")
	}
	return Time{r: big.NewRat(num, den)}
}

// FromInt builds a Time representing a whole number of seconds.
func FromInt(seconds int64) Time {
	return Time{r: big.NewRat(seconds, 1)}
}

// FromFrames converts a frame count at the given frames-per-second rational
// rate (num/den, e.g. 30000/1001 for NTSC drop-frame) into a Time.
func FromFrames(frames int64, fpsNum, fpsDen int64) Time {
	// seconds = frames * fpsDen / fpsNum
	r := new(big.Rat).SetFrac(big.NewInt(frames*fpsDen), big.NewInt(fpsNum))
	return Time{r: r}
}

// IsInfinite reports whether t is PositiveInfinity.
func (t Time) IsInfinite() bool { return t.r == nil }

// Rat returns the underlying *big.Rat. Returns nil for PositiveInfinity.
func (t Time) Rat() *big.Rat { return t.r }

// Add returns t + o. Adding to PositiveInfinity stays PositiveInfinity.
func (t Time) Add(o Time) Time {
	if t.IsInfinite() || o.IsInfinite() {
		return PositiveInfinity
	}
	return Time{r: new(big.Rat).Add(t.r, o.r)}
}

// Sub returns t - o. Panics if the result would need to subtract infinity
// from infinity (undefined); subtracting a finite value from infinity stays
// infinite.
func (t Time) Sub(o Time) Time {
	if o.IsInfinite() {
		if t.IsInfinite() {
			panic("ratime: infinity minus infinity is undefined")
		}
		panic("ratime: cannot subtract infinity from a finite time")
	}
	if t.IsInfinite() {
		return PositiveInfinity
	}
	return Time{r: new(big.Rat).Sub(t.r, o.r)}
}

// Cmp compares t to o: -1 if t<o, 0 if t==o, 1 if t>o. PositiveInfinity
// compares greater than every finite value and equal to itself.
func (t Time) Cmp(o Time) int {
	switch {
	case t.IsInfinite() && o.IsInfinite():
		return 0
	case t.IsInfinite():
		return 1
	case o.IsInfinite():
		return -1
	default:
		return t.r.Cmp(o.r)
	}
}

func (t Time) Less(o Time) bool    { return t.Cmp(o) < 0 }
func (t Time) LessEq(o Time) bool  { return t.Cmp(o) <= 0 }
func (t Time) Equal(o Time) bool   { return t.Cmp(o) == 0 }
func (t Time) Greater(o Time) bool { return t.Cmp(o) > 0 }

// Min returns the lesser of a and b.
func Min(a, b Time) Time {
	if a.Less(b) {
		return a
	}
	return b
}

// Max returns the greater of a and b.
func Max(a, b Time) Time {
	if a.Greater(b) {
		return a
	}
	return b
}

// IsNegative reports whether t is strictly less than zero. PositiveInfinity
// is never negative.
func (t Time) IsNegative() bool {
	if t.IsInfinite() {
		return false
	}
	return t.r.Sign() < 0
}

// Seconds returns a float64 approximation, for display/debugging only -
// never for comparisons or arithmetic that must be exact.
func (t Time) Seconds() float64 {
	if t.IsInfinite() {
		return math.Inf(1)
	}
	f, _ := t.r.Float64()
	return f
}

// ToFrames converts t to a frame count at the given fps rational rate,
// truncating toward zero.
func (t Time) ToFrames(fpsNum, fpsDen int64) int64 {
	if t.IsInfinite() {
		panic("ratime: cannot convert infinite time to frames")
	}
	// frames = seconds * fpsNum / fpsDen
	num := new(big.Int).Mul(t.r.Num(), big.NewInt(fpsNum))
	den := new(big.Int).Mul(t.r.Denom(), big.NewInt(fpsDen))
	q := new(big.Int).Quo(num, den)
	return q.Int64()
}

func (t Time) String() string {
	if t.IsInfinite() {
		return "+Inf"
	}
	return fmt.Sprintf("%s/%ss", t.r.Num().String(), t.r.Denom().String())
}
