package scc

import (
	"strconv"
	"strings"

	"github.com/sandflow/ttconv/errs"
	"github.com/sandflow/ttconv/ratime"
)

// dropFrameFPSNum/Den and nonDropFrameFPSNum/Den are the two frame rates a
// .scc timecode can be expressed in.
const (
	dropFrameFPSNum    = 30000
	dropFrameFPSDen    = 1001
	nonDropFrameFPSNum = 30
	nonDropFrameFPSDen = 1
)

// ParseTimecode parses an SCC timecode of the form HH:MM:SS:FF (non-drop)
// or HH;MM;SS;FF / HH:MM:SS;FF (drop-frame, signaled by a semicolon
// anywhere in the separators) into an absolute rational time.
// overrideFPSNum/Den, if both non-zero, replace the inferred rate.
func ParseTimecode(tc string, overrideFPSNum, overrideFPSDen int64) (ratime.Time, error) {
	dropFrame := strings.Contains(tc, ";")
	fields := strings.FieldsFunc(tc, func(r rune) bool { return r == ':' || r == ';' })
	if len(fields) != 4 {
		return ratime.Zero, errs.Newf(errs.KindParse, "scc.ParseTimecode", "malformed timecode %q", tc)
	}
	hh, err1 := strconv.Atoi(fields[0])
	mm, err2 := strconv.Atoi(fields[1])
	ss, err3 := strconv.Atoi(fields[2])
	ff, err4 := strconv.Atoi(fields[3])
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return ratime.Zero, errs.Newf(errs.KindParse, "scc.ParseTimecode", "malformed timecode %q", tc)
	}
	if mm > 59 || ss > 59 || ff > 29 {
		return ratime.Zero, errs.Newf(errs.KindParse, "scc.ParseTimecode", "out-of-range field in timecode %q", tc)
	}

	fpsNum, fpsDen := nonDropFrameFPSNum, nonDropFrameFPSDen
	if dropFrame {
		fpsNum, fpsDen = dropFrameFPSNum, dropFrameFPSDen
	}
	override := overrideFPSNum != 0 && overrideFPSDen != 0
	if override {
		fpsNum, fpsDen = int(overrideFPSNum), int(overrideFPSDen)
	}

	frame := int64((hh*3600+mm*60+ss)*30 + ff)
	if dropFrame && !override {
		totalMinutes := int64(60*hh + mm)
		frame -= 2 * (totalMinutes - totalMinutes/10)
	}
	return ratime.FromFrames(frame, int64(fpsNum), int64(fpsDen)), nil
}
