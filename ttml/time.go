package ttml

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/sandflow/ttconv/errs"
	"github.com/sandflow/ttconv/ratime"
)

// ParseTimeExpr parses a TTML time expression (IMSC 1.1 Text Profile
// subset: clock-time "HH:MM:SS(.fff)?" or offset-time "N(h|m|s|ms|f|t)")
// into a rational time. fps is used for the frame ("f") unit.
func ParseTimeExpr(s string, fpsNum, fpsDen int64) (ratime.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ratime.Zero, errs.New(errs.KindParse, "ttml.ParseTimeExpr", "empty time expression", nil)
	}
	if strings.Contains(s, ":") {
		return parseClockTime(s, fpsNum, fpsDen)
	}
	return parseOffsetTime(s, fpsNum, fpsDen)
}

func parseClockTime(s string, fpsNum, fpsDen int64) (ratime.Time, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 3 && len(fields) != 4 {
		return ratime.Zero, errs.Newf(errs.KindParse, "ttml.ParseTimeExpr", "malformed clock-time %q", s)
	}
	hh, err1 := strconv.Atoi(fields[0])
	mm, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return ratime.Zero, errs.Newf(errs.KindParse, "ttml.ParseTimeExpr", "malformed clock-time %q", s)
	}
	secField := fields[2]
	var frames int64
	if len(fields) == 4 {
		// HH:MM:SS:FF frame form
		ff, err := strconv.Atoi(fields[3])
		if err != nil {
			return ratime.Zero, errs.Newf(errs.KindParse, "ttml.ParseTimeExpr", "malformed clock-time %q", s)
		}
		frames = int64(ff)
	}
	sec, ok := new(big.Rat).SetString(secField)
	if !ok || sec.Sign() < 0 {
		return ratime.Zero, errs.Newf(errs.KindParse, "ttml.ParseTimeExpr", "malformed clock-time %q", s)
	}
	t := ratime.FromInt(int64(hh)*3600 + int64(mm)*60).Add(ratime.FromSeconds(sec.Num().Int64(), sec.Denom().Int64()))
	if frames > 0 && fpsNum > 0 {
		t = t.Add(ratime.FromFrames(frames, fpsNum, fpsDen))
	}
	return t, nil
}

func parseOffsetTime(s string, fpsNum, fpsDen int64) (ratime.Time, error) {
	units := []string{"ms", "s", "h", "m", "f", "t"}
	for _, u := range units {
		if strings.HasSuffix(s, u) {
			numPart := strings.TrimSuffix(s, u)
			v, err := strconv.ParseFloat(numPart, 64)
			if err != nil {
				return ratime.Zero, errs.Newf(errs.KindParse, "ttml.ParseTimeExpr", "malformed offset-time %q", s)
			}
			switch u {
			case "h":
				return ratime.FromSeconds(int64(v*3600*1000), 1000), nil
			case "m":
				return ratime.FromSeconds(int64(v*60*1000), 1000), nil
			case "s":
				return ratime.FromSeconds(int64(v*1000), 1000), nil
			case "ms":
				return ratime.FromSeconds(int64(v), 1000), nil
			case "f":
				if fpsNum == 0 {
					fpsNum, fpsDen = 30, 1
				}
				return ratime.FromFrames(int64(v), fpsNum, fpsDen), nil
			case "t":
				return ratime.Zero, errs.New(errs.KindUnsupportedFeature, "ttml.ParseTimeExpr", "tick-based time (tickRate) is not supported", nil)
			}
		}
	}
	return ratime.Zero, errs.Newf(errs.KindParse, "ttml.ParseTimeExpr", "malformed time expression %q", s)
}

// FormatClockTime renders t as HH:MM:SS.mmm for writers.
func FormatClockTime(t ratime.Time) string {
	ms := int64(t.Seconds() * 1000)
	if ms < 0 {
		ms = 0
	}
	hh := ms / 3600000
	ms -= hh * 3600000
	mm := ms / 60000
	ms -= mm * 60000
	ss := ms / 1000
	ms -= ss * 1000
	return padInt2(hh) + ":" + padInt2(mm) + ":" + padInt2(ss) + "." + padInt3(ms)
}

func padInt2(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) < 2 {
		s = "0" + s
	}
	return s
}

func padInt3(n int64) string {
	s := strconv.FormatInt(n, 10)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}
