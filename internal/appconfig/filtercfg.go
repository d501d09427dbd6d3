package appconfig

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandflow/ttconv/ttml"
)

// FilterConfig builds the per-filter cfg map the filter package expects,
// keyed by filter name. Only "lcd" is recognized.
func (c *Config) FilterConfig() (map[string]map[string]any, error) {
	m := map[string]any{
		"safe_area":           c.LCD.SafeArea,
		"preserve_text_align": c.LCD.PreserveTextAlign,
	}
	if c.LCD.Color != "" {
		col, err := ttml.ParseColor(c.LCD.Color)
		if err != nil {
			return nil, fmt.Errorf("lcd.color: %w", err)
		}
		m["color"] = col
	}
	if c.LCD.BgColor != "" {
		col, err := ttml.ParseColor(c.LCD.BgColor)
		if err != nil {
			return nil, fmt.Errorf("lcd.bg_color: %w", err)
		}
		m["bg_color"] = col
	}
	return map[string]map[string]any{"lcd": m}, nil
}

// FPS parses imsc_writer.fps ("num/denom") into its numerator and
// denominator, defaulting to 30/1 when unset.
func (c *Config) FPS() (int64, int64, error) {
	s := c.IMSCWriter.FPS
	if s == "" {
		return 30, 1, nil
	}
	parts := strings.SplitN(s, "/", 2)
	num, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("imsc_writer.fps: invalid value %q", s)
	}
	den := int64(1)
	if len(parts) == 2 {
		if den, err = strconv.ParseInt(parts[1], 10, 64); err != nil {
			return 0, 0, fmt.Errorf("imsc_writer.fps: invalid value %q", s)
		}
	}
	if den == 0 {
		return 0, 0, fmt.Errorf("imsc_writer.fps: zero denominator")
	}
	return num, den, nil
}
