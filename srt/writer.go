// Package srt writes a model.Document as SubRip (SRT) text.
package srt

import (
	"fmt"
	"io"

	"github.com/sandflow/ttconv/internal/cues"
	"github.com/sandflow/ttconv/model"
	"github.com/sandflow/ttconv/ratime"
)

// Options mirrors srt_writer.*.
type Options struct {
	// TextFormatting is accepted but has no effect: Write always emits
	// plain text, with no bold/italic/underline markup.
	TextFormatting bool
}

// Write renders d as SubRip text.
func Write(d *model.Document, w io.Writer, _ Options) error {
	cs, err := cues.Extract(d)
	if err != nil {
		return err
	}
	for i, c := range cs {
		end := c.End
		if end.IsInfinite() {
			// SRT has no open-ended cue notation; hold the last cue for a
			// fixed duration past its begin time.
			end = c.Begin.Add(ratime.FromInt(5))
		}
		fmt.Fprintf(w, "%d\n%s --> %s\n%s\n\n", i+1, formatTimestamp(c.Begin), formatTimestamp(end), c.Text)
	}
	return nil
}

func formatTimestamp(t ratime.Time) string {
	ms := int64(t.Seconds()*1000 + 0.5)
	if ms < 0 {
		ms = 0
	}
	hh := ms / 3600000
	ms -= hh * 3600000
	mm := ms / 60000
	ms -= mm * 60000
	ss := ms / 1000
	ms -= ss * 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hh, mm, ss, ms)
}
