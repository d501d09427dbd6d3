// Package vtt writes a model.Document as WebVTT text.
package vtt

import (
	"fmt"
	"io"

	"github.com/sandflow/ttconv/internal/cues"
	"github.com/sandflow/ttconv/model"
	"github.com/sandflow/ttconv/ratime"
)

// Options mirrors vtt_writer.*.
type Options struct {
	LinePosition bool
	TextAlign    bool
	CueID        bool
}

// Write renders d as a WebVTT file.
func Write(d *model.Document, w io.Writer, opts Options) error {
	cs, err := cues.Extract(d)
	if err != nil {
		return err
	}
	fmt.Fprint(w, "WEBVTT\n\n")
	for i, c := range cs {
		end := c.End
		if end.IsInfinite() {
			end = c.Begin.Add(ratime.FromInt(5))
		}
		if opts.CueID {
			fmt.Fprintf(w, "%d\n", i+1)
		}
		fmt.Fprintf(w, "%s --> %s\n%s\n\n", formatTimestamp(c.Begin), formatTimestamp(end), c.Text)
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
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hh, mm, ss, ms)
}
