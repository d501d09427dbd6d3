// Package cues extracts a plain-text cue sequence from a model.Document by
// sampling its ISD at every significant time, shared by the SRT and WebVTT
// writers.
package cues

import (
	"strings"

	"github.com/sandflow/ttconv/isd"
	"github.com/sandflow/ttconv/model"
	"github.com/sandflow/ttconv/ratime"
)

// Cue is one coalesced, non-empty text cue.
type Cue struct {
	Begin, End ratime.Time
	Text       string
}

// Extract computes sig(D), samples the ISD between each consecutive pair of
// significant times, and coalesces adjacent identical-text samples into
// cues.
func Extract(d *model.Document) ([]Cue, error) {
	times := isd.SignificantTimes(d)
	var raw []Cue
	for i, t := range times {
		end := ratime.PositiveInfinity
		if i+1 < len(times) {
			end = times[i+1]
		}
		doc, err := isd.Generate(d, t)
		if err != nil {
			return nil, err
		}
		text := flatten(doc)
		if text == "" {
			continue
		}
		raw = append(raw, Cue{Begin: t, End: end, Text: text})
	}
	return coalesce(raw), nil
}

func coalesce(cues []Cue) []Cue {
	var out []Cue
	for _, c := range cues {
		if n := len(out); n > 0 && out[n-1].Text == c.Text && out[n-1].End.Equal(c.Begin) {
			out[n-1].End = c.End
			continue
		}
		out = append(out, c)
	}
	return out
}

func flatten(doc *isd.Document) string {
	var parts []string
	for _, r := range doc.Regions {
		var sb strings.Builder
		for _, n := range r.Children {
			flattenNode(n, &sb)
		}
		if s := strings.TrimSpace(sb.String()); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}

func flattenNode(n *isd.Node, sb *strings.Builder) {
	switch n.Kind {
	case model.KindText:
		sb.WriteString(n.Text)
	case model.KindBr:
		sb.WriteString("\n")
	default:
		for _, c := range n.Children {
			flattenNode(c, sb)
		}
	}
}
