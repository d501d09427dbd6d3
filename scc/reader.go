// Package scc implements the CEA-608 ("SCC") reader: a stateful byte-pair
// decoder that reconstructs caption paragraphs from a stream of timecoded
// control/character codes in pop-on, paint-on, and roll-up modes, emitting them into a model.Document.
package scc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/sandflow/ttconv/errs"
	"github.com/sandflow/ttconv/model"
	"github.com/sandflow/ttconv/style"
)

const headerLine = "Scenarist_SCC V1.0"

// RegionID is the id of the single safe-area region every SCC-sourced
// paragraph is assigned to.
const RegionID = "scc_safe_area"

// Options configures the reader beyond the bit-exact wire format, mirroring
// the scc_reader.* configuration keys.
type Options struct {
	// OverrideFPSNum/Den, if both non-zero, replace the timecode-inferred
	// frame rate for every line.
	OverrideFPSNum, OverrideFPSDen int64
	// TextAlign sets the safe-area region's textAlign, default "start".
	TextAlign string
}

// Read parses an .scc stream into a new model.Document whose body holds one
// Div of P paragraphs, each bound to RegionID.
func Read(r io.Reader, log *zap.Logger, opts Options) (*model.Document, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("scc-reader")

	doc := model.NewDocument()
	region, err := doc.NewRegion(RegionID)
	if err != nil {
		return nil, err
	}
	align := opts.TextAlign
	if align == "" {
		align = "start"
	}
	_ = region.SetStyle(style.TextAlign, style.EnumValue(align))
	_ = region.SetStyle(style.ShowBackground, style.EnumValue("whenActive"))

	body := model.NewElement(model.KindBody)
	div := model.NewElement(model.KindDiv)
	if err := body.AppendChild(div); err != nil {
		return nil, err
	}
	if err := doc.SetBody(body); err != nil {
		return nil, err
	}

	dec := newDecoder()
	sc := bufio.NewScanner(r)
	lineNo := 0
	var skipped error
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line == headerLine {
			continue
		}
		if err := processLine(dec, line, opts); err != nil {
			log.Warn("skipping malformed SCC line", zap.Int("line", lineNo), zap.Error(err))
			skipped = multierr.Append(skipped, errs.New(errs.KindParse, "scc.Read", fmt.Sprintf("line %d", lineNo), err))
			continue
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errs.New(errs.KindIO, "scc.Read", "reading SCC stream", err)
	}
	dec.finish()

	for _, raw := range dec.paragraphs {
		if e := raw.toElement(RegionID); e != nil {
			_ = div.AppendChild(e)
		}
	}
	// skipped lines are recoverable: the partially-built document is
	// still returned so a caller can decide whether to proceed.
	return doc, skipped
}

func processLine(dec *decoder, line string, opts Options) error {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return errs.New(errs.KindParse, "scc.processLine", "empty data line", nil)
	}
	t, err := ParseTimecode(fields[0], opts.OverrideFPSNum, opts.OverrideFPSDen)
	if err != nil {
		return err
	}
	for _, word := range fields[1:] {
		if len(word) != 4 {
			return errs.Newf(errs.KindParse, "scc.processLine", "malformed word %q", word)
		}
		raw, err := strconv.ParseUint(word, 16, 16)
		if err != nil {
			return errs.Newf(errs.KindParse, "scc.processLine", "malformed word %q", word)
		}
		b1raw := byte(raw >> 8)
		b2raw := byte(raw)
		b1, ok1 := stripParity(b1raw)
		b2, ok2 := stripParity(b2raw)
		if !ok1 || !ok2 {
			continue // parity failure: silently dropped
		}
		dec.handle(classify(b1, b2), t)
	}
	return nil
}
