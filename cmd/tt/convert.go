package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/sandflow/ttconv/filter"
	"github.com/sandflow/ttconv/internal/debug"
	"github.com/sandflow/ttconv/model"
	"github.com/sandflow/ttconv/scc"
	"github.com/sandflow/ttconv/srt"
	"github.com/sandflow/ttconv/state"
	"github.com/sandflow/ttconv/ttml"
	"github.com/sandflow/ttconv/vtt"
)

// format identifies one of the supported document formats.
type format string

const (
	formatTTML format = "TTML"
	formatSCC  format = "SCC"
	formatSTL  format = "STL"
	formatSRT  format = "SRT"
	formatVTT  format = "VTT"
)

func parseFormat(s string) (format, error) {
	switch strings.ToUpper(s) {
	case string(formatTTML):
		return formatTTML, nil
	case string(formatSCC):
		return formatSCC, nil
	case string(formatSTL):
		return formatSTL, nil
	case string(formatSRT):
		return formatSRT, nil
	case string(formatVTT):
		return formatVTT, nil
	default:
		return "", fmt.Errorf("unrecognized format %q", s)
	}
}

func formatFromExt(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttml", ".xml", ".dfxp":
		return formatTTML, nil
	case ".scc":
		return formatSCC, nil
	case ".stl":
		return formatSTL, nil
	case ".srt":
		return formatSRT, nil
	case ".vtt":
		return formatVTT, nil
	default:
		return "", fmt.Errorf("cannot infer format from extension %q", filepath.Ext(path))
	}
}

func resolveFormat(flag, path string) (format, error) {
	if flag != "" {
		return parseFormat(flag)
	}
	return formatFromExt(path)
}

func runConvert(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	env.Input = cmd.String("input")
	env.Output = cmd.String("output")
	env.Filters = cmd.StringSlice("filter")

	itype, err := resolveFormat(cmd.String("itype"), env.Input)
	if err != nil {
		return usageError{fmt.Errorf("--itype: %w", err)}
	}
	otype, err := resolveFormat(cmd.String("otype"), env.Output)
	if err != nil {
		return usageError{fmt.Errorf("--otype: %w", err)}
	}
	env.InputType, env.OutputType = string(itype), string(otype)

	doc, err := readDocument(itype, env, log)
	if err != nil {
		return err
	}

	if len(env.Filters) > 0 {
		cfg, err := env.Cfg.FilterConfig()
		if err != nil {
			return err
		}
		if doc, err = filter.Chain(env.Filters, cfg, doc); err != nil {
			return err
		}
	}

	if env.Debug = cmd.Bool("debug"); env.Debug {
		if err := writeDebugDump(env.Output, doc); err != nil {
			log.Warn("unable to write debug dump", zap.Error(err))
		}
	}

	return writeDocument(otype, env, doc)
}

func readDocument(f format, env *state.LocalEnv, log *zap.Logger) (*model.Document, error) {
	in, err := os.Open(env.Input)
	if err != nil {
		return nil, fmt.Errorf("unable to open input %q: %w", env.Input, err)
	}
	defer in.Close()

	switch f {
	case formatTTML:
		return ttml.Read(in, log)
	case formatSCC:
		align := env.Cfg.SCCReader.TextAlign
		if align == "auto" {
			align = ""
		}
		return scc.Read(in, log, scc.Options{TextAlign: align})
	case formatSTL:
		return nil, fmt.Errorf("STL reading is not implemented in this build")
	default:
		return nil, fmt.Errorf("%s is not a supported input format", f)
	}
}

func writeDocument(f format, env *state.LocalEnv, doc *model.Document) error {
	out, err := os.Create(env.Output)
	if err != nil {
		return fmt.Errorf("unable to create output %q: %w", env.Output, err)
	}
	defer out.Close()

	switch f {
	case formatTTML:
		return ttml.Write(doc, out, ttml.WriteOptions{
			TimeFormat:       env.Cfg.IMSCWriter.TimeFormat,
			ProfileSignaling: env.Cfg.IMSCWriter.ProfileSignaling,
		})
	case formatSRT:
		return srt.Write(doc, out, srt.Options{TextFormatting: env.Cfg.SRTWriter.TextFormatting})
	case formatVTT:
		return vtt.Write(doc, out, vtt.Options{
			LinePosition: env.Cfg.VTTWriter.LinePosition,
			TextAlign:    env.Cfg.VTTWriter.TextAlign,
			CueID:        env.Cfg.VTTWriter.CueID,
		})
	default:
		return fmt.Errorf("%s is not a supported output format", f)
	}
}

func writeDebugDump(outputPath string, doc *model.Document) error {
	f, err := os.Create(outputPath + ".debug.txt")
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.WriteString(f, debug.DumpDocument(doc))
	return err
}
