// Package appconfig loads and validates the recognized configuration key
// set: one struct per dotted section,
// decoded from YAML (or JSON, which is a YAML subset), with every
// unrecognized key captured rather than rejected.
package appconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sandflow/ttconv/internal/logging"
)

// General holds general.* keys.
type General struct {
	ProgressBar   bool          `yaml:"progress_bar"`
	LogLevel      logging.Level `yaml:"log_level"`
	DocumentLang  string        `yaml:"document_lang"`
	Unrecognized  map[string]any `yaml:",inline"`
}

// IMSCWriter holds imsc_writer.* keys.
type IMSCWriter struct {
	TimeFormat       string         `yaml:"time_format"`
	FPS              string         `yaml:"fps"`
	ProfileSignaling string         `yaml:"profile_signaling"`
	Unrecognized     map[string]any `yaml:",inline"`
}

// STLReader holds stl_reader.* keys. Parsed and validated for
// configuration round-tripping even though no STL reader is implemented.
type STLReader struct {
	DisableFillLineGap bool           `yaml:"disable_fill_line_gap"`
	DisableLinePadding bool           `yaml:"disable_line_padding"`
	ProgramStartTC     string         `yaml:"program_start_tc"`
	FontStack          []string       `yaml:"font_stack"`
	MaxRowCount        string         `yaml:"max_row_count"`
	Unrecognized       map[string]any `yaml:",inline"`
}

// SRTWriter holds srt_writer.* keys.
type SRTWriter struct {
	TextFormatting bool           `yaml:"text_formatting"`
	Unrecognized   map[string]any `yaml:",inline"`
}

// VTTWriter holds vtt_writer.* keys.
type VTTWriter struct {
	LinePosition bool           `yaml:"line_position"`
	TextAlign    bool           `yaml:"text_align"`
	CueID        bool           `yaml:"cue_id"`
	Unrecognized map[string]any `yaml:",inline"`
}

// SCCReader holds scc_reader.* keys.
type SCCReader struct {
	TextAlign    string         `yaml:"text_align"`
	Unrecognized map[string]any `yaml:",inline"`
}

// SCCWriter holds scc_writer.* keys. Parsed and validated for
// configuration round-tripping even though no SCC writer is implemented.
type SCCWriter struct {
	AllowReflow  bool           `yaml:"allow_reflow"`
	ForcePopOn   bool           `yaml:"force_popon"`
	RollupLines  int            `yaml:"rollup_lines"`
	FrameRate    string         `yaml:"frame_rate"`
	StartTC      string         `yaml:"start_tc"`
	Unrecognized map[string]any `yaml:",inline"`
}

// LCD holds lcd.* keys.
type LCD struct {
	SafeArea          int            `yaml:"safe_area"`
	Color             string         `yaml:"color"`
	BgColor           string         `yaml:"bg_color"`
	PreserveTextAlign bool           `yaml:"preserve_text_align"`
	Unrecognized      map[string]any `yaml:",inline"`
}

// Config is the whole recognized key set, one field per dotted section.
type Config struct {
	General    General    `yaml:"general"`
	IMSCWriter IMSCWriter `yaml:"imsc_writer"`
	STLReader  STLReader  `yaml:"stl_reader"`
	SRTWriter  SRTWriter  `yaml:"srt_writer"`
	VTTWriter  VTTWriter  `yaml:"vtt_writer"`
	SCCReader  SCCReader  `yaml:"scc_reader"`
	SCCWriter  SCCWriter  `yaml:"scc_writer"`
	LCD        LCD        `yaml:"lcd"`

	// Unrecognized captures any top-level section this repository does
	// not know about.
	Unrecognized map[string]any `yaml:",inline"`
}

// Default returns the configuration in effect when no file or inline JSON
// is supplied.
func Default() *Config {
	return &Config{
		General:    General{ProgressBar: true, LogLevel: logging.LevelInfo, DocumentLang: "und"},
		IMSCWriter: IMSCWriter{TimeFormat: "clock_time", FPS: "30/1", ProfileSignaling: "none"},
		STLReader:  STLReader{MaxRowCount: "23"},
		SRTWriter:  SRTWriter{TextFormatting: true},
		VTTWriter:  VTTWriter{LinePosition: false, TextAlign: false, CueID: false},
		SCCReader:  SCCReader{TextAlign: "auto"},
		SCCWriter:  SCCWriter{RollupLines: 2, FrameRate: "29.97DF"},
		LCD:        LCD{SafeArea: 10, PreserveTextAlign: true},
	}
}

// Load builds a Config by decoding the file at path, then the inline (JSON
// or YAML) text, onto Default - the inline text overrides the file. Each
// source is decoded onto the struct as it stands, so fields a source does
// not mention keep their earlier value.
func Load(inline string, path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read configuration file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("unable to parse configuration file %q: %w", path, err)
		}
	}
	if inline != "" {
		if err := yaml.Unmarshal([]byte(inline), cfg); err != nil {
			return nil, fmt.Errorf("unable to parse inline configuration: %w", err)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.General.LogLevel {
	case logging.LevelInfo, logging.LevelWarn, logging.LevelError:
	default:
		return fmt.Errorf("general.log_level: invalid value %q", c.General.LogLevel)
	}
	switch c.IMSCWriter.TimeFormat {
	case "frames", "clock_time", "clock_time_with_frames":
	default:
		return fmt.Errorf("imsc_writer.time_format: invalid value %q", c.IMSCWriter.TimeFormat)
	}
	switch c.IMSCWriter.ProfileSignaling {
	case "none", "content_profiles":
	default:
		return fmt.Errorf("imsc_writer.profile_signaling: invalid value %q", c.IMSCWriter.ProfileSignaling)
	}
	switch c.SCCReader.TextAlign {
	case "auto", "left", "center", "right":
	default:
		return fmt.Errorf("scc_reader.text_align: invalid value %q", c.SCCReader.TextAlign)
	}
	if c.LCD.SafeArea < 0 || c.LCD.SafeArea > 30 {
		return fmt.Errorf("lcd.safe_area: out of range [0,30]: %d", c.LCD.SafeArea)
	}
	if _, _, err := c.FPS(); err != nil {
		return err
	}
	return nil
}

// Warnings reports every unrecognized key found while decoding, across
// every section, for the caller to log at WARN.
func (c *Config) Warnings() []string {
	var warnings []string
	collect := func(section string, m map[string]any) {
		for k := range m {
			warnings = append(warnings, fmt.Sprintf("%s.%s", section, k))
		}
	}
	for k := range c.Unrecognized {
		warnings = append(warnings, k)
	}
	collect("general", c.General.Unrecognized)
	collect("imsc_writer", c.IMSCWriter.Unrecognized)
	collect("stl_reader", c.STLReader.Unrecognized)
	collect("srt_writer", c.SRTWriter.Unrecognized)
	collect("vtt_writer", c.VTTWriter.Unrecognized)
	collect("scc_reader", c.SCCReader.Unrecognized)
	collect("scc_writer", c.SCCWriter.Unrecognized)
	collect("lcd", c.LCD.Unrecognized)
	return warnings
}
