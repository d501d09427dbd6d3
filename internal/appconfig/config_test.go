package appconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.validate(); err != nil {
		t.Fatalf("Default() failed validation: %v", err)
	}
}

func TestLoadInlineOverridesDefault(t *testing.T) {
	cfg, err := Load(`general:
  log_level: WARN
lcd:
  safe_area: 5
`, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.LogLevel != "WARN" {
		t.Errorf("LogLevel = %q, want WARN", cfg.General.LogLevel)
	}
	if cfg.LCD.SafeArea != 5 {
		t.Errorf("SafeArea = %d, want 5", cfg.LCD.SafeArea)
	}
	// untouched defaults survive
	if cfg.IMSCWriter.TimeFormat != "clock_time" {
		t.Errorf("TimeFormat = %q, want clock_time (untouched default)", cfg.IMSCWriter.TimeFormat)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tt.yaml")
	if err := os.WriteFile(path, []byte("scc_reader:\n  text_align: left\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("", path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SCCReader.TextAlign != "left" {
		t.Errorf("TextAlign = %q, want left", cfg.SCCReader.TextAlign)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []string{
		`general: {log_level: BOGUS}`,
		`imsc_writer: {time_format: bogus}`,
		`imsc_writer: {profile_signaling: bogus}`,
		`scc_reader: {text_align: bogus}`,
		`lcd: {safe_area: 99}`,
		`imsc_writer: {fps: "not-a-fraction"}`,
	}
	for _, c := range cases {
		if _, err := Load(c, ""); err == nil {
			t.Errorf("Load(%q) succeeded, want validation error", c)
		}
	}
}

func TestWarningsCollectsUnrecognizedKeys(t *testing.T) {
	cfg, err := Load(`general:
  bogus_key: 1
totally_unknown_section:
  x: 1
`, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	w := cfg.Warnings()
	if len(w) != 2 {
		t.Fatalf("Warnings() = %v, want 2 entries", w)
	}
}

func TestFilterConfigLCD(t *testing.T) {
	cfg := Default()
	cfg.LCD.Color = "white"
	cfg.LCD.BgColor = "#000000"
	m, err := cfg.FilterConfig()
	if err != nil {
		t.Fatalf("FilterConfig: %v", err)
	}
	lcd, ok := m["lcd"]
	if !ok {
		t.Fatal("missing lcd entry")
	}
	if _, ok := lcd["color"]; !ok {
		t.Error("missing resolved color")
	}
	if _, ok := lcd["bg_color"]; !ok {
		t.Error("missing resolved bg_color")
	}
}

func TestFPSDefaultsAndParses(t *testing.T) {
	cfg := Default()
	num, den, err := cfg.FPS()
	if err != nil || num != 30 || den != 1 {
		t.Fatalf("FPS() = %d/%d, %v, want 30/1", num, den, err)
	}
	cfg.IMSCWriter.FPS = "25/1"
	if num, den, err = cfg.FPS(); err != nil || num != 25 || den != 1 {
		t.Fatalf("FPS() = %d/%d, %v, want 25/1", num, den, err)
	}
}
