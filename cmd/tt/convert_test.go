package main

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	cases := map[string]format{"ttml": formatTTML, "SCC": formatSCC, "Srt": formatSRT, "vtt": formatVTT, "stl": formatSTL}
	for in, want := range cases {
		got, err := parseFormat(in)
		if err != nil {
			t.Fatalf("parseFormat(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("parseFormat(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := parseFormat("bogus"); err == nil {
		t.Error("expected error for unrecognized format")
	}
}

func TestFormatFromExt(t *testing.T) {
	cases := map[string]format{"a.ttml": formatTTML, "a.scc": formatSCC, "a.srt": formatSRT, "a.vtt": formatVTT, "a.dfxp": formatTTML}
	for in, want := range cases {
		got, err := formatFromExt(in)
		if err != nil {
			t.Fatalf("formatFromExt(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("formatFromExt(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := formatFromExt("a.bogus"); err == nil {
		t.Error("expected error for unknown extension")
	}
}

func TestResolveFormat(t *testing.T) {
	got, err := resolveFormat("", "a.vtt")
	if err != nil || got != formatVTT {
		t.Fatalf("resolveFormat inferred from extension failed: %v, %v", got, err)
	}
	got, err = resolveFormat("TTML", "a.vtt")
	if err != nil || got != formatTTML {
		t.Fatalf("resolveFormat flag override failed: %v, %v", got, err)
	}
}

func TestExitCode(t *testing.T) {
	if got := exitCode(usageError{errors.New("bad flag")}); got != 2 {
		t.Errorf("exitCode(usageError) = %d, want 2", got)
	}
	if got := exitCode(errors.New("boom")); got != 1 {
		t.Errorf("exitCode(plain error) = %d, want 1", got)
	}
}
