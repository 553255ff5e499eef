package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/swipecal/swipecal/internal/window"
)

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `mode: week
first_weekday: monday
past_disabled: true
lunar: true
holidays_file: /tmp/holidays.json
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if mode, err := cfg.DisplayMode(); err != nil || mode != window.ModeWeek {
		t.Fatalf("DisplayMode() = %v, %v; want week", mode, err)
	}
	if wd, err := cfg.Weekday(); err != nil || wd != time.Monday {
		t.Fatalf("Weekday() = %v, %v; want Monday", wd, err)
	}
	if !cfg.PastDisabled || !cfg.Lunar {
		t.Fatalf("boolean fields not parsed: %+v", cfg)
	}
	if cfg.HolidaysFile != "/tmp/holidays.json" {
		t.Fatalf("HolidaysFile = %q", cfg.HolidaysFile)
	}
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("an explicitly named missing file should be an error")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("mode: [unclosed"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("malformed YAML should be an error")
	}
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if mode, err := cfg.DisplayMode(); err != nil || mode != window.ModeMonth {
		t.Fatalf("default DisplayMode() = %v, %v; want month", mode, err)
	}
	if wd, err := cfg.Weekday(); err != nil || wd != time.Sunday {
		t.Fatalf("default Weekday() = %v, %v; want Sunday", wd, err)
	}
}

func TestUnknownValuesRejected(t *testing.T) {
	if _, err := (Config{Mode: "fortnight"}).DisplayMode(); err == nil {
		t.Fatalf("unknown mode should be an error")
	}
	if _, err := (Config{FirstWeekday: "someday"}).Weekday(); err == nil {
		t.Fatalf("unknown weekday should be an error")
	}
}
