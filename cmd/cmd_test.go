package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/marcus/slideover/internal/config"
	"github.com/marcus/slideover/internal/output"
	"github.com/marcus/slideover/pkg/ui/overlay"
)

func TestDirectionValue(t *testing.T) {
	var v directionValue
	if v.Type() != "direction" {
		t.Errorf("Type() = %q", v.Type())
	}

	if err := v.Set(" RIGHT "); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if v.String() != "right" {
		t.Errorf("String() = %q, want right", v.String())
	}

	err := v.Set("rigth")
	if !errors.Is(err, overlay.ErrUnknownDirection) {
		t.Fatalf("Set(rigth) error = %v, want ErrUnknownDirection", err)
	}
	if !strings.Contains(err.Error(), "right") {
		t.Errorf("error should suggest right: %v", err)
	}
	if v.String() != "right" {
		t.Error("failed Set should keep the previous value")
	}
}

func newDemoFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	demoDirection = directionValue{}
	fs := pflag.NewFlagSet("demo", pflag.ContinueOnError)
	addDemoFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return fs
}

func TestDemoOverlayOptions(t *testing.T) {
	fileCfg := &config.Config{Direction: "left", Background: "230"}
	fileCfg.SetCloseOutside(false)

	tests := []struct {
		name             string
		args             []string
		wantDirection    overlay.Direction
		wantCloseOutside bool
	}{
		{"file values without flags", nil, overlay.Left, false},
		{"direction flag wins", []string{"--direction", "down"}, overlay.Down, false},
		{"close-outside flag wins", []string{"--close-outside"}, overlay.Left, true},
		{"top alias", []string{"--direction=top"}, overlay.Top, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newDemoFlagSet(t, tt.args...)
			opts, err := demoOverlayOptions(fileCfg, fs)
			if err != nil {
				t.Fatalf("demoOverlayOptions failed: %v", err)
			}
			ov, err := overlay.New(opts...)
			if err != nil {
				t.Fatalf("overlay.New failed: %v", err)
			}
			defer ov.Dispose()

			if ov.Direction() != tt.wantDirection {
				t.Errorf("Direction() = %q, want %q", ov.Direction(), tt.wantDirection)
			}
			if ov.CloseOutside() != tt.wantCloseOutside {
				t.Errorf("CloseOutside() = %v, want %v", ov.CloseOutside(), tt.wantCloseOutside)
			}
		})
	}

	if fileCfg.Direction != "left" {
		t.Error("flags must not modify the loaded config")
	}
}

func TestDemoDirectionFlagRejectsUnknown(t *testing.T) {
	fs := pflag.NewFlagSet("demo", pflag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	addDemoFlags(fs)
	if err := fs.Parse([]string{"--direction", "sideways"}); err == nil {
		t.Fatal("unknown direction should fail flag parsing")
	}
}

func TestOpenLogger(t *testing.T) {
	t.Run("discards without a path", func(t *testing.T) {
		logger, closeLog, err := openLogger("")
		if err != nil {
			t.Fatalf("openLogger failed: %v", err)
		}
		defer closeLog()
		logger.Info("dropped")
	})

	t.Run("writes debug logs to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "demo.log")
		logger, closeLog, err := openLogger(path)
		if err != nil {
			t.Fatalf("openLogger failed: %v", err)
		}
		logger.Debug("overlay transition", "name", "open")
		closeLog()

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read log: %v", err)
		}
		if !strings.Contains(string(data), "msg=\"overlay transition\" name=open") {
			t.Errorf("log = %q", data)
		}
	})

	t.Run("bad path", func(t *testing.T) {
		if _, _, err := openLogger(filepath.Join(t.TempDir(), "missing", "demo.log")); err == nil {
			t.Error("openLogger should fail when the directory does not exist")
		}
	})
}

func TestPrintConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var buf bytes.Buffer
		if err := printConfig(&buf, &config.Config{}); err != nil {
			t.Fatalf("printConfig failed: %v", err)
		}
		out := buf.String()
		for _, want := range []string{
			"direction:      up",
			"close_outside:  true",
			"background:     #FFFFFF",
			"up     open 500ms  close 360ms",
			"right  open 300ms  close 200ms",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("overrides", func(t *testing.T) {
		cfg := &config.Config{
			Direction: "right",
			Durations: map[string]config.DurationsJSON{"right": {OpenMs: 450}},
		}
		var buf bytes.Buffer
		if err := printConfig(&buf, cfg); err != nil {
			t.Fatalf("printConfig failed: %v", err)
		}
		if !strings.Contains(buf.String(), "right  open 450ms  close 200ms") {
			t.Errorf("override not applied:\n%s", buf.String())
		}
	})

	t.Run("warns about an unrecognised background", func(t *testing.T) {
		var stderr bytes.Buffer
		old := output.Stderr
		output.Stderr = &stderr
		defer func() { output.Stderr = old }()

		var buf bytes.Buffer
		if err := printConfig(&buf, &config.Config{Background: "red"}); err != nil {
			t.Fatalf("printConfig failed: %v", err)
		}
		if !strings.HasPrefix(stderr.String(), "Warning: background:") {
			t.Errorf("stderr = %q, want a background warning", stderr.String())
		}
		if !strings.Contains(buf.String(), "background:     red") {
			t.Errorf("the configured value should still be shown:\n%s", buf.String())
		}

		stderr.Reset()
		if err := printConfig(&buf, &config.Config{Background: "230"}); err != nil {
			t.Fatalf("printConfig failed: %v", err)
		}
		if stderr.Len() != 0 {
			t.Errorf("valid background produced a warning: %q", stderr.String())
		}
	})

	t.Run("bad direction", func(t *testing.T) {
		err := printConfig(&bytes.Buffer{}, &config.Config{Direction: "diagonal"})
		if !errors.Is(err, overlay.ErrUnknownDirection) {
			t.Errorf("err = %v, want ErrUnknownDirection", err)
		}
	})
}

func TestValidateColor(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"", false},
		{"230", false},
		{"#1a2B3c", false},
		{"256", true},
		{"#123", true},
		{"red", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if err := validateColor(tt.in); (err != nil) != tt.wantErr {
				t.Errorf("validateColor(%q) = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestConfigFields(t *testing.T) {
	cfg := &config.Config{Durations: map[string]config.DurationsJSON{"up": {OpenMs: 100}}}
	f := newConfigFields(cfg)
	if f.direction != "up" || !f.closeOutside {
		t.Errorf("defaults = %+v", f)
	}

	f.direction = "left"
	f.closeOutside = false
	f.background = "#000000"
	f.apply(cfg)

	if cfg.Direction != "left" || cfg.CloseOutsideOrDefault() || cfg.Background != "#000000" {
		t.Errorf("apply produced %+v", cfg)
	}
	if cfg.Durations["up"].OpenMs != 100 {
		t.Error("apply should keep duration overrides")
	}
	if f.form() == nil {
		t.Error("form() returned nil")
	}
}

func TestStateTree(t *testing.T) {
	root := stateTree()
	if len(root.Children) != 4 {
		t.Fatalf("got %d state nodes, want 4", len(root.Children))
	}

	total := 0
	for _, n := range root.Children {
		total += len(n.Children)
	}
	if total != len(overlay.AllTransitions()) {
		t.Errorf("tree has %d transitions, want %d", total, len(overlay.AllTransitions()))
	}

	closing := root.Children[3]
	if closing.Label != "closing" || len(closing.Children) != 2 {
		t.Errorf("closing node = %+v", closing)
	}
}

func runRoot(t *testing.T, dir string, args ...string) string {
	t.Helper()
	old := baseDir
	baseDir = dir
	t.Cleanup(func() { baseDir = old })

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("slideover %v: %v", args, err)
	}
	return buf.String()
}

func TestVersionCommand(t *testing.T) {
	SetVersion("v1.2.3")
	defer SetVersion("")

	if out := runRoot(t, t.TempDir(), "version"); out != "slideover v1.2.3\n" {
		t.Errorf("version output = %q", out)
	}
}

func TestConfigShowCommand(t *testing.T) {
	dir := t.TempDir()
	if err := config.Save(dir, &config.Config{Direction: "down"}); err != nil {
		t.Fatalf("setup: %v", err)
	}

	out := runRoot(t, dir, "config", "show")
	if !strings.Contains(out, "direction:      down") {
		t.Errorf("config show output:\n%s", out)
	}
}

func TestStatesCommand(t *testing.T) {
	out := runRoot(t, t.TempDir(), "states")
	for _, want := range []string{"overlay (triggers not listed are no-ops)", "closing (mounted)", "open → opening (reopen)"} {
		if !strings.Contains(out, want) {
			t.Errorf("states output missing %q:\n%s", want, out)
		}
	}
}
