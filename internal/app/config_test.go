package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Width != 45 || cfg.Height != 24 {
		t.Fatalf("default land size %dx%d, want 45x24", cfg.Width, cfg.Height)
	}
	if cfg.Noise != "simplex" {
		t.Fatalf("default noise %q", cfg.Noise)
	}
	if cfg.Radius != 8 {
		t.Fatalf("default radius %d", cfg.Radius)
	}
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-width", "10", "-noise", "perlin", "-save", ""}); err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 10 || cfg.Noise != "perlin" || cfg.SaveFile != "" {
		t.Fatalf("parsed config %+v", cfg)
	}
	if cfg.Height != 24 {
		t.Fatalf("unset flags must keep defaults, height %d", cfg.Height)
	}
}

func TestConfigLoadFileMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "landcarve.yml")
	body := "width: 30\nheight: 16\nnoise: perlin\nradius: 12\ncovered: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-config", path, "-width", "50"}); err != nil {
		t.Fatal(err)
	}
	if err := cfg.LoadFile(fs); err != nil {
		t.Fatal(err)
	}

	if cfg.Width != 50 {
		t.Fatalf("explicit flag must win over the file, width %d", cfg.Width)
	}
	if cfg.Height != 16 || cfg.Noise != "perlin" || cfg.Radius != 12 || !cfg.Covered {
		t.Fatalf("file values not merged: %+v", cfg)
	}
	if cfg.TPS != 60 {
		t.Fatalf("values absent from file and flags must keep defaults, tps %d", cfg.TPS)
	}
}

func TestConfigLoadFileAbsent(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	if err := cfg.LoadFile(fs); err != nil {
		t.Fatalf("no config file requested, LoadFile must be a no-op: %v", err)
	}
}
