package app

import (
	"flag"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the command-line and file parameters for the application.
type Config struct {
	Width    int    `yaml:"width"`  // land width in chunks
	Height   int    `yaml:"height"` // land height in chunks
	Scale    int    `yaml:"scale"`
	TPS      int    `yaml:"tps"`
	Radius   int    `yaml:"radius"`
	Noise    string `yaml:"noise"`
	SaveFile string `yaml:"save_file"`
	Covered  bool   `yaml:"covered"`

	File string `yaml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    45,
		Height:   24,
		Scale:    3,
		TPS:      60,
		Radius:   8,
		Noise:    "simplex",
		SaveFile: "land.sav",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "land width in chunks")
	fs.IntVar(&c.Height, "height", c.Height, "land height in chunks")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Radius, "radius", c.Radius, "carving brush radius in pixels")
	fs.StringVar(&c.Noise, "noise", c.Noise, "generation noise: simplex or perlin")
	fs.StringVar(&c.SaveFile, "save", c.SaveFile, "save file path (empty disables saving)")
	fs.BoolVar(&c.Covered, "covered", c.Covered, "treat out-of-bounds terrain as solid")
	fs.StringVar(&c.File, "config", c.File, "optional YAML config file")
}

// LoadFile merges values from the YAML config file. Values set explicitly on
// the command line win over the file.
func (c *Config) LoadFile(fs *flag.FlagSet) error {
	if c.File == "" {
		return nil
	}
	raw, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}
	fromFile := *NewConfig()
	if err := yaml.Unmarshal(raw, &fromFile); err != nil {
		return err
	}
	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	if !explicit["width"] {
		c.Width = fromFile.Width
	}
	if !explicit["height"] {
		c.Height = fromFile.Height
	}
	if !explicit["scale"] {
		c.Scale = fromFile.Scale
	}
	if !explicit["tps"] {
		c.TPS = fromFile.TPS
	}
	if !explicit["radius"] {
		c.Radius = fromFile.Radius
	}
	if !explicit["noise"] {
		c.Noise = fromFile.Noise
	}
	if !explicit["save"] {
		c.SaveFile = fromFile.SaveFile
	}
	if !explicit["covered"] {
		c.Covered = fromFile.Covered
	}
	return nil
}
