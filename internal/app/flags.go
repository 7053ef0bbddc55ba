package app

import "flag"

// Config represents the command-line parameters shared by the drivers.
type Config struct {
	W       int
	H       int
	Scale   int
	TPS     int
	Seed    int64
	Pattern string
	Image   string
	X       int
	Y       int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{W: 50, H: 50, Scale: 10, TPS: 60, Seed: 42, X: -1, Y: -1}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.W, "w", c.W, "grid width in cells")
	fs.IntVar(&c.H, "h", c.H, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "RLE pattern file to load instead of a random board")
	fs.StringVar(&c.Image, "image", c.Image, "black and white image to load instead of a random board")
	fs.IntVar(&c.X, "x", c.X, "pattern column; -1 uses the file's #X line")
	fs.IntVar(&c.Y, "y", c.Y, "pattern row; -1 uses the file's #Y line")
}
