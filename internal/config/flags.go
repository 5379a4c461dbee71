package config

import "flag"

// Flags holds command-line overrides. Zero values leave the loaded config
// untouched.
type Flags struct {
	Config    string
	Debug     bool
	Width     int
	Height    int
	ColorMap  string
	HeightMap string
	Seed      int64
	LogFile   string

	SaveConfig string
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", f.Config, "path to config file")
	fs.BoolVar(&f.Debug, "debug", f.Debug, "enable debug logging and the FPS overlay")
	fs.IntVar(&f.Width, "width", f.Width, "window width")
	fs.IntVar(&f.Height, "height", f.Height, "window height")
	fs.StringVar(&f.ColorMap, "color-map", f.ColorMap, "color map image")
	fs.StringVar(&f.HeightMap, "height-map", f.HeightMap, "height map image")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "seed for the generated terrain")
	fs.StringVar(&f.LogFile, "log-file", f.LogFile, "write logs to this file")
	fs.StringVar(&f.SaveConfig, "save-config", f.SaveConfig, "write the effective config to this path")
}

// Apply copies set overrides onto cfg.
func (f *Flags) Apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
		cfg.Graphics.ShowFPS = true
	}
	if f.Width > 0 {
		cfg.Graphics.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Graphics.Height = f.Height
	}
	if f.ColorMap != "" {
		cfg.Terrain.ColorMap = f.ColorMap
	}
	if f.HeightMap != "" {
		cfg.Terrain.HeightMap = f.HeightMap
	}
	if f.Seed != 0 {
		cfg.Terrain.Seed = f.Seed
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
}
