package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagWidth  = flag.Int("width", 0, "Surface width in cells")
	flagHeight = flag.Int("height", 0, "Surface height in cells")
	flagSeed   = flag.Int64("seed", 0, "Seed for noise height maps")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments left after ParseFlags.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Map.SurfaceWidth = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Map.SurfaceHeight = *flagHeight
	}
	if *flagSeed != 0 {
		for i := range cfg.HeightMaps {
			if cfg.HeightMaps[i].Kind == "noise" {
				cfg.HeightMaps[i].Seed = *flagSeed
			}
		}
	}
}
