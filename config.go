package rgss

import (
	"errors"
	"flag"
	"fmt"
)

// RunConfig configures the window and frame loop started by Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the logical screen size in pixels.
	Width, Height int
	// TPS is the number of update ticks per second.
	TPS int
	// ShowFPS draws an FPS/TPS/draw-call overlay in the top-left corner.
	ShowFPS bool
	// Debug enables disposed-sprite checks, frame timings and stats logging.
	Debug bool
	// StatsInterval is how many frames pass between stats log lines in debug
	// mode. Zero disables stats logging.
	StatsInterval int
}

// Defaults used by DefaultRunConfig.
const (
	defaultTitle         = "rgss"
	defaultWidth         = 640
	defaultHeight        = 480
	defaultTPS           = 60
	defaultStatsInterval = 60
)

// DefaultRunConfig returns a 640x480 window at 60 ticks per second.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:         defaultTitle,
		Width:         defaultWidth,
		Height:        defaultHeight,
		TPS:           defaultTPS,
		StatsInterval: defaultStatsInterval,
	}
}

// RegisterRunFlags binds cfg's fields to flags on fs. The current values of
// cfg become the flag defaults.
func RegisterRunFlags(fs *flag.FlagSet, cfg *RunConfig) {
	fs.StringVar(&cfg.Title, "title", cfg.Title, "window title")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "screen width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "screen height in pixels")
	fs.IntVar(&cfg.TPS, "tps", cfg.TPS, "update ticks per second")
	fs.BoolVar(&cfg.ShowFPS, "show-fps", cfg.ShowFPS, "draw the FPS overlay")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug checks and frame stats logging")
	fs.IntVar(&cfg.StatsInterval, "stats-interval", cfg.StatsInterval, "frames between stats log lines in debug mode (0 disables)")
}

// ParseRunFlags parses args (without the program name) on top of
// DefaultRunConfig and validates the result.
func ParseRunFlags(name string, args []string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	RegisterRunFlags(fs, &cfg)
	if err := fs.Parse(args); err != nil {
		return RunConfig{}, fmt.Errorf("rgss: parse flags: %w", err)
	}
	if err := ValidateRunConfig(cfg); err != nil {
		return RunConfig{}, err
	}
	return cfg, nil
}

// ErrInvalidConfig is wrapped by every ValidateRunConfig error.
var ErrInvalidConfig = errors.New("rgss: invalid run config")

// ValidateRunConfig reports sizes or tick rates that cannot run.
func ValidateRunConfig(cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, cfg.Width, cfg.Height)
	}
	if cfg.TPS <= 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, cfg.TPS)
	}
	if cfg.StatsInterval < 0 {
		return fmt.Errorf("%w: stats interval %d", ErrInvalidConfig, cfg.StatsInterval)
	}
	return nil
}
