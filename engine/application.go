package engine

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32 `toml:"start_pos_x"`
	// Window starting position y axis, if applicable.
	StartPosY uint32 `toml:"start_pos_y"`
	// Window starting width, if applicable.
	StartWidth uint32 `toml:"start_width"`
	// Window starting height, if applicable.
	StartHeight uint32 `toml:"start_height"`
	// The application name used in windowing, if applicable.
	Name     string `toml:"name"`
	LogLevel string `toml:"log_level"`
	// Headless runs without a window on a fixed time step of 1/TargetFPS.
	Headless  bool    `toml:"headless"`
	TargetFPS float64 `toml:"target_fps"`
	// LimitFrames sleeps away the rest of a frame when running windowed.
	LimitFrames bool `toml:"limit_frames"`
	// MaxFrames stops the engine after that many frames, 0 runs until quit.
	MaxFrames uint64 `toml:"max_frames"`
	LevelPath string `toml:"level_path"`
	// WatchLevel reloads the level when its file changes.
	WatchLevel bool `toml:"watch_level"`
}

func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		StartPosX:   100,
		StartPosY:   100,
		StartWidth:  1280,
		StartHeight: 720,
		Name:        "Catapult",
		LogLevel:    "info",
		TargetFPS:   60,
		LevelPath:   "assets/levels/catapult.toml",
	}
}

// LoadConfig reads a TOML application config. Keys missing from the file
// keep their DefaultApplicationConfig value.
func LoadConfig(path string) (*ApplicationConfig, error) {
	cfg := DefaultApplicationConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "decoding config %s", path)
	}
	if cfg.TargetFPS <= 0 {
		return nil, errors.Errorf("config %s: target_fps must be positive, got %v", path, cfg.TargetFPS)
	}
	return cfg, nil
}

// FrameTime is the fixed step used when headless.
func (c *ApplicationConfig) FrameTime() float64 {
	if c.TargetFPS <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / c.TargetFPS
}
