package presskit

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Settings are the runtime knobs of a presskit program, read from the
// environment.
type Settings struct {
	Debug      bool          `env:"PRESSKIT_DEBUG"`
	Audio      bool          `env:"PRESSKIT_AUDIO"       envDefault:"true"`
	SampleRate int           `env:"PRESSKIT_SAMPLE_RATE" envDefault:"48000"`
	Volume     float64       `env:"PRESSKIT_VOLUME"      envDefault:"0.6"`
	Warmup     time.Duration `env:"PRESSKIT_WARMUP"      envDefault:"0s"`
	Layout     string        `env:"PRESSKIT_LAYOUT"`
	Trace      string        `env:"PRESSKIT_TRACE"`
	LogLevel   slog.Level    `env:"PRESSKIT_LOG_LEVEL"   envDefault:"info"`
}

// LoadSettings parses Settings from the process environment.
func LoadSettings() (Settings, error) {
	var cfg Settings
	if err := env.Parse(&cfg); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SampleRate <= 0 {
		return Settings{}, fmt.Errorf("parse env: PRESSKIT_SAMPLE_RATE must be positive, got %d", cfg.SampleRate)
	}
	if cfg.Warmup < 0 {
		return Settings{}, fmt.Errorf("parse env: PRESSKIT_WARMUP must not be negative, got %s", cfg.Warmup)
	}
	return cfg, nil
}

// Logger builds a stderr text logger at the configured level. Debug forces
// the debug level.
func (c Settings) Logger() *slog.Logger {
	level := c.LogLevel
	if c.Debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Apply installs the logger, warmup and debug mode on s.
func (c Settings) Apply(s *Scene) {
	s.SetLogger(c.Logger())
	s.SetWarmup(c.Warmup)
	s.SetDebugMode(c.Debug)
}
