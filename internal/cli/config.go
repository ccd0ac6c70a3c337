package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/mosaic"
)

// Config holds the defaults of the show command. A config file looks like:
//
//	scale = 0.5
//	rows = 2
//	cols = 3
//	wait = "5s"          # "none", "key" or a duration
//	resampler = "area"
//	fit = true
//	margin = 0.9
type Config struct {
	Scale     float64 `toml:"scale"`
	Rows      int     `toml:"rows"`
	Cols      int     `toml:"cols"`
	Wait      Wait    `toml:"wait"`
	Resampler string  `toml:"resampler"`
	Fit       bool    `toml:"fit"`
	Margin    float64 `toml:"margin"`
}

// defaultConfig returns the settings used when neither a file nor a flag
// sets a value.
func defaultConfig() Config {
	return Config{
		Scale:     1,
		Wait:      Wait(mosaic.WaitForever),
		Resampler: "auto",
		Margin:    0.9,
	}
}

// Wait is a display wait in config files and flags: "none" returns at once,
// "key" waits for a key press, anything else is a time.Duration.
type Wait time.Duration

// ParseWait parses the textual form of a Wait.
func ParseWait(s string) (Wait, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "no", "-1":
		return Wait(mosaic.NoWait), nil
	case "key", "forever", "", "0":
		return Wait(mosaic.WaitForever), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid wait %q: want none, key or a duration", s)
	}
	if d <= 0 {
		return Wait(mosaic.NoWait), nil
	}
	return Wait(d), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (w *Wait) UnmarshalText(text []byte) error {
	v, err := ParseWait(string(text))
	if err != nil {
		return err
	}
	*w = v
	return nil
}

// String returns the textual form accepted by ParseWait.
func (w Wait) String() string {
	switch d := time.Duration(w); {
	case d < 0:
		return "none"
	case d == 0:
		return "key"
	default:
		return d.String()
	}
}

// Duration returns w as the wait understood by mosaic.DisplaySink.
func (w Wait) Duration() time.Duration {
	return time.Duration(w)
}

// defaultConfigPath returns $XDG_CONFIG_HOME/mosaic/config.toml, falling
// back to ~/.config/mosaic/config.toml.
func defaultConfigPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads path over the defaults. An empty path selects the
// default location, which may be absent; an explicit path must exist.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}
