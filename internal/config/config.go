// Package config loads the geofun command settings from a YAML file,
// .env files and the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const envPrefix = "GEOFUN_"

type Log struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

type Output struct {
	// Format is "text", "json" or "msgpack".
	Format string `yaml:"format"`
}

type Split struct {
	// Segments is the default number of legs for the split command.
	Segments int `yaml:"segments"`
}

type Config struct {
	// Ellipsoid is "wgs84" or "globe", the spherical model.
	Ellipsoid string `yaml:"ellipsoid"`
	Log       Log    `yaml:"log"`
	Output    Output `yaml:"output"`
	Split     Split  `yaml:"split"`
}

func Default() Config {
	return Config{
		Ellipsoid: "wgs84",
		Log:       Log{Level: "info"},
		Output:    Output{Format: "text"},
		Split:     Split{Segments: 10},
	}
}

// Load reads the YAML file at path over the defaults, then applies the
// GEOFUN_* variables from envFiles and finally from the environment, which
// wins. A missing config file or env file is not an error.
func Load(path string, envFiles ...string) (Config, error) {
	c := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return c, err
		default:
			if err := yaml.Unmarshal(b, &c); err != nil {
				return c, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	env := map[string]string{}
	for _, f := range envFiles {
		m, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			return c, fmt.Errorf("%s: %w", f, err)
		}
		for k, v := range m {
			env[k] = v
		}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, envPrefix) {
			env[k] = v
		}
	}
	if err := c.applyEnv(env); err != nil {
		return c, err
	}

	return c, c.Validate()
}

func (c *Config) applyEnv(env map[string]string) error {
	if v, ok := env[envPrefix+"ELLIPSOID"]; ok {
		c.Ellipsoid = v
	}
	if v, ok := env[envPrefix+"LOG_LEVEL"]; ok {
		c.Log.Level = v
	}
	if v, ok := env[envPrefix+"LOG_DIR"]; ok {
		c.Log.Dir = v
	}
	if v, ok := env[envPrefix+"FORMAT"]; ok {
		c.Output.Format = v
	}
	if v, ok := env[envPrefix+"SEGMENTS"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sSEGMENTS: %w", envPrefix, err)
		}
		c.Split.Segments = n
	}
	return nil
}

func (c Config) Validate() error {
	var errs []error
	switch c.Ellipsoid {
	case "wgs84", "globe":
	default:
		errs = append(errs, fmt.Errorf("ellipsoid: %q is not wgs84 or globe", c.Ellipsoid))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: %q is not one of debug, info, warn or error", c.Log.Level))
	}
	if err := CheckFormat(c.Output.Format); err != nil {
		errs = append(errs, fmt.Errorf("output.format: %w", err))
	}
	if c.Split.Segments < 1 {
		errs = append(errs, fmt.Errorf("split.segments: %d must be at least 1", c.Split.Segments))
	}
	return errors.Join(errs...)
}

// CheckFormat returns an error unless format is a supported output format.
func CheckFormat(format string) error {
	switch format {
	case "text", "json", "msgpack":
		return nil
	}
	return fmt.Errorf("%q is not one of text, json or msgpack", format)
}
