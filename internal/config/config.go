// Package config holds the settings of the f5rail command, read from a
// YAML file next to the executable.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/f5rail/easement/jwc"
)

// FileName is the name of the configuration file.
const FileName = "f5rail.yaml"

// Config is the content of the configuration file.
type Config struct {
	// Encoding of the exchange file, "sjis" or "utf8".
	Encoding string `yaml:"encoding,omitempty"`

	// Arcs with a radius of at least MaxArcRadius are written as straights.
	MaxArcRadius float64 `yaml:"max_arc_radius,omitempty"`

	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level,omitempty"`
}

// Default returns the settings used for everything the file leaves out.
func Default() *Config {
	return &Config{
		Encoding:     string(jwc.ShiftJIS),
		MaxArcRadius: jwc.DefaultMaxArcRadius,
		LogLevel:     logrus.WarnLevel.String(),
	}
}

// DefaultPath is FileName in the directory of the running executable.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return FileName
	}
	return filepath.Join(filepath.Dir(exe), FileName)
}

// Load reads the configuration file at path. A missing or empty file
// yields the defaults.
func Load(path string) (*Config, error) {
	fp, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.Debugf("no config file at %s, using defaults", path)
			return Default(), nil
		}
		return nil, pkgerrors.Wrapf(err, "failed to open config file %s", path)
	}
	defer func(fp *os.File) {
		if err := fp.Close(); err != nil {
			logrus.Warnf("failed to close config file %s", path)
		}
	}(fp)
	c, err := Read(fp)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "config file %s", path)
	}
	logrus.Debugf("loaded config file %s", path)
	return c, nil
}

// Read parses a configuration from r, filling in defaults.
// Unknown keys are rejected.
func Read(r io.Reader) (*Config, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to read config")
	}
	c := Default()
	if strings.TrimSpace(string(b)) == "" {
		return c, nil
	}
	decoder := yaml.NewDecoder(bytes.NewReader(b))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to parse config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the values of c.
func (c *Config) Validate() error {
	if _, err := jwc.ParseEncoding(c.Encoding); err != nil {
		return pkgerrors.Wrap(err, "invalid encoding")
	}
	if c.MaxArcRadius < 0 {
		return pkgerrors.Errorf("invalid max_arc_radius %g: must not be negative", c.MaxArcRadius)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return pkgerrors.Wrap(err, "invalid log_level")
	}
	return nil
}

// Level is the logrus level of c. Invalid levels yield logrus.WarnLevel.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}

// WriterOptions configure an exchange file writer according to c.
func (c *Config) WriterOptions() []jwc.Option {
	enc, err := jwc.ParseEncoding(c.Encoding)
	if err != nil {
		enc = jwc.ShiftJIS
	}
	return []jwc.Option{
		jwc.WithEncoding(enc),
		jwc.WithMaxArcRadius(c.MaxArcRadius),
	}
}
