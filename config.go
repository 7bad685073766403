package errhound

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormatter is returned when a Config names a formatter that does not exist.
var ErrUnknownFormatter = errors.New("errhound: unknown formatter")

// Formatter names accepted by Config.
const (
	FormatterDefault  = "default"
	FormatterEnvelope = "envelope"
	FormatterProblem  = "problem"
)

// Config is the startup configuration of an Interceptor.
//
//	formatter: envelope
//	envelope:
//	  version: v1.0
//	problem:
//	  base_url: https://api.example.com/problems
type Config struct {
	Formatter string         `yaml:"formatter"`
	Envelope  EnvelopeConfig `yaml:"envelope"`
	Problem   ProblemConfig  `yaml:"problem"`
}

// EnvelopeConfig configures EnvelopeFormatter.
type EnvelopeConfig struct {
	Version string `yaml:"version"`
}

// ProblemConfig configures ProblemFormatter.
type ProblemConfig struct {
	BaseURL string `yaml:"base_url"`
}

// LoadConfig decodes a YAML configuration.
func LoadConfig(r io.Reader) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return c, nil
		}
		return Config{}, fmt.Errorf("errhound: decode config: %w", err)
	}
	return c, nil
}

// ReadConfigFile loads a YAML configuration file.
func ReadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("errhound: open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

// NewFormatter resolves the configured formatter.
func (c Config) NewFormatter() (Formatter, error) {
	switch c.Formatter {
	case "":
		return nil, ErrNoFormatter
	case FormatterDefault:
		return DefaultFormatter{}, nil
	case FormatterEnvelope:
		return EnvelopeFormatter{Version: c.Envelope.Version}, nil
	case FormatterProblem:
		return ProblemFormatter{BaseURL: c.Problem.BaseURL}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormatter, c.Formatter)
	}
}

// Options converts the configuration into Interceptor options.
func (c Config) Options() ([]Option, error) {
	f, err := c.NewFormatter()
	if err != nil {
		return nil, err
	}
	return []Option{WithFormatter(f)}, nil
}
