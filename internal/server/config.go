package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/charlievieth/decasify"
	"github.com/charlievieth/decasify/internal/logger"
)

// Config is the server configuration read from YAML.
type Config struct {
	Addr         string        `yaml:"addr" validate:"required,hostname_port"`
	ReadTimeout  time.Duration `yaml:"read_timeout" validate:"gte=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" validate:"gte=0"`
	// MaxInputBytes limits the size of request bodies.
	MaxInputBytes int64 `yaml:"max_input_bytes" validate:"gte=0"`
	// Compression enables brotli encoded responses for clients that accept
	// them.
	Compression bool `yaml:"compression"`

	// Default locale and style guide of requests that do not set them.
	Locale string `yaml:"locale" validate:"locale"`
	Style  string `yaml:"style" validate:"styleguide"`

	Log     logger.Config `yaml:"log"`
	Tracing Tracing       `yaml:"tracing"`
	Metrics Metrics       `yaml:"metrics"`
}

// Tracing configures the OTLP trace exporter. Tracing is disabled when
// Endpoint is empty.
type Tracing struct {
	Endpoint    string  `yaml:"endpoint" validate:"omitempty,hostname_port"`
	Insecure    bool    `yaml:"insecure"`
	ServiceName string  `yaml:"service_name"`
	SampleRate  float64 `yaml:"sample_rate" validate:"gte=0,lte=1"`
}

// Metrics configures the Prometheus endpoint.
type Metrics struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path" validate:"omitempty,startswith=/"`
}

// DefaultConfig returns the configuration used for unset fields.
func DefaultConfig() Config {
	return Config{
		Addr:          "localhost:8080",
		ReadTimeout:   10 * time.Second,
		WriteTimeout:  10 * time.Second,
		MaxInputBytes: 1 << 20,
		Compression:   true,
		Log:           logger.DefaultConfig,
		Tracing: Tracing{
			ServiceName: "decasify",
			SampleRate:  1,
		},
		Metrics: Metrics{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
		_, err := decasify.ParseLocale(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("styleguide", func(fl validator.FieldLevel) bool {
		_, err := decasify.ParseStyleGuide(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("server: invalid configuration: %w", err)
	}
	return nil
}

// ParseConfig decodes a YAML configuration from r. Fields not present keep
// their DefaultConfig values.
func ParseConfig(r io.Reader) (*Config, error) {
	conf := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&conf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("server: parsing configuration: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// LoadConfig reads the YAML configuration file name. An empty name returns
// the default configuration.
func LoadConfig(name string) (*Config, error) {
	if name == "" {
		conf := DefaultConfig()
		return &conf, conf.Validate()
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	conf, err := ParseConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return conf, nil
}
