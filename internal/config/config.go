// Package config loads handodds settings from an HCL file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is read when no --config flag is given
const DefaultFile = "handodds.hcl"

// Config represents the complete configuration. Every block is optional.
type Config struct {
	Engine *EngineSettings `hcl:"engine,block"`
	Output *OutputSettings `hcl:"output,block"`
	Log    *LogSettings    `hcl:"log,block"`
	Server *ServerSettings `hcl:"server,block"`
}

// EngineSettings controls the frequency engine
type EngineSettings struct {
	Workers int    `hcl:"workers,optional"`
	Target  string `hcl:"target,optional"`
}

// OutputSettings controls terminal rendering
type OutputSettings struct {
	Color     *bool `hcl:"color,optional"`
	Precision *int  `hcl:"precision,optional"`
}

// LogSettings controls the logger
type LogSettings struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// ServerSettings controls the HTTP/WebSocket service
type ServerSettings struct {
	Address string `hcl:"address,optional"`
	Port    int    `hcl:"port,optional"`
	Timeout string `hcl:"timeout,optional"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from an HCL file. A missing file yields Default().
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and applies defaults for anything left unset
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Engine == nil {
		c.Engine = &EngineSettings{}
	}
	if c.Engine.Workers == 0 {
		c.Engine.Workers = 1
	}
	if c.Engine.Target == "" {
		c.Engine.Target = "hand"
	}

	if c.Output == nil {
		c.Output = &OutputSettings{}
	}
	if c.Output.Color == nil {
		color := true
		c.Output.Color = &color
	}
	if c.Output.Precision == nil {
		precision := 2
		c.Output.Precision = &precision
	}

	if c.Log == nil {
		c.Log = &LogSettings{}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.Server == nil {
		c.Server = &ServerSettings{}
	}
	if c.Server.Address == "" {
		c.Server.Address = "localhost"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Timeout == "" {
		c.Server.Timeout = "10s"
	}
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if c.Engine.Workers < 1 {
		return fmt.Errorf("engine workers must be at least 1, got %d", c.Engine.Workers)
	}
	switch strings.ToLower(c.Engine.Target) {
	case "hand", "board":
	default:
		return fmt.Errorf("unknown engine target %q", c.Engine.Target)
	}

	if p := c.Output.Places(); p < 0 || p > 8 {
		return fmt.Errorf("output precision must be between 0 and 8, got %d", p)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if _, err := c.Server.TimeoutDuration(); err != nil {
		return err
	}

	return nil
}

// ColorEnabled reports whether output should be colored
func (o *OutputSettings) ColorEnabled() bool {
	return o.Color == nil || *o.Color
}

// Places returns the number of decimals shown in percentages
func (o *OutputSettings) Places() int {
	if o.Precision == nil {
		return 2
	}
	return *o.Precision
}

// TimeoutDuration parses the per-request timeout
func (s *ServerSettings) TimeoutDuration() (time.Duration, error) {
	d, err := time.ParseDuration(s.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid server timeout %q: %w", s.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("server timeout must be positive, got %s", d)
	}
	return d, nil
}

// GetServerAddress returns the full server address
func (s *ServerSettings) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", s.Address, s.Port)
}
