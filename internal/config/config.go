package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the config file looked up when none is given.
const DefaultFile = "handrank.hcl"

// Config represents the complete handrank configuration
type Config struct {
	Log    LogSettings    `hcl:"log,block"`
	Output OutputSettings `hcl:"output,block"`
	Census CensusSettings `hcl:"census,block"`
}

// LogSettings controls the logger
type LogSettings struct {
	Level      string `hcl:"level,optional"`
	Timestamps *bool  `hcl:"timestamps,optional"`
}

// OutputSettings controls how hands and tables are printed
type OutputSettings struct {
	Color   *bool `hcl:"color,optional"`
	Symbols *bool `hcl:"symbols,optional"`
}

// CensusSettings controls the exhaustive census
type CensusSettings struct {
	Workers int `hcl:"workers,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Log: LogSettings{
			Level:      "info",
			Timestamps: boolPtr(false),
		},
		Output: OutputSettings{
			Color:   boolPtr(true),
			Symbols: boolPtr(true),
		},
		Census: CensusSettings{
			Workers: 0,
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	// Blocks are optional in the file, so decode into a shape where they are
	// pointers and fill the rest from defaults.
	var raw struct {
		Log    *LogSettings    `hcl:"log,block"`
		Output *OutputSettings `hcl:"output,block"`
		Census *CensusSettings `hcl:"census,block"`
	}
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := Default()
	if raw.Log != nil {
		if raw.Log.Level != "" {
			config.Log.Level = raw.Log.Level
		}
		if raw.Log.Timestamps != nil {
			config.Log.Timestamps = raw.Log.Timestamps
		}
	}
	if raw.Output != nil {
		if raw.Output.Color != nil {
			config.Output.Color = raw.Output.Color
		}
		if raw.Output.Symbols != nil {
			config.Output.Symbols = raw.Output.Symbols
		}
	}
	if raw.Census != nil {
		config.Census.Workers = raw.Census.Workers
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	if c.Census.Workers < 0 {
		return fmt.Errorf("census workers cannot be negative")
	}
	return nil
}

// LogLevel returns the parsed log level
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Timestamps reports whether log lines carry timestamps
func (c *Config) Timestamps() bool {
	return c.Log.Timestamps != nil && *c.Log.Timestamps
}

// Color reports whether output may use colour
func (c *Config) Color() bool {
	return c.Output.Color == nil || *c.Output.Color
}

// Symbols reports whether cards print with suit symbols
func (c *Config) Symbols() bool {
	return c.Output.Symbols == nil || *c.Output.Symbols
}

func boolPtr(b bool) *bool {
	return &b
}
