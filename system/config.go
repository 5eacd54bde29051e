package system

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/n64sim/n64sim/emu"
	"github.com/n64sim/n64sim/mem"
)

// Config holds the tunable system parameters.
type Config struct {
	// MemoryMiB is the RDRAM size in whole mebibytes. Default: 4 (the
	// stock, unexpanded console).
	MemoryMiB int `json:"memory_mib"`

	// CyclesPerFrame is how many CPU cycles one video frame represents.
	// A real NTSC console runs 93750000/60 ≈ 1562500 per frame; the model
	// steps a scaled-down slice. Default: 1000.
	CyclesPerFrame int `json:"cycles_per_frame"`

	// PipelineDepth is the CPU pipeline stage count. 1 gives an
	// unpipelined stepper. Default: 5.
	PipelineDepth int `json:"pipeline_depth"`
}

// DefaultConfig returns a Config with the stock console values.
func DefaultConfig() *Config {
	return &Config{
		MemoryMiB:      mem.DefaultRDRAMMiB,
		CyclesPerFrame: 1000,
		PipelineDepth:  emu.DefaultPipelineDepth,
	}
}

// LoadConfig loads a Config from a JSON file. Missing fields keep their
// defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read system config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse system config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.MemoryMiB < 1 {
		return fmt.Errorf("memory_mib must be at least 1, got %d", c.MemoryMiB)
	}
	if c.CyclesPerFrame < 1 {
		return fmt.Errorf("cycles_per_frame must be at least 1, got %d", c.CyclesPerFrame)
	}
	if c.PipelineDepth < 1 {
		return fmt.Errorf("pipeline_depth must be at least 1, got %d", c.PipelineDepth)
	}
	return nil
}
