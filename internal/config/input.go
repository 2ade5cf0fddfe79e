package config

import (
	"fmt"
	"os"

	"github.com/exitsim/exit-value-estimator/internal/calculation"
	"github.com/exitsim/exit-value-estimator/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of simulation parameter files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads simulation parameters from a YAML (or JSON) file. Keys
// missing from the file keep their default values.
func (ip *InputParser) LoadFromFile(filename string) (*domain.SimulationConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates simulation parameters from raw YAML.
func (ip *InputParser) Parse(data []byte) (*domain.SimulationConfig, error) {
	config := domain.DefaultSimulationConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.SimulationConfig) error {
	return calculation.ValidateConfig(config)
}

// CreateExampleConfiguration creates the default parameter set
func (ip *InputParser) CreateExampleConfiguration() *domain.SimulationConfig {
	config := domain.DefaultSimulationConfig()
	return &config
}

// SaveConfiguration writes config as YAML to filename.
func SaveConfiguration(config *domain.SimulationConfig, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
