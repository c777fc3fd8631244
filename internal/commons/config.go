package commons

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"agromart/internal/config"
)

// LoadConfigFile overlays settings from a YAML file onto cfg. Used for
// deployments that ship a config file instead of environment variables.
func LoadConfigFile(path string, cfg *config.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}
