package newsconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// DefaultPath is where the scaffolded project keeps its source configuration.
const DefaultPath = "configs/api_config.json"

// Load reads, schema-validates, and parses the source configuration, then
// resolves API keys from the environment. A source that declares api_key_env
// without the variable being set is a hard error: failing at load time beats
// failing halfway through a fetch run.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating config %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("config %s is invalid:\n%s", path, result.Summary())
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	for i := range cfg.Sources {
		src := &cfg.Sources[i]
		if src.APIKeyEnv == "" {
			continue
		}
		key := strings.TrimSpace(os.Getenv(src.APIKeyEnv))
		if key == "" {
			return nil, fmt.Errorf("API key missing for source %s: set %s", src.Name, src.APIKeyEnv)
		}
		src.APIKey = key
	}

	return cfg, nil
}

// Parse unmarshals raw configuration JSON without touching the environment.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
