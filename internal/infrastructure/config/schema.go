package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// GenerateSchema returns the JSON schema of the configuration file.
func GenerateSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	r.FieldNameTag = "toml"
	schema := r.Reflect(&Config{})

	// Set schema metadata
	schema.ID = "https://github.com/bnema/a11ytrack/config.schema.json"
	schema.Title = "a11ytrack Configuration"
	schema.Description = "Configuration schema for a11ytrack, an accessibility preference tracker"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
