package racksetup

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseUserConfig decodes a bulk update payload from YAML. Unknown fields
// are rejected so a typo'd field name fails loudly instead of silently
// clearing the setting it was meant to replace.
func ParseUserConfig(data []byte) (*PutUserConfig, error) {
	var put PutUserConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&put); err != nil {
		return nil, fmt.Errorf("failed to parse rack setup config: %w", err)
	}
	return &put, nil
}

// LoadUserConfigFile reads and decodes a bulk update payload from a file.
func LoadUserConfigFile(path string) (*PutUserConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rack setup config: %w", err)
	}
	return ParseUserConfig(data)
}
