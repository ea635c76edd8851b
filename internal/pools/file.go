package pools

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a pool preset from a YAML file. Unknown categories are
// rejected; empty categories are allowed and degrade to the sentinel at
// selection time.
func LoadFile(path string) (Pools, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pools{}, fmt.Errorf("read pools file: %w", err)
	}

	var p Pools
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Pools{}, fmt.Errorf("parse pools file: %w", err)
	}
	return p, nil
}

// SaveFile writes a pool preset to a YAML file atomically.
func SaveFile(path string, p Pools) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal pools: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write pools temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename pools file: %w", err)
	}
	return nil
}
