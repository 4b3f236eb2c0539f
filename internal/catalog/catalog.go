// Package catalog loads the static instrument table shown by the genie.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bobmcallan/genie/internal/models"
)

//go:embed default.toml
var defaultCatalog []byte

// Default returns the built-in catalog. It panics only if the embedded
// file is malformed, which the package tests guard against.
func Default() *models.Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Load returns the built-in catalog when path is empty, otherwise the
// catalog read from path. Lists absent from the file keep their defaults.
func Load(path string) (*models.Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	c, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	def := Default()
	if c.StakingPools == nil {
		c.StakingPools = def.StakingPools
	}
	if c.YieldFarms == nil {
		c.YieldFarms = def.YieldFarms
	}
	if c.InsurancePools == nil {
		c.InsurancePools = def.InsurancePools
	}
	if c.ROIScenarios == nil {
		c.ROIScenarios = def.ROIScenarios
	}

	if err := Validate(c); err != nil {
		return nil, fmt.Errorf("invalid catalog file %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a complete catalog document.
func Parse(data []byte) (*models.Catalog, error) {
	c, err := decode(data)
	if err != nil {
		return nil, err
	}
	if err := Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

func decode(data []byte) (*models.Catalog, error) {
	var c models.Catalog
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
