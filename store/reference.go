package store

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/melochey/storefront-api/models"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ReferenceData is the static storefront dataset: products, category tabs
// and the promo table. It is loaded once at startup and never mutated.
type ReferenceData struct {
	Products   []models.Product  `yaml:"products"`
	Categories []models.Category `yaml:"categories"`
	PromoCodes map[string]int    `yaml:"promo_codes"`
}

// LoadReferenceData reads the dataset from path, or from the embedded
// default catalog when path is empty.
func LoadReferenceData(path string) (*ReferenceData, error) {
	raw := defaultsYAML
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read reference data: %w", err)
		}
		raw = data
	}

	var ref ReferenceData
	if err := yaml.Unmarshal(raw, &ref); err != nil {
		return nil, fmt.Errorf("parse reference data: %w", err)
	}

	for code, pct := range ref.PromoCodes {
		if pct < 0 || pct > 100 {
			return nil, fmt.Errorf("promo code %q has discount %d%%, must be 0-100", code, pct)
		}
	}

	return &ref, nil
}
