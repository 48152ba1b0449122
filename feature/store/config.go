package store

import "furniture-store/feature/catalog"

// Config holds configuration for the furniture store client.
type Config struct {
	// Variant selects the furniture family to order from (hatil, otobi).
	Variant string `mapstructure:"variant" default:"hatil"`
}

// IsValidVariant checks if the configured variant is supported.
func (c Config) IsValidVariant() bool {
	return catalog.Variant(c.Variant).IsValid()
}
