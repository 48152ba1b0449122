package factory

import (
	"fmt"

	"furniture-store/feature/catalog"

	"go.uber.org/zap"
)

// FurnitureFactory creates one product of each kind. Every product
// created by a single factory instance belongs to the same variant
// family; that pairing is the contract each concrete factory enforces
// by hardcoding its own variant's constructors.
type FurnitureFactory interface {
	// CreateChair returns a freshly constructed chair.
	CreateChair() catalog.Chair
	// CreateTable returns a freshly constructed table.
	CreateTable() catalog.Table
}

// ForVariant maps a variant tag to its concrete factory. The returned
// factory hands logger to every product it creates.
func ForVariant(v catalog.Variant, logger *zap.Logger) (FurnitureFactory, error) {
	switch v {
	case catalog.VariantHatil:
		return NewHatilFactory(logger), nil
	case catalog.VariantOtobi:
		return NewOtobiFactory(logger), nil
	default:
		return nil, fmt.Errorf("unknown furniture variant %q", v)
	}
}
