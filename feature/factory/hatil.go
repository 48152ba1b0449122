package factory

import (
	"furniture-store/feature/catalog"

	"go.uber.org/zap"
)

// HatilFactory produces Hatil furniture exclusively.
type HatilFactory struct {
	logger *zap.Logger
}

// NewHatilFactory creates a factory for the Hatil furniture family.
func NewHatilFactory(logger *zap.Logger) *HatilFactory {
	return &HatilFactory{logger: logger}
}

// CreateChair returns a new Hatil chair.
func (f *HatilFactory) CreateChair() catalog.Chair {
	return catalog.NewHatilChair(f.logger)
}

// CreateTable returns a new Hatil table.
func (f *HatilFactory) CreateTable() catalog.Table {
	return catalog.NewHatilTable(f.logger)
}
