package factory

import (
	"furniture-store/feature/catalog"

	"go.uber.org/zap"
)

// OtobiFactory produces Otobi furniture exclusively.
type OtobiFactory struct {
	logger *zap.Logger
}

// NewOtobiFactory creates a factory for the Otobi furniture family.
func NewOtobiFactory(logger *zap.Logger) *OtobiFactory {
	return &OtobiFactory{logger: logger}
}

// CreateChair returns a new Otobi chair.
func (f *OtobiFactory) CreateChair() catalog.Chair {
	return catalog.NewOtobiChair(f.logger)
}

// CreateTable returns a new Otobi table.
func (f *OtobiFactory) CreateTable() catalog.Table {
	return catalog.NewOtobiTable(f.logger)
}
