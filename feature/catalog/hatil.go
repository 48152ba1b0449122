package catalog

import "go.uber.org/zap"

// HatilChair is the chair produced by the Hatil furniture family.
type HatilChair struct {
	logger *zap.Logger
}

// NewHatilChair creates a Hatil chair that reports its delivery on logger.
func NewHatilChair(logger *zap.Logger) *HatilChair {
	return &HatilChair{logger: logger}
}

// Deliver confirms the delivery of the Hatil chair.
func (c *HatilChair) Deliver() {
	c.logger.Info("Hatil chair delivered",
		zap.String("variant", string(VariantHatil)),
		zap.String("kind", string(KindChair)))
}

// Variant reports the Hatil furniture family.
func (c *HatilChair) Variant() Variant {
	return VariantHatil
}

// HatilTable is the table produced by the Hatil furniture family.
type HatilTable struct {
	logger *zap.Logger
}

// NewHatilTable creates a Hatil table that reports its delivery on logger.
func NewHatilTable(logger *zap.Logger) *HatilTable {
	return &HatilTable{logger: logger}
}

// Deliver confirms the delivery of the Hatil table.
func (t *HatilTable) Deliver() {
	t.logger.Info("Hatil table delivered",
		zap.String("variant", string(VariantHatil)),
		zap.String("kind", string(KindTable)))
}

// Variant reports the Hatil furniture family.
func (t *HatilTable) Variant() Variant {
	return VariantHatil
}
