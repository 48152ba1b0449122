package catalog

import "go.uber.org/zap"

// OtobiChair is the chair produced by the Otobi furniture family.
type OtobiChair struct {
	logger *zap.Logger
}

// NewOtobiChair creates an Otobi chair that reports its delivery on logger.
func NewOtobiChair(logger *zap.Logger) *OtobiChair {
	return &OtobiChair{logger: logger}
}

// Deliver confirms the delivery of the Otobi chair.
func (c *OtobiChair) Deliver() {
	c.logger.Info("Otobi chair delivered",
		zap.String("variant", string(VariantOtobi)),
		zap.String("kind", string(KindChair)))
}

// Variant reports the Otobi furniture family.
func (c *OtobiChair) Variant() Variant {
	return VariantOtobi
}

// OtobiTable is the table produced by the Otobi furniture family.
type OtobiTable struct {
	logger *zap.Logger
}

// NewOtobiTable creates an Otobi table that reports its delivery on logger.
func NewOtobiTable(logger *zap.Logger) *OtobiTable {
	return &OtobiTable{logger: logger}
}

// Deliver confirms the delivery of the Otobi table.
func (t *OtobiTable) Deliver() {
	t.logger.Info("Otobi table delivered",
		zap.String("variant", string(VariantOtobi)),
		zap.String("kind", string(KindTable)))
}

// Variant reports the Otobi furniture family.
func (t *OtobiTable) Variant() Variant {
	return VariantOtobi
}
