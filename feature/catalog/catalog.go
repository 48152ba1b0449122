package catalog

// Variant identifies a furniture family. Every product created by one
// concrete factory carries the same variant.
type Variant string

const (
	VariantHatil Variant = "hatil"
	VariantOtobi Variant = "otobi"
)

// Variants returns the supported furniture variants in showcase order.
func Variants() []Variant {
	return []Variant{VariantHatil, VariantOtobi}
}

// IsValid checks if v names a supported furniture variant.
func (v Variant) IsValid() bool {
	switch v {
	case VariantHatil, VariantOtobi:
		return true
	default:
		return false
	}
}

// Kind identifies a product category within a furniture family.
type Kind string

const (
	KindChair Kind = "chair"
	KindTable Kind = "table"
)

// Chair is a furniture product that can be delivered to a customer.
type Chair interface {
	// Deliver emits the delivery confirmation for this chair.
	Deliver()
	// Variant reports the furniture family this chair belongs to.
	Variant() Variant
}

// Table is a furniture product that can be delivered to a customer.
type Table interface {
	// Deliver emits the delivery confirmation for this table.
	Deliver()
	// Variant reports the furniture family this table belongs to.
	Variant() Variant
}
