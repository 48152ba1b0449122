// Package catalog defines the furniture product catalog.
//
// It declares the product interfaces (Chair, Table) and their concrete
// implementations for each supported furniture family.
//
// # Supported Variants
//
//   - Hatil: HatilChair and HatilTable.
//   - Otobi: OtobiChair and OtobiTable.
//
// Products are stateless apart from the logger they report deliveries on.
// Construction never fails and Deliver always succeeds; the only observable
// effect of a product is its delivery confirmation, which identifies both
// the variant and the kind of the item.
package catalog
