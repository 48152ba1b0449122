// Package factory implements the furniture factory layer.
//
// A FurnitureFactory creates one product of each kind (chair, table), all
// belonging to a single furniture family. Concrete factories exist for the
// Hatil and Otobi variants; each hardcodes its own family's constructors,
// so a factory can never hand out a product from a foreign family.
//
// # Variant Selection
//
// ForVariant maps a validated variant tag to its concrete factory. Callers
// that want a fixed family can construct NewHatilFactory or NewOtobiFactory
// directly.
//
// Factories are stateless apart from the logger they thread into their
// products, so they may be constructed per use or shared freely.
package factory
