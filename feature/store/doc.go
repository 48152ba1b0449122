// Package store implements the furniture ordering client.
//
// A Store binds a factory selector for exactly one furniture family and
// runs the fixed order flow: select the factory, create and deliver a
// chair, create and deliver a table. The flow never names a concrete
// factory or product type, so swapping the selector swaps the entire
// delivered family without touching the orchestration.
//
// # Components
//
//   - Store: the ordering client; one per furniture family.
//   - Receipt: the order summary returned by OrderFurniture.
//   - Config: configuration-driven variant selection with validation.
//
// Each order run is stamped with a UUID that appears on every delivery
// confirmation and on the receipt.
package store
