// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production). Delivery confirmations emitted by the furniture
// products flow through this logger.
//
// # Order Correlation
//
// Each order run is stamped with an order id. The WithOrderID helper attaches
// that id to the logger handed to the factory, ensuring every delivery
// confirmation of one order carries the same order_id field.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Store opened")
//
//	// In an order run:
//	l := logger.WithOrderID(log, orderID)
//	l.Info("Hatil chair delivered")
package logger
