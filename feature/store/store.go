package store

import (
	"context"
	"fmt"

	"furniture-store/core/logger"
	"furniture-store/feature/catalog"
	"furniture-store/feature/factory"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store orders a matched chair and table set through a furniture factory.
// The orchestration only ever sees the FurnitureFactory and product
// interfaces; selectFactory decides which concrete family is produced.
type Store struct {
	variant       catalog.Variant
	selectFactory func(*zap.Logger) factory.FurnitureFactory
	logger        *zap.Logger
}

// Receipt summarizes one completed order.
type Receipt struct {
	// OrderID correlates the receipt with the delivery confirmations.
	OrderID string `json:"order_id"`
	// Variant is the furniture family the order was fulfilled from.
	Variant catalog.Variant `json:"variant"`
	// Items lists the delivered product kinds in delivery order.
	Items []catalog.Kind `json:"items"`
}

// NewHatilStore creates a store that orders Hatil furniture.
func NewHatilStore(log *zap.Logger) *Store {
	return &Store{
		variant: catalog.VariantHatil,
		selectFactory: func(l *zap.Logger) factory.FurnitureFactory {
			return factory.NewHatilFactory(l)
		},
		logger: log,
	}
}

// NewOtobiStore creates a store that orders Otobi furniture.
func NewOtobiStore(log *zap.Logger) *Store {
	return &Store{
		variant: catalog.VariantOtobi,
		selectFactory: func(l *zap.Logger) factory.FurnitureFactory {
			return factory.NewOtobiFactory(l)
		},
		logger: log,
	}
}

// ForVariant creates the store for a variant tag.
func ForVariant(v catalog.Variant, log *zap.Logger) (*Store, error) {
	switch v {
	case catalog.VariantHatil:
		return NewHatilStore(log), nil
	case catalog.VariantOtobi:
		return NewOtobiStore(log), nil
	default:
		return nil, fmt.Errorf("unknown furniture variant %q", v)
	}
}

// Variant reports the furniture family this store orders from.
func (s *Store) Variant() catalog.Variant {
	return s.variant
}

// OrderFurniture runs one order: select the factory, then create and
// deliver a chair followed by a table. The factory is constructed fresh
// inside the run so the order-scoped logger reaches every product.
func (s *Store) OrderFurniture(ctx context.Context) *Receipt {
	orderID := uuid.NewString()
	log := logger.WithOrderID(s.logger, orderID)

	furnitureFactory := s.selectFactory(log)

	chair := furnitureFactory.CreateChair()
	chair.Deliver()

	table := furnitureFactory.CreateTable()
	table.Deliver()

	log.Info("Order fulfilled", zap.String("variant", string(s.variant)))

	return &Receipt{
		OrderID: orderID,
		Variant: s.variant,
		Items:   []catalog.Kind{catalog.KindChair, catalog.KindTable},
	}
}
