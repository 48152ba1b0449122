package store_test

import (
	"context"
	"testing"

	"furniture-store/feature/catalog"
	"furniture-store/feature/store"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return zap.New(core), logs
}

// deliveries filters the captured log entries down to delivery confirmations.
func deliveries(logs *observer.ObservedLogs) []observer.LoggedEntry {
	var out []observer.LoggedEntry
	for _, e := range logs.All() {
		if _, ok := e.ContextMap()["kind"]; ok {
			out = append(out, e)
		}
	}
	return out
}

func TestOrderFurniture(t *testing.T) {
	tests := []struct {
		name    string
		make    func(l *zap.Logger) *store.Store
		variant catalog.Variant
	}{
		{"Hatil", store.NewHatilStore, catalog.VariantHatil},
		{"Otobi", store.NewOtobiStore, catalog.VariantOtobi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logg, logs := observed()
			shop := tt.make(logg)

			assert.Equal(t, tt.variant, shop.Variant())

			receipt := shop.OrderFurniture(context.Background())

			assert.NotEmpty(t, receipt.OrderID)
			assert.Equal(t, tt.variant, receipt.Variant)
			assert.Equal(t, []catalog.Kind{catalog.KindChair, catalog.KindTable}, receipt.Items)

			// Exactly two deliveries, chair before table, both from the
			// store's own family and stamped with the order id.
			got := deliveries(logs)
			assert.Len(t, got, 2)
			assert.Equal(t, string(catalog.KindChair), got[0].ContextMap()["kind"])
			assert.Equal(t, string(catalog.KindTable), got[1].ContextMap()["kind"])
			for _, e := range got {
				assert.Equal(t, string(tt.variant), e.ContextMap()["variant"])
				assert.Equal(t, receipt.OrderID, e.ContextMap()["order_id"])
			}
		})
	}
}

func TestSequentialOrders(t *testing.T) {
	logg, logs := observed()

	hatil := store.NewHatilStore(logg).OrderFurniture(context.Background())
	otobi := store.NewOtobiStore(logg).OrderFurniture(context.Background())

	got := deliveries(logs)
	assert.Len(t, got, 4)

	want := []struct {
		variant catalog.Variant
		kind    catalog.Kind
	}{
		{catalog.VariantHatil, catalog.KindChair},
		{catalog.VariantHatil, catalog.KindTable},
		{catalog.VariantOtobi, catalog.KindChair},
		{catalog.VariantOtobi, catalog.KindTable},
	}
	for i, w := range want {
		assert.Equal(t, string(w.variant), got[i].ContextMap()["variant"])
		assert.Equal(t, string(w.kind), got[i].ContextMap()["kind"])
	}

	assert.NotEqual(t, hatil.OrderID, otobi.OrderID)
}

func TestForVariant(t *testing.T) {
	tests := []struct {
		name    string
		variant catalog.Variant
		wantErr bool
	}{
		{"Hatil", catalog.VariantHatil, false},
		{"Otobi", catalog.VariantOtobi, false},
		{"Unknown", "ikea", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shop, err := store.ForVariant(tt.variant, zap.NewNop())
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, shop)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.variant, shop.Variant())
		})
	}
}

func TestConfig_IsValidVariant(t *testing.T) {
	tests := []struct {
		name    string
		variant string
		want    bool
	}{
		{"Hatil", "hatil", true},
		{"Otobi", "otobi", true},
		{"Invalid", "ikea", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := store.Config{Variant: tt.variant}
			assert.Equal(t, tt.want, c.IsValidVariant())
		})
	}
}
