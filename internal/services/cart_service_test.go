package services_test

import (
	"testing"
	"time"

	"renewrubber/internal/models"
	"renewrubber/internal/services"
	"renewrubber/internal/storage"

	"github.com/stretchr/testify/assert"
)

func testProduct(id string, price int) models.Product {
	return models.Product{
		ID:       id,
		Name:     "Test Resole " + id,
		Price:    price,
		Category: "resole",
		InStock:  true,
	}
}

func TestCartService_AddItemMergesQuantity(t *testing.T) {
	cart := services.NewCartService(storage.NewMemoryStore(), time.Millisecond)
	p := testProduct("prod_01", 4500)

	// Repeated adds of the same product collapse into one line whose
	// quantity equals the call count.
	for i := 0; i < 5; i++ {
		_, err := cart.AddItem(p)
		assert.NoError(t, err)
	}

	snap := cart.Snapshot()
	assert.Len(t, snap.Items, 1)
	assert.Equal(t, "prod_01", snap.Items[0].Product.ID)
	assert.Equal(t, 5, snap.Items[0].Quantity)
	assert.Equal(t, 5, snap.TotalItems)
}

func TestCartService_InsertionOrderPreserved(t *testing.T) {
	cart := services.NewCartService(storage.NewMemoryStore(), time.Millisecond)

	cart.AddItem(testProduct("prod_02", 3500))
	cart.AddItem(testProduct("prod_01", 4500))
	cart.AddItem(testProduct("prod_02", 3500))

	snap := cart.Snapshot()
	assert.Len(t, snap.Items, 2)
	// prod_02 entered the cart first, so it stays first.
	assert.Equal(t, "prod_02", snap.Items[0].Product.ID)
	assert.Equal(t, 2, snap.Items[0].Quantity)
	assert.Equal(t, "prod_01", snap.Items[1].Product.ID)
}

func TestCartService_UpdateQuantityRemovesAtZeroOrBelow(t *testing.T) {
	for _, qty := range []int{0, -1} {
		cart := services.NewCartService(storage.NewMemoryStore(), time.Millisecond)
		cart.AddItem(testProduct("prod_01", 4500))

		snap, err := cart.UpdateQuantity("prod_01", qty)
		assert.NoError(t, err)
		assert.Empty(t, snap.Items, "quantity %d must remove the line", qty)
	}
}

func TestCartService_UpdateQuantitySetsValue(t *testing.T) {
	cart := services.NewCartService(storage.NewMemoryStore(), time.Millisecond)
	cart.AddItem(testProduct("prod_01", 4500))

	snap, err := cart.UpdateQuantity("prod_01", 7)
	assert.NoError(t, err)
	assert.Equal(t, 7, snap.Items[0].Quantity)

	// Updating a product that is not in the cart is a no-op.
	snap, err = cart.UpdateQuantity("prod_99", 3)
	assert.NoError(t, err)
	assert.Len(t, snap.Items, 1)
	assert.Equal(t, 7, snap.Items[0].Quantity)
}

func TestCartService_RemoveItem(t *testing.T) {
	cart := services.NewCartService(storage.NewMemoryStore(), time.Millisecond)
	cart.AddItem(testProduct("prod_01", 4500))
	cart.AddItem(testProduct("prod_02", 3500))

	snap, err := cart.RemoveItem("prod_01")
	assert.NoError(t, err)
	assert.Len(t, snap.Items, 1)
	assert.Equal(t, "prod_02", snap.Items[0].Product.ID)

	// Removing an absent product is a no-op.
	snap, err = cart.RemoveItem("prod_01")
	assert.NoError(t, err)
	assert.Len(t, snap.Items, 1)
}

func TestCartService_DerivedTotals(t *testing.T) {
	cart := services.NewCartService(storage.NewMemoryStore(), time.Millisecond)

	// Two distinct products, quantities 1 and 3 at 4500 and 3500 cents.
	cart.AddItem(testProduct("prod_01", 4500))
	cart.AddItem(testProduct("prod_02", 3500))
	cart.UpdateQuantity("prod_02", 3)

	assert.Equal(t, 4, cart.TotalItems())
	assert.Equal(t, 15000, cart.TotalPrice())
}

func TestCartService_PersistenceRoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()

	cart := services.NewCartService(store, time.Millisecond)
	cart.AddItem(testProduct("prod_01", 4500))
	cart.AddItem(testProduct("prod_01", 4500))
	cart.AddItem(testProduct("prod_02", 3500))

	// A fresh store object over the same KV data hydrates the same cart,
	// the way a page reload rehydrates from local storage.
	reloaded := services.NewCartService(store, time.Millisecond)
	snap := reloaded.Snapshot()
	assert.Equal(t, 3, snap.TotalItems)
	assert.Equal(t, 12500, snap.TotalPrice)

	// Clear followed by a reload yields an empty cart.
	_, err := reloaded.Clear()
	assert.NoError(t, err)
	afterClear := services.NewCartService(store, time.Millisecond)
	assert.Empty(t, afterClear.Snapshot().Items)
	assert.Equal(t, 0, afterClear.TotalPrice())
}

func TestCartService_AnimationFlagAutoResets(t *testing.T) {
	cart := services.NewCartService(storage.NewMemoryStore(), 30*time.Millisecond)

	snap, err := cart.AddItem(testProduct("prod_01", 4500))
	assert.NoError(t, err)
	assert.True(t, snap.Animating)

	time.Sleep(80 * time.Millisecond)
	assert.False(t, cart.Snapshot().Animating)
}

func TestCartService_SubscribersSeeMutations(t *testing.T) {
	cart := services.NewCartService(storage.NewMemoryStore(), time.Millisecond)
	ch := cart.Subscribe()

	cart.AddItem(testProduct("prod_01", 4500))

	select {
	case snap := <-ch:
		assert.Equal(t, 1, snap.TotalItems)
	case <-time.After(time.Second):
		t.Fatal("expected a snapshot after AddItem")
	}

	// A slow subscriber keeps only the freshest snapshot.
	cart.AddItem(testProduct("prod_01", 4500))
	cart.AddItem(testProduct("prod_01", 4500))
	select {
	case snap := <-ch:
		assert.Equal(t, 3, snap.TotalItems)
	case <-time.After(time.Second):
		t.Fatal("expected a snapshot after further adds")
	}
}
