package services_test

import (
	"sync"
	"testing"

	"salonspa/internal/models"
	"salonspa/internal/repositories"
	"salonspa/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newCartFixture() (*services.CartService, *repositories.MockCartRepository, *repositories.MockProductRepository, *repositories.MockServiceRepository) {
	cartRepo := repositories.NewMockCartRepository()
	productRepo := repositories.NewMockProductRepository()
	serviceRepo := repositories.NewMockServiceRepository()

	_ = productRepo.Create(&models.Product{
		ID:    "prod-1",
		Name:  "Argan Oil 100ml",
		Price: decimal.RequireFromString("12.50"),
		Stock: 10,
	})
	_ = serviceRepo.Create(&models.Service{
		ID:    "svc-1",
		Name:  "Relaxing Massage",
		Price: decimal.RequireFromString("45.00"),
	})

	return services.NewCartService(cartRepo, productRepo, serviceRepo), cartRepo, productRepo, serviceRepo
}

func TestCartService_AddItem_UpsertsLine(t *testing.T) {
	cartService, _, _, _ := newCartFixture()

	cart, err := cartService.AddItem("user-1", models.ItemKindProduct, "prod-1", 2)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)

	// Adding the same product again increments the existing line.
	cart, err = cartService.AddItem("user-1", models.ItemKindProduct, "prod-1", 3)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	// A service goes on its own line even with the same quantity.
	cart, err = cartService.AddItem("user-1", models.ItemKindService, "svc-1", 1)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 2)
}

func TestCartService_AddItem_Validation(t *testing.T) {
	cartService, cartRepo, _, _ := newCartFixture()

	_, err := cartService.AddItem("user-1", models.ItemKindProduct, "prod-1", 0)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = cartService.AddItem("user-1", models.ItemKindProduct, "prod-1", -3)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = cartService.AddItem("user-1", models.ItemKind("voucher"), "prod-1", 1)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = cartService.AddItem("user-1", models.ItemKindProduct, "no-such-product", 1)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = cartService.AddItem("user-1", models.ItemKindService, "no-such-service", 1)
	assert.ErrorIs(t, err, models.ErrNotFound)

	// None of the rejected calls should have left a cart line behind.
	assert.Equal(t, 0, cartRepo.ActiveCartCount("user-1"))
}

func TestCartService_RemoveItem_Idempotent(t *testing.T) {
	cartService, _, _, _ := newCartFixture()

	cart, err := cartService.AddItem("user-1", models.ItemKindProduct, "prod-1", 1)
	assert.NoError(t, err)
	itemID := cart.Items[0].ID

	assert.NoError(t, cartService.RemoveItem("user-1", itemID))
	// Removing the same line again, or any unknown line, is a no-op.
	assert.NoError(t, cartService.RemoveItem("user-1", itemID))
	assert.NoError(t, cartService.RemoveItem("user-1", "no-such-item"))
	// A user who never had a cart can also "remove" without error.
	assert.NoError(t, cartService.RemoveItem("user-without-cart", "whatever"))

	cart, err = cartService.GetOrCreateActiveCart("user-1")
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	cartService, _, _, _ := newCartFixture()

	cart, err := cartService.AddItem("user-1", models.ItemKindProduct, "prod-1", 2)
	assert.NoError(t, err)
	itemID := cart.Items[0].ID

	assert.NoError(t, cartService.UpdateQuantity("user-1", itemID, 7))
	cart, _ = cartService.GetOrCreateActiveCart("user-1")
	assert.Equal(t, 7, cart.Items[0].Quantity)

	// Quantity below 1 removes the line instead of storing a zero.
	assert.NoError(t, cartService.UpdateQuantity("user-1", itemID, 0))
	cart, _ = cartService.GetOrCreateActiveCart("user-1")
	assert.Empty(t, cart.Items)

	err = cartService.UpdateQuantity("user-1", "no-such-item", 3)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCartService_Totals_LivePricing(t *testing.T) {
	cartService, _, productRepo, _ := newCartFixture()

	_, err := cartService.AddItem("user-1", models.ItemKindProduct, "prod-1", 2)
	assert.NoError(t, err)
	_, err = cartService.AddItem("user-1", models.ItemKindService, "svc-1", 1)
	assert.NoError(t, err)

	totals, err := cartService.Totals("user-1")
	assert.NoError(t, err)
	assert.Equal(t, 3, totals.ItemCount)
	// 2 x 12.50 + 1 x 45.00
	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("70.00")),
		"expected 70.00, got %s", totals.Subtotal)

	// A catalog price change shows up in the next totals call because cart
	// lines never store prices.
	product, _ := productRepo.GetByID("prod-1")
	product.Price = decimal.RequireFromString("20.00")
	assert.NoError(t, productRepo.Update(product))

	totals, err = cartService.Totals("user-1")
	assert.NoError(t, err)
	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("85.00")),
		"expected 85.00, got %s", totals.Subtotal)
}

func TestCartService_Totals_NoActiveCart(t *testing.T) {
	cartService, _, _, _ := newCartFixture()

	totals, err := cartService.Totals("user-without-cart")
	assert.NoError(t, err)
	assert.Equal(t, 0, totals.ItemCount)
	assert.True(t, totals.Subtotal.IsZero())
}

func TestCartService_SingleActiveCart_Concurrent(t *testing.T) {
	cartService, cartRepo, _, _ := newCartFixture()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cartService.GetOrCreateActiveCart("user-1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, cartRepo.ActiveCartCount("user-1"))
}
