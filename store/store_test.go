package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boutique/models"
)

func product(id string, price float64) models.Product {
	return models.Product{ID: id, Name: "Produto " + id, Price: price}
}

func cartItem(id, size, color string, qty int) models.CartItem {
	return models.CartItem{Product: product(id, 50), Size: size, Color: color, Quantity: qty}
}

func TestAddToCartMergesIdenticalVariant(t *testing.T) {
	s := New()

	s.Dispatch(AddToCart(cartItem("p1", "M", "Azul", 1)))
	state := s.Dispatch(AddToCart(cartItem("p1", "M", "Azul", 1)))

	require.Len(t, state.Cart, 1)
	assert.Equal(t, 2, state.Cart[0].Quantity)

	// a different size is a distinct line
	state = s.Dispatch(AddToCart(cartItem("p1", "G", "Azul", 1)))
	require.Len(t, state.Cart, 2)
	assert.Equal(t, 2, state.Cart[0].Quantity)
	assert.Equal(t, "G", state.Cart[1].Size)
	assert.Equal(t, 1, state.Cart[1].Quantity)
}

func TestAddToCartPreservesLineOrder(t *testing.T) {
	s := New()

	s.Dispatch(AddToCart(cartItem("p1", "M", "", 1)))
	s.Dispatch(AddToCart(cartItem("p2", "", "", 1)))
	state := s.Dispatch(AddToCart(cartItem("p1", "M", "", 3)))

	require.Len(t, state.Cart, 2)
	assert.Equal(t, "p1", state.Cart[0].Product.ID)
	assert.Equal(t, 4, state.Cart[0].Quantity)
	assert.Equal(t, "p2", state.Cart[1].Product.ID)
}

func TestRemoveFromCartExactVariant(t *testing.T) {
	s := New()

	s.Dispatch(AddToCart(cartItem("p1", "M", "Azul", 1)))
	s.Dispatch(AddToCart(cartItem("p1", "G", "Azul", 1)))

	state := s.Dispatch(RemoveFromCart(models.CartKey{ProductID: "p1", Size: "M", Color: "Azul"}))

	require.Len(t, state.Cart, 1)
	assert.Equal(t, "G", state.Cart[0].Size)
}

func TestRemoveProductFromCartRemovesAllVariants(t *testing.T) {
	s := New()

	s.Dispatch(AddToCart(cartItem("p1", "M", "Azul", 1)))
	s.Dispatch(AddToCart(cartItem("p1", "G", "Rosa", 2)))
	s.Dispatch(AddToCart(cartItem("p2", "", "", 1)))

	state := s.Dispatch(RemoveProductFromCart("p1"))

	require.Len(t, state.Cart, 1)
	assert.Equal(t, "p2", state.Cart[0].Product.ID)
}

func TestUpdateCartQuantitySetsVerbatim(t *testing.T) {
	s := New()

	s.Dispatch(AddToCart(cartItem("p1", "M", "Azul", 1)))
	state := s.Dispatch(UpdateCartQuantity(models.CartKey{ProductID: "p1", Size: "M", Color: "Azul"}, 5))

	require.Len(t, state.Cart, 1)
	assert.Equal(t, 5, state.Cart[0].Quantity)
}

func TestUpdateCartQuantityZeroKeepsLine(t *testing.T) {
	s := New()

	s.Dispatch(AddToCart(cartItem("p1", "M", "Azul", 2)))
	state := s.Dispatch(UpdateCartQuantity(models.CartKey{ProductID: "p1", Size: "M", Color: "Azul"}, 0))

	// the store never auto-removes; only RemoveFromCart deletes a line
	require.Len(t, state.Cart, 1)
	assert.Equal(t, 0, state.Cart[0].Quantity)

	state = s.Dispatch(RemoveFromCart(models.CartKey{ProductID: "p1", Size: "M", Color: "Azul"}))
	assert.Empty(t, state.Cart)
}

func TestClearCart(t *testing.T) {
	s := New()

	s.Dispatch(AddToCart(cartItem("p1", "M", "Azul", 1)))
	s.Dispatch(AddToCart(cartItem("p2", "", "", 1)))

	state := s.Dispatch(ClearCart())
	assert.Empty(t, state.Cart)
}

func TestFavoritesIdempotentAdd(t *testing.T) {
	s := New()

	s.Dispatch(AddToFavorites(product("p1", 50)))
	state := s.Dispatch(AddToFavorites(product("p1", 50)))

	require.Len(t, state.Favorites, 1)
	assert.Equal(t, "p1", state.Favorites[0].ID)
}

func TestFavoritesInsertionOrderAndRemoval(t *testing.T) {
	s := New()

	s.Dispatch(AddToFavorites(product("p1", 50)))
	s.Dispatch(AddToFavorites(product("p2", 30)))
	s.Dispatch(AddToFavorites(product("p3", 20)))

	state := s.Dispatch(RemoveFromFavorites("p2"))
	require.Len(t, state.Favorites, 2)
	assert.Equal(t, "p1", state.Favorites[0].ID)
	assert.Equal(t, "p3", state.Favorites[1].ID)

	// removing an absent product is a no-op
	state = s.Dispatch(RemoveFromFavorites("p2"))
	assert.Len(t, state.Favorites, 2)
}

func TestSetUser(t *testing.T) {
	s := New()

	user := &models.AdminUser{ID: "u1", Email: "admin@example.com", Role: "admin"}
	state := s.Dispatch(SetUser(user))
	require.NotNil(t, state.User)
	assert.Equal(t, "u1", state.User.ID)

	state = s.Dispatch(SetUser(nil))
	assert.Nil(t, state.User)
}

func TestAddOrderPrepends(t *testing.T) {
	s := New()

	s.Dispatch(AddOrder(models.Order{ID: "o1", Status: models.OrderStatusPending}))
	state := s.Dispatch(AddOrder(models.Order{ID: "o2", Status: models.OrderStatusPending}))

	require.Len(t, state.Orders, 2)
	assert.Equal(t, "o2", state.Orders[0].ID)
	assert.Equal(t, "o1", state.Orders[1].ID)
}

func TestSetOrdersReplacesWholesale(t *testing.T) {
	s := New()

	s.Dispatch(AddOrder(models.Order{ID: "o1"}))
	state := s.Dispatch(SetOrders([]models.Order{{ID: "o9"}, {ID: "o8"}}))

	require.Len(t, state.Orders, 2)
	assert.Equal(t, "o9", state.Orders[0].ID)
}

func TestUpdateOrderStatus(t *testing.T) {
	s := New()
	s.Dispatch(AddOrder(models.Order{ID: "o1", Status: models.OrderStatusPending}))

	t.Run("replaces status on the matching order", func(t *testing.T) {
		state := s.Dispatch(UpdateOrderStatus("o1", models.OrderStatusConfirmed))
		assert.Equal(t, models.OrderStatusConfirmed, state.Orders[0].Status)
	})

	t.Run("terminal states are not enforced", func(t *testing.T) {
		s.Dispatch(UpdateOrderStatus("o1", models.OrderStatusDelivered))
		state := s.Dispatch(UpdateOrderStatus("o1", models.OrderStatusPending))
		assert.Equal(t, models.OrderStatusPending, state.Orders[0].Status)
	})

	t.Run("status string is not validated", func(t *testing.T) {
		state := s.Dispatch(UpdateOrderStatus("o1", "lost_in_transit"))
		assert.Equal(t, "lost_in_transit", state.Orders[0].Status)
	})

	t.Run("unknown order id is a no-op", func(t *testing.T) {
		before := s.Snapshot()
		after := s.Dispatch(UpdateOrderStatus("missing", models.OrderStatusCancelled))
		assert.Equal(t, before.Orders, after.Orders)
	})
}

func TestUnknownActionIsNoOp(t *testing.T) {
	s := New()
	s.Dispatch(AddToCart(cartItem("p1", "M", "Azul", 1)))
	s.Dispatch(AddToFavorites(product("p2", 30)))
	s.Dispatch(AddOrder(models.Order{ID: "o1"}))

	before := s.Snapshot()
	after := s.Dispatch(Action{typ: "not_a_real_action"})

	assert.Equal(t, before, after)
	assert.Equal(t, before, s.Snapshot())
}

func TestSnapshotsAreImmutable(t *testing.T) {
	s := New()
	s.Dispatch(AddToCart(cartItem("p1", "M", "Azul", 1)))

	before := s.Snapshot()
	s.Dispatch(AddToCart(cartItem("p1", "M", "Azul", 4)))
	s.Dispatch(AddToFavorites(product("p2", 30)))

	require.Len(t, before.Cart, 1)
	assert.Equal(t, 1, before.Cart[0].Quantity)
	assert.Empty(t, before.Favorites)
}
