// Package store holds the shopper-facing session state: cart, favorites,
// the signed-in admin principal and locally tracked orders. State changes
// only through Dispatch with one of the typed actions; every dispatch
// produces a fresh snapshot and never fails.
package store

import (
	"sync"

	"boutique/models"
)

// State is an immutable snapshot of the session state. Slices returned in a
// snapshot are never mutated by later dispatches.
type State struct {
	Cart      []models.CartItem `json:"cart"`
	Favorites []models.Product  `json:"favorites"`
	User      *models.AdminUser `json:"user"`
	Orders    []models.Order    `json:"orders"`
}

type actionType string

const (
	actionAddToCart             actionType = "add_to_cart"
	actionRemoveFromCart        actionType = "remove_from_cart"
	actionRemoveProductFromCart actionType = "remove_product_from_cart"
	actionUpdateCartQuantity    actionType = "update_cart_quantity"
	actionClearCart             actionType = "clear_cart"
	actionAddToFavorites        actionType = "add_to_favorites"
	actionRemoveFromFavorites   actionType = "remove_from_favorites"
	actionSetUser               actionType = "set_user"
	actionAddOrder              actionType = "add_order"
	actionSetOrders             actionType = "set_orders"
	actionUpdateOrderStatus     actionType = "update_order_status"
)

// Action is a tagged state transition. Build actions with the constructor
// functions below; dispatching an action with an unknown tag is a no-op.
type Action struct {
	typ       actionType
	item      models.CartItem
	key       models.CartKey
	productID string
	quantity  int
	product   models.Product
	user      *models.AdminUser
	order     models.Order
	orders    []models.Order
	orderID   string
	status    string
}

// AddToCart merges the item into an existing line with the same
// (product id, size, color) by adding quantities, or appends a new line.
func AddToCart(item models.CartItem) Action {
	return Action{typ: actionAddToCart, item: item}
}

// RemoveFromCart removes the exact line identified by key.
func RemoveFromCart(key models.CartKey) Action {
	return Action{typ: actionRemoveFromCart, key: key}
}

// RemoveProductFromCart removes every line of the product regardless of
// size and color.
func RemoveProductFromCart(productID string) Action {
	return Action{typ: actionRemoveProductFromCart, productID: productID}
}

// UpdateCartQuantity sets the quantity of the matching line verbatim. It
// never removes the line; callers that want removal on quantity <= 0 must
// dispatch RemoveFromCart instead.
func UpdateCartQuantity(key models.CartKey, quantity int) Action {
	return Action{typ: actionUpdateCartQuantity, key: key, quantity: quantity}
}

// ClearCart empties the cart.
func ClearCart() Action {
	return Action{typ: actionClearCart}
}

// AddToFavorites appends the product to the favorites list. Adding a product
// that is already present is a no-op.
func AddToFavorites(p models.Product) Action {
	return Action{typ: actionAddToFavorites, product: p}
}

// RemoveFromFavorites removes the product from the favorites list. Removing
// an absent product is a no-op.
func RemoveFromFavorites(productID string) Action {
	return Action{typ: actionRemoveFromFavorites, productID: productID}
}

// SetUser replaces the authenticated principal; nil clears it.
func SetUser(u *models.AdminUser) Action {
	return Action{typ: actionSetUser, user: u}
}

// AddOrder prepends the order so the newest order comes first.
func AddOrder(o models.Order) Action {
	return Action{typ: actionAddOrder, order: o}
}

// SetOrders replaces the orders list wholesale.
func SetOrders(orders []models.Order) Action {
	return Action{typ: actionSetOrders, orders: orders}
}

// UpdateOrderStatus replaces the status of the matching order. The status
// string is not validated against the known set.
func UpdateOrderStatus(orderID, status string) Action {
	return Action{typ: actionUpdateOrderStatus, orderID: orderID, status: status}
}

// Store is the state container. One instance exists per shopper session plus
// one app-level instance for the admin orders view; the mutex covers
// concurrent requests on the same session.
type Store struct {
	mu    sync.Mutex
	state State
}

// New returns an empty Store
func New() *Store {
	return &Store{}
}

// Snapshot returns the current state
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies the action atomically and returns the new state
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduce(s.state, a)
	return s.state
}

// reduce computes the next state. It copies any slice it changes so previous
// snapshots stay intact.
func reduce(st State, a Action) State {
	switch a.typ {
	case actionAddToCart:
		key := a.item.Key()
		for i, line := range st.Cart {
			if line.Key() == key {
				cart := make([]models.CartItem, len(st.Cart))
				copy(cart, st.Cart)
				cart[i].Quantity += a.item.Quantity
				st.Cart = cart
				return st
			}
		}
		cart := make([]models.CartItem, 0, len(st.Cart)+1)
		cart = append(cart, st.Cart...)
		st.Cart = append(cart, a.item)
		return st

	case actionRemoveFromCart:
		cart := make([]models.CartItem, 0, len(st.Cart))
		for _, line := range st.Cart {
			if line.Key() != a.key {
				cart = append(cart, line)
			}
		}
		st.Cart = cart
		return st

	case actionRemoveProductFromCart:
		cart := make([]models.CartItem, 0, len(st.Cart))
		for _, line := range st.Cart {
			if line.Product.ID != a.productID {
				cart = append(cart, line)
			}
		}
		st.Cart = cart
		return st

	case actionUpdateCartQuantity:
		cart := make([]models.CartItem, len(st.Cart))
		copy(cart, st.Cart)
		for i, line := range cart {
			if line.Key() == a.key {
				cart[i].Quantity = a.quantity
			}
		}
		st.Cart = cart
		return st

	case actionClearCart:
		st.Cart = nil
		return st

	case actionAddToFavorites:
		for _, p := range st.Favorites {
			if p.ID == a.product.ID {
				return st
			}
		}
		favorites := make([]models.Product, 0, len(st.Favorites)+1)
		favorites = append(favorites, st.Favorites...)
		st.Favorites = append(favorites, a.product)
		return st

	case actionRemoveFromFavorites:
		favorites := make([]models.Product, 0, len(st.Favorites))
		for _, p := range st.Favorites {
			if p.ID != a.productID {
				favorites = append(favorites, p)
			}
		}
		st.Favorites = favorites
		return st

	case actionSetUser:
		st.User = a.user
		return st

	case actionAddOrder:
		orders := make([]models.Order, 0, len(st.Orders)+1)
		orders = append(orders, a.order)
		st.Orders = append(orders, st.Orders...)
		return st

	case actionSetOrders:
		orders := make([]models.Order, len(a.orders))
		copy(orders, a.orders)
		st.Orders = orders
		return st

	case actionUpdateOrderStatus:
		orders := make([]models.Order, len(st.Orders))
		copy(orders, st.Orders)
		for i, o := range orders {
			if o.ID == a.orderID {
				orders[i].Status = a.status
			}
		}
		st.Orders = orders
		return st

	default:
		return st
	}
}
