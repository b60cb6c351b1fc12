package services

import (
	"context"
	"sync"

	"github.com/yeremiapane/table-order/models"
)

// CartView is what clients see of a table's cart.
type CartView struct {
	TableID   string             `json:"table_id"`
	Items     []models.OrderItem `json:"items"`
	ItemCount int                `json:"item_count"`
	Total     float64            `json:"total"`
}

// CartService keeps one in-memory cart per table. Carts are never persisted.
type CartService struct {
	store *Store

	mu    sync.Mutex
	carts map[string]*Cart
}

func NewCartService(store *Store) *CartService {
	return &CartService{store: store, carts: make(map[string]*Cart)}
}

func (cs *CartService) Get(ctx context.Context, tableID string) (CartView, error) {
	if _, err := findTable(cs.store.Read(ctx), tableID); err != nil {
		return CartView{}, err
	}
	var view CartView
	cs.withCart(tableID, false, func(cart *Cart) error {
		view = viewOf(tableID, cart)
		return nil
	})
	return view, nil
}

// Add puts one unit of the menu item into the table's cart. Unavailable items
// are refused.
func (cs *CartService) Add(ctx context.Context, tableID, menuItemID string) (CartView, error) {
	db := cs.store.Read(ctx)
	if _, err := findTable(db, tableID); err != nil {
		return CartView{}, err
	}
	item, err := findMenuItem(db, menuItemID)
	if err != nil {
		return CartView{}, err
	}
	if !item.Available {
		return CartView{}, ErrItemUnavailable
	}

	var view CartView
	cs.withCart(tableID, true, func(cart *Cart) error {
		cart.Add(*item)
		view = viewOf(tableID, cart)
		return nil
	})
	return view, nil
}

func (cs *CartService) Remove(tableID, menuItemID string) CartView {
	var view CartView
	cs.withCart(tableID, false, func(cart *Cart) error {
		cart.Remove(menuItemID)
		view = viewOf(tableID, cart)
		return nil
	})
	return view
}

func (cs *CartService) RemoveLine(tableID, menuItemID string) CartView {
	var view CartView
	cs.withCart(tableID, false, func(cart *Cart) error {
		cart.RemoveLine(menuItemID)
		view = viewOf(tableID, cart)
		return nil
	})
	return view
}

func (cs *CartService) SetInstructions(tableID, menuItemID, text string) (CartView, error) {
	var view CartView
	err := cs.withCart(tableID, false, func(cart *Cart) error {
		if !cart.SetInstructions(menuItemID, text) {
			return ErrMenuItemNotFound
		}
		view = viewOf(tableID, cart)
		return nil
	})
	return view, err
}

func (cs *CartService) Clear(tableID string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	delete(cs.carts, tableID)
}

// withCart runs fn on the table's cart under the cart lock. Tables without
// a cart get an empty one, which is kept only when create is set.
func (cs *CartService) withCart(tableID string, create bool, fn func(cart *Cart) error) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cart, ok := cs.carts[tableID]
	if !ok {
		cart = &Cart{}
		if create {
			cs.carts[tableID] = cart
		}
	}
	return fn(cart)
}

func viewOf(tableID string, cart *Cart) CartView {
	return CartView{
		TableID:   tableID,
		Items:     cart.Items(),
		ItemCount: cart.Count(),
		Total:     cart.Total().InexactFloat64(),
	}
}
