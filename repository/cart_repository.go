package repository

import (
	"sync"

	"github.com/frrrancoelgori-ui/joyeria/models"
)

// CartRepository holds one cart per storefront session, in memory. Carts
// vanish with the process, like the original per-tab cart.
type CartRepository struct {
	mu    sync.RWMutex
	carts map[string]models.Cart
}

func NewCartRepository() *CartRepository {
	return &CartRepository{
		carts: make(map[string]models.Cart),
	}
}

// Get returns the session's cart, or an empty one if none exists yet.
func (r *CartRepository) Get(sessionID string) models.Cart {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cart, ok := r.carts[sessionID]
	if !ok {
		return models.Cart{SessionID: sessionID, Items: []models.CartItem{}}
	}
	items := make([]models.CartItem, len(cart.Items))
	copy(items, cart.Items)
	cart.Items = items
	return cart
}

func (r *CartRepository) Save(cart models.Cart) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(cart.Items) == 0 {
		delete(r.carts, cart.SessionID)
		return
	}
	r.carts[cart.SessionID] = cart
}

func (r *CartRepository) Delete(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
}

// RemoveProduct purges a product's lines from every cart, called when the
// product is deleted from the catalog.
func (r *CartRepository) RemoveProduct(productID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for sid, cart := range r.carts {
		kept := cart.Items[:0]
		for _, item := range cart.Items {
			if item.Product.ID != productID {
				kept = append(kept, item)
			}
		}
		if len(kept) == 0 {
			delete(r.carts, sid)
			continue
		}
		cart.Items = kept
		r.carts[sid] = cart
	}
}

// AllItems flattens every active cart's lines, used for cart-wide analytics.
func (r *CartRepository) AllItems() []models.CartItem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.CartItem
	for _, cart := range r.carts {
		out = append(out, cart.Items...)
	}
	return out
}
