package repository

import (
	"sync"

	"github.com/frrrancoelgori-ui/joyeria/models"
)

// SalesRepository is the append-only in-memory sales ledger.
type SalesRepository struct {
	mu    sync.RWMutex
	sales []models.Sale
}

func NewSalesRepository() *SalesRepository {
	return &SalesRepository{}
}

func (r *SalesRepository) Append(s models.Sale) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales = append(r.sales, s)
}

func (r *SalesRepository) FindAll() []models.Sale {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Sale, len(r.sales))
	copy(out, r.sales)
	return out
}

func (r *SalesRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sales)
}
