package repository

import (
	"sort"
	"strings"
	"sync"

	"github.com/frrrancoelgori-ui/joyeria/models"
)

// CatalogRepository is the in-memory product store. It is the single source
// of truth for product records, including stock.
type CatalogRepository struct {
	mu       sync.RWMutex
	products map[string]models.Product
	order    []string // insertion order, so listings stay stable
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		products: make(map[string]models.Product),
	}
}

func (r *CatalogRepository) Create(p models.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.products[p.ID]; !exists {
		r.order = append(r.order, p.ID)
	}
	r.products[p.ID] = p
}

func (r *CatalogRepository) CreateMany(ps []models.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range ps {
		if _, exists := r.products[p.ID]; !exists {
			r.order = append(r.order, p.ID)
		}
		r.products[p.ID] = p
	}
}

func (r *CatalogRepository) FindByID(id string) (models.Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	return p, ok
}

// FindByNameAndBranch locates a product with the same name in another
// branch's catalog, used when merging stock transfers.
func (r *CatalogRepository) FindByNameAndBranch(name, branchID string) (models.Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		p := r.products[id]
		if p.Name == name && p.BranchID == branchID {
			return p, true
		}
	}
	return models.Product{}, false
}

func (r *CatalogRepository) FindAll() []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.products[id])
	}
	return out
}

// ProductFilters narrows FindFiltered results. Zero values mean "no filter".
type ProductFilters struct {
	Category string
	BranchID string
	Search   string
	MinPrice float64
	MaxPrice float64
	InStock  bool
	SortBy   string // "price_asc", "price_desc", "name"
}

func (r *CatalogRepository) FindFiltered(f ProductFilters) []models.Product {
	all := r.FindAll()
	out := make([]models.Product, 0, len(all))
	for _, p := range all {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.BranchID != "" && p.BranchID != f.BranchID {
			continue
		}
		if f.Search != "" {
			q := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(p.Name), q) &&
				!strings.Contains(strings.ToLower(p.Description), q) {
				continue
			}
		}
		if f.MinPrice > 0 && p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		if f.InStock && p.Stock == 0 {
			continue
		}
		out = append(out, p)
	}

	switch f.SortBy {
	case "price_asc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "price_desc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case "name":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	}
	return out
}

func (r *CatalogRepository) Update(p models.Product) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ID]; !ok {
		return false
	}
	r.products[p.ID] = p
	return true
}

func (r *CatalogRepository) Delete(id string) (models.Product, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return models.Product{}, false
	}
	delete(r.products, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return p, true
}

// AdjustStock applies a delta to a product's stock and returns the previous
// and new values. The read-modify-write happens under the store lock.
func (r *CatalogRepository) AdjustStock(id string, delta int) (previous, current int, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, found := r.products[id]
	if !found {
		return 0, 0, false
	}
	previous = p.Stock
	p.Stock += delta
	if p.Stock < 0 {
		p.Stock = 0
	}
	r.products[id] = p
	return previous, p.Stock, true
}

func (r *CatalogRepository) CountByBranch(branchID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, p := range r.products {
		if p.BranchID == branchID {
			n++
		}
	}
	return n
}

func (r *CatalogRepository) CountByCategory(category string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, p := range r.products {
		if p.Category == category {
			n++
		}
	}
	return n
}
