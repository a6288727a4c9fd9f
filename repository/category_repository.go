package repository

import (
	"sync"

	"github.com/frrrancoelgori-ui/joyeria/models"
)

// CategoryRepository is the in-memory category store. Products reference
// categories by name, so renames do not cascade.
type CategoryRepository struct {
	mu         sync.RWMutex
	categories map[string]models.Category
	order      []string
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{
		categories: make(map[string]models.Category),
	}
}

func (r *CategoryRepository) Create(c models.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.categories[c.ID]; !exists {
		r.order = append(r.order, c.ID)
	}
	r.categories[c.ID] = c
}

func (r *CategoryRepository) FindByID(id string) (models.Category, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.categories[id]
	return c, ok
}

func (r *CategoryRepository) FindByName(name string) (models.Category, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if r.categories[id].Name == name {
			return r.categories[id], true
		}
	}
	return models.Category{}, false
}

func (r *CategoryRepository) FindAll() []models.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Category, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.categories[id])
	}
	return out
}

func (r *CategoryRepository) Update(c models.Category) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[c.ID]; !ok {
		return false
	}
	r.categories[c.ID] = c
	return true
}

func (r *CategoryRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[id]; !ok {
		return false
	}
	delete(r.categories, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}
