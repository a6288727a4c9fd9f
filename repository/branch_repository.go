package repository

import (
	"sync"

	"github.com/frrrancoelgori-ui/joyeria/models"
)

// BranchRepository is the in-memory branch store.
type BranchRepository struct {
	mu       sync.RWMutex
	branches map[string]models.Branch
	order    []string
}

func NewBranchRepository() *BranchRepository {
	return &BranchRepository{
		branches: make(map[string]models.Branch),
	}
}

func (r *BranchRepository) Create(b models.Branch) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.branches[b.ID]; !exists {
		r.order = append(r.order, b.ID)
	}
	r.branches[b.ID] = b
}

func (r *BranchRepository) FindByID(id string) (models.Branch, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.branches[id]
	return b, ok
}

func (r *BranchRepository) FindAll() []models.Branch {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Branch, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.branches[id])
	}
	return out
}

func (r *BranchRepository) Update(b models.Branch) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.branches[b.ID]; !ok {
		return false
	}
	r.branches[b.ID] = b
	return true
}

func (r *BranchRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.branches[id]; !ok {
		return false
	}
	delete(r.branches, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}
