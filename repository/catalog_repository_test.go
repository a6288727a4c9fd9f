package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frrrancoelgori-ui/joyeria/models"
)

func TestCatalogRepositoryOrdering(t *testing.T) {
	repo := NewCatalogRepository()
	repo.Create(models.Product{ID: "b", Name: "Collar"})
	repo.Create(models.Product{ID: "a", Name: "Anillo"})
	repo.Create(models.Product{ID: "c", Name: "Cadena"})

	t.Run("FindAll keeps insertion order", func(t *testing.T) {
		all := repo.FindAll()
		assert.Equal(t, []string{"b", "a", "c"}, []string{all[0].ID, all[1].ID, all[2].ID})
	})

	t.Run("re-creating an id overwrites without reordering", func(t *testing.T) {
		repo.Create(models.Product{ID: "b", Name: "Collar de Perlas"})

		all := repo.FindAll()
		assert.Len(t, all, 3)
		assert.Equal(t, "b", all[0].ID)
		assert.Equal(t, "Collar de Perlas", all[0].Name)
	})

	t.Run("delete compacts the order", func(t *testing.T) {
		_, ok := repo.Delete("a")
		assert.True(t, ok)

		all := repo.FindAll()
		assert.Equal(t, []string{"b", "c"}, []string{all[0].ID, all[1].ID})
	})
}

func TestAdjustStock(t *testing.T) {
	repo := NewCatalogRepository()
	repo.Create(models.Product{ID: "p1", Stock: 5})

	t.Run("returns previous and current values", func(t *testing.T) {
		previous, current, ok := repo.AdjustStock("p1", -2)
		assert.True(t, ok)
		assert.Equal(t, 5, previous)
		assert.Equal(t, 3, current)
	})

	t.Run("floors at zero", func(t *testing.T) {
		_, current, ok := repo.AdjustStock("p1", -10)
		assert.True(t, ok)
		assert.Zero(t, current)
	})

	t.Run("unknown product reports not ok", func(t *testing.T) {
		_, _, ok := repo.AdjustStock("missing", 1)
		assert.False(t, ok)
	})
}
