package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/frrrancoelgori-ui/joyeria/models"
)

func TestBranchCRUD(t *testing.T) {
	t.Run("add assigns an id and lists in insertion order", func(t *testing.T) {
		s := newTestStack()

		first := s.branchSvc.AddBranch(BranchInput{Name: "Centro"})
		second := s.branchSvc.AddBranch(BranchInput{Name: "Plaza Norte"})

		assert.NotEmpty(t, first.ID)
		branches := s.branchSvc.ListBranches()
		assert.Len(t, branches, 2)
		assert.Equal(t, first.ID, branches[0].ID)
		assert.Equal(t, second.ID, branches[1].ID)
	})

	t.Run("update unknown branch fails", func(t *testing.T) {
		s := newTestStack()
		_, err := s.branchSvc.UpdateBranch("missing", BranchInput{Name: "X"})
		assert.NotNil(t, err)
		assert.Equal(t, 404, err.StatusCode)
	})

	t.Run("delete refuses while products reference the branch", func(t *testing.T) {
		s := newTestStack()
		s.addBranch("1", "Centro")
		s.addProduct("p1", "Anillo", "Anillos", 100, 5, "1")

		err := s.branchSvc.DeleteBranch("1")

		assert.NotNil(t, err)
		assert.Equal(t, 409, err.StatusCode)
		assert.Len(t, s.branchSvc.ListBranches(), 1)
	})

	t.Run("delete succeeds once the branch is empty", func(t *testing.T) {
		s := newTestStack()
		s.addBranch("1", "Centro")

		assert.Nil(t, s.branchSvc.DeleteBranch("1"))
		assert.Empty(t, s.branchSvc.ListBranches())
	})
}

func TestBranchInventoryLedger(t *testing.T) {
	t.Run("upsert keeps one line per product", func(t *testing.T) {
		s := newTestStack()
		s.branchSvc.UpdateBranchInventory("1", "p1", 10)
		s.branchSvc.UpdateBranchInventory("1", "p1", 7)

		lines := s.branchSvc.GetBranchInventory("1")
		assert.Len(t, lines, 1)
		assert.Equal(t, 7, lines[0].Stock)
	})

	t.Run("transfer moves exactly the quantity between ledgers", func(t *testing.T) {
		s := newTestStack()
		s.branchSvc.UpdateBranchInventory("1", "p1", 10)

		s.branchSvc.TransferStock("p1", "1", "2", 4)

		from := s.branchSvc.GetBranchInventory("1")
		to := s.branchSvc.GetBranchInventory("2")
		assert.Equal(t, 6, from[0].Stock)
		assert.Equal(t, 4, to[0].Stock)
		assert.Equal(t, 10, from[0].Stock+to[0].Stock)
	})

	t.Run("remove purges the product line", func(t *testing.T) {
		s := newTestStack()
		s.branchSvc.UpdateBranchInventory("1", "p1", 10)
		s.branchSvc.UpdateBranchInventory("1", "p2", 3)

		s.branchSvc.RemoveFromBranchInventory("1", "p1")

		lines := s.branchSvc.GetBranchInventory("1")
		assert.Len(t, lines, 1)
		assert.Equal(t, "p2", lines[0].ProductID)
	})
}

func TestRecordBranchSale(t *testing.T) {
	t.Run("same-day sales roll up into one line", func(t *testing.T) {
		s := newTestStack()
		ring := models.Product{ID: "p1", Name: "Anillo", Price: 100, BranchID: "1"}

		s.branchSvc.RecordBranchSale("1", models.Sale{ID: "s1", Date: time.Now(), Total: 100, Items: []models.CartItem{line(ring, 1)}})
		s.branchSvc.RecordBranchSale("1", models.Sale{ID: "s2", Date: time.Now(), Total: 250, Items: []models.CartItem{line(ring, 2)}})

		rollups := s.branchSvc.GetBranchSales("1")
		assert.Len(t, rollups, 1)
		assert.Equal(t, 2, rollups[0].TotalSales)
		assert.InDelta(t, 350, rollups[0].TotalRevenue, 0.001)
		assert.Equal(t, time.Now().Format("2006-01-02"), rollups[0].Date)
	})
}

func TestGetBranchAnalytics(t *testing.T) {
	s := newTestStack()
	s.addBranch("1", "Centro")
	s.addBranch("2", "Plaza Norte")
	ring := s.addProduct("p1", "Anillo", "Anillos", 2500, 8, "1")
	s.addProduct("p2", "Collar", "Collares", 450, 2, "1")
	s.addProduct("p3", "Cadena", "Cadenas", 680, 15, "2")

	sale := s.recordSale(time.Now(), 5000, "", line(ring, 2))
	products := s.catalog.FindAll()
	sales := []models.Sale{sale}

	t.Run("single branch", func(t *testing.T) {
		out := s.branchSvc.GetBranchAnalytics("1", products, sales)

		assert.Len(t, out, 1)
		a := out[0]
		assert.Equal(t, "Centro", a.BranchName)
		assert.Equal(t, 2, a.TotalProducts)
		assert.Equal(t, 10, a.TotalStock)
		assert.Equal(t, 1, a.SalesCount)
		assert.InDelta(t, 5000, a.Revenue, 0.001)
		assert.Equal(t, 1, a.LowStockCount)
		assert.NotEmpty(t, a.TopProducts)
		assert.Equal(t, "Anillo", a.TopProducts[0].Name)
	})

	t.Run("empty id covers every branch", func(t *testing.T) {
		out := s.branchSvc.GetBranchAnalytics("", products, sales)
		assert.Len(t, out, 2)
	})

	t.Run("unknown id yields an empty slice", func(t *testing.T) {
		out := s.branchSvc.GetBranchAnalytics("missing", products, sales)
		assert.Empty(t, out)
	})

	t.Run("performance rating follows the composite score", func(t *testing.T) {
		// Branch 1: revenue 5000/10000 + 2/10 + 10/50 = 0.9 -> poor.
		out := s.branchSvc.GetBranchAnalytics("1", products, sales)
		assert.Equal(t, PerformancePoor, out[0].Performance)

		// Branch 2: no sales, one product, stock 15 -> 0.4 -> poor.
		out = s.branchSvc.GetBranchAnalytics("2", products, sales)
		assert.Equal(t, PerformancePoor, out[0].Performance)
	})
}

func TestGenerateBranchReport(t *testing.T) {
	s := newTestStack()
	s.addBranch("1", "Centro")
	ring := s.addProduct("p1", "Anillo", "Anillos", 2500, 8, "1")
	sale := s.recordSale(time.Now(), 2500, "", line(ring, 1))
	s.branchSvc.RecordBranchSale("1", sale)

	t.Run("bundles branch, analytics, ledgers and recommendations", func(t *testing.T) {
		report, err := s.branchSvc.GenerateBranchReport("1", s.catalog.FindAll(), []models.Sale{sale})

		assert.Nil(t, err)
		assert.Equal(t, "Centro", report.Branch.Name)
		assert.Equal(t, 1, report.Analytics.TotalProducts)
		assert.Len(t, report.Inventory, 1)
		assert.Len(t, report.SalesHistory, 1)
		// Small catalog and low revenue both trigger recommendations.
		assert.Contains(t, report.Recommendations, "Considerar ampliar el catálogo de productos")
		assert.Contains(t, report.Recommendations, "Implementar promociones especiales para aumentar ventas")
	})

	t.Run("unknown branch fails", func(t *testing.T) {
		_, err := s.branchSvc.GenerateBranchReport("missing", nil, nil)
		assert.NotNil(t, err)
		assert.Equal(t, 404, err.StatusCode)
	})
}
