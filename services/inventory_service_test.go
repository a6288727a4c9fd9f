package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/frrrancoelgori-ui/joyeria/models"
)

func TestCheckInventoryAlerts(t *testing.T) {
	t.Run("classifies low stock, out of stock and overstock", func(t *testing.T) {
		// Arrange
		svc := NewInventoryService(5, 100, zap.NewNop())
		products := []models.Product{
			{ID: "p1", Name: "Anillo", Stock: 3},
			{ID: "p2", Name: "Collar", Stock: 0},
			{ID: "p3", Name: "Cadena", Stock: 150},
			{ID: "p4", Name: "Reloj", Stock: 50},
		}

		// Act
		alerts := svc.CheckInventoryAlerts(products)

		// Assert
		assert.Len(t, alerts, 3)

		byProduct := make(map[string]models.InventoryAlert)
		for _, a := range alerts {
			byProduct[a.ProductID] = a
		}
		assert.Equal(t, models.AlertLowStock, byProduct["p1"].Type)
		assert.Equal(t, models.SeverityHigh, byProduct["p1"].Severity)
		assert.Equal(t, "Stock bajo: Solo quedan 3 unidades", byProduct["p1"].Message)

		assert.Equal(t, models.AlertOutOfStock, byProduct["p2"].Type)
		assert.Equal(t, models.SeverityCritical, byProduct["p2"].Severity)
		assert.Equal(t, "Producto agotado", byProduct["p2"].Message)

		assert.Equal(t, models.AlertOverstock, byProduct["p3"].Type)
		assert.Equal(t, models.SeverityMedium, byProduct["p3"].Severity)

		_, ok := byProduct["p4"]
		assert.False(t, ok, "healthy stock should not alert")
	})

	t.Run("zero stock is out of stock, not low stock", func(t *testing.T) {
		svc := NewInventoryService(5, 100, zap.NewNop())

		alerts := svc.CheckInventoryAlerts([]models.Product{{ID: "p1", Name: "Anillo", Stock: 0}})

		assert.Len(t, alerts, 1)
		assert.Equal(t, models.AlertOutOfStock, alerts[0].Type)
	})

	t.Run("repeated passes do not duplicate alerts", func(t *testing.T) {
		svc := NewInventoryService(5, 100, zap.NewNop())
		products := []models.Product{{ID: "p1", Name: "Anillo", Stock: 2}}

		svc.CheckInventoryAlerts(products)
		alerts := svc.CheckInventoryAlerts(products)

		assert.Len(t, alerts, 1)
	})

	t.Run("alert reappears after the condition recurs post-resolution", func(t *testing.T) {
		svc := NewInventoryService(5, 100, zap.NewNop())
		products := []models.Product{{ID: "p1", Name: "Anillo", Stock: 2}}

		first := svc.CheckInventoryAlerts(products)
		assert.True(t, svc.ResolveAlert(first[0].ID))

		second := svc.CheckInventoryAlerts(products)
		assert.Len(t, second, 1)
		assert.NotEqual(t, first[0].ID, second[0].ID)
		assert.False(t, second[0].Resolved)
	})

	t.Run("unresolved alert survives after stock recovers", func(t *testing.T) {
		svc := NewInventoryService(5, 100, zap.NewNop())

		svc.CheckInventoryAlerts([]models.Product{{ID: "p1", Name: "Anillo", Stock: 2}})
		alerts := svc.CheckInventoryAlerts([]models.Product{{ID: "p1", Name: "Anillo", Stock: 20}})

		// The earlier unresolved alert survives; no new one is added.
		assert.Len(t, alerts, 1)
		assert.Equal(t, models.AlertLowStock, alerts[0].Type)
	})
}

func TestResolveAlert(t *testing.T) {
	svc := NewInventoryService(5, 100, zap.NewNop())
	alerts := svc.CheckInventoryAlerts([]models.Product{{ID: "p1", Name: "Anillo", Stock: 0}})

	t.Run("marks an existing alert resolved", func(t *testing.T) {
		ok := svc.ResolveAlert(alerts[0].ID)

		assert.True(t, ok)
		assert.Empty(t, svc.GetAlerts(false))
		assert.Len(t, svc.GetAlerts(true), 1)
	})

	t.Run("unknown id returns false", func(t *testing.T) {
		assert.False(t, svc.ResolveAlert("nope"))
	})
}

func TestRecordStockMovement(t *testing.T) {
	t.Run("empty user defaults to admin", func(t *testing.T) {
		svc := NewInventoryService(5, 100, zap.NewNop())

		svc.RecordStockMovement("p1", models.MovementOut, 2, "Venta completada", 10, 8, "")

		movements := svc.GetStockMovements("p1")
		assert.Len(t, movements, 1)
		assert.Equal(t, "admin", movements[0].UserID)
		assert.Equal(t, 10, movements[0].PreviousStock)
		assert.Equal(t, 8, movements[0].NewStock)
	})

	t.Run("filter by product", func(t *testing.T) {
		svc := NewInventoryService(5, 100, zap.NewNop())
		svc.RecordStockMovement("p1", models.MovementIn, 5, "Reposición", 0, 5, "admin")
		svc.RecordStockMovement("p2", models.MovementOut, 1, "Venta completada", 4, 3, "admin")

		assert.Len(t, svc.GetStockMovements("p1"), 1)
		assert.Len(t, svc.GetStockMovements(""), 2)
	})
}

func TestGetStockReport(t *testing.T) {
	svc := NewInventoryService(5, 100, zap.NewNop())
	products := []models.Product{
		{ID: "p1", Name: "Anillo", Price: 100, Stock: 4},
		{ID: "p2", Name: "Collar", Price: 200, Stock: 0},
		{ID: "p3", Name: "Cadena", Price: 50, Stock: 20},
	}
	svc.RecordStockMovement("p1", models.MovementOut, 6, "Venta completada", 10, 4, "admin")

	report := svc.GetStockReport(products)

	assert.Equal(t, 3, report.TotalProducts)
	assert.Equal(t, 24, report.TotalStock)
	assert.InDelta(t, 100*4+50*20, report.TotalValue, 0.001)
	// At or below the threshold, zero stock included.
	assert.Equal(t, 2, report.LowStockCount)
	assert.Equal(t, 1, report.OutOfStockCount)
	assert.Equal(t, 0, report.OverstockCount)
	assert.InDelta(t, 8.0, report.AverageStock, 0.001)
	assert.InDelta(t, 6.0/30, report.StockTurnover, 0.001)
	assert.Len(t, report.RecentMovements, 1)
}
