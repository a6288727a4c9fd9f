package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/frrrancoelgori-ui/joyeria/models"
)

// StockReport aggregates current inventory health plus the most recent
// movements and unresolved alerts.
type StockReport struct {
	TotalProducts   int                     `json:"total_products"`
	TotalStock      int                     `json:"total_stock"`
	TotalValue      float64                 `json:"total_value"`
	LowStockCount   int                     `json:"low_stock_count"`
	OutOfStockCount int                     `json:"out_of_stock_count"`
	OverstockCount  int                     `json:"overstock_count"`
	AverageStock    float64                 `json:"average_stock"`
	StockTurnover   float64                 `json:"stock_turnover"`
	Alerts          []models.InventoryAlert `json:"alerts"`
	RecentMovements []models.StockMovement  `json:"recent_movements"`
}

// InventoryService classifies products into alert categories and keeps the
// append-only stock movement ledger.
type InventoryService struct {
	lowStockThreshold  int
	overstockThreshold int
	logger             *zap.Logger

	mu        sync.RWMutex
	alerts    []models.InventoryAlert
	movements []models.StockMovement
}

func NewInventoryService(lowStockThreshold, overstockThreshold int, logger *zap.Logger) *InventoryService {
	return &InventoryService{
		lowStockThreshold:  lowStockThreshold,
		overstockThreshold: overstockThreshold,
		logger:             logger,
	}
}

// CheckInventoryAlerts recomputes alerts for the given products. Unresolved
// alerts from earlier passes are retained; a new alert is appended only when
// no unresolved alert for the same product and type already exists, so
// repeated passes over an unchanged catalog don't pile up duplicates.
func (s *InventoryService) CheckInventoryAlerts(products []models.Product) []models.InventoryAlert {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.alerts[:0]
	seen := make(map[string]bool)
	for _, a := range s.alerts {
		if a.Resolved {
			continue
		}
		kept = append(kept, a)
		seen[string(a.Type)+":"+a.ProductID] = true
	}
	s.alerts = kept

	now := time.Now()
	for _, p := range products {
		if p.Stock > 0 && p.Stock <= s.lowStockThreshold {
			s.appendAlertLocked(seen, models.InventoryAlert{
				ID:          uuid.NewString(),
				Type:        models.AlertLowStock,
				ProductID:   p.ID,
				ProductName: p.Name,
				Message:     fmt.Sprintf("Stock bajo: Solo quedan %d unidades", p.Stock),
				Severity:    models.SeverityHigh,
				Timestamp:   now,
			})
		}
		if p.Stock == 0 {
			s.appendAlertLocked(seen, models.InventoryAlert{
				ID:          uuid.NewString(),
				Type:        models.AlertOutOfStock,
				ProductID:   p.ID,
				ProductName: p.Name,
				Message:     "Producto agotado",
				Severity:    models.SeverityCritical,
				Timestamp:   now,
			})
		}
		if p.Stock > s.overstockThreshold {
			s.appendAlertLocked(seen, models.InventoryAlert{
				ID:          uuid.NewString(),
				Type:        models.AlertOverstock,
				ProductID:   p.ID,
				ProductName: p.Name,
				Message:     fmt.Sprintf("Posible sobrestock: %d unidades", p.Stock),
				Severity:    models.SeverityMedium,
				Timestamp:   now,
			})
		}
	}

	out := make([]models.InventoryAlert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

func (s *InventoryService) appendAlertLocked(seen map[string]bool, a models.InventoryAlert) {
	key := string(a.Type) + ":" + a.ProductID
	if seen[key] {
		return
	}
	seen[key] = true
	s.alerts = append(s.alerts, a)
}

// RecordStockMovement appends an immutable audit record. An empty userID
// defaults to "admin".
func (s *InventoryService) RecordStockMovement(
	productID string,
	movementType models.MovementType,
	quantity int,
	reason string,
	previousStock, newStock int,
	userID string,
) {
	if userID == "" {
		userID = "admin"
	}
	movement := models.StockMovement{
		ID:            uuid.NewString(),
		ProductID:     productID,
		Type:          movementType,
		Quantity:      quantity,
		Reason:        reason,
		Timestamp:     time.Now(),
		UserID:        userID,
		PreviousStock: previousStock,
		NewStock:      newStock,
	}

	s.mu.Lock()
	s.movements = append(s.movements, movement)
	s.mu.Unlock()

	s.logger.Debug("stock movement recorded",
		zap.String("product_id", productID),
		zap.String("type", string(movementType)),
		zap.Int("quantity", quantity),
	)
}

// GetStockMovements returns the ledger, optionally filtered to one product.
func (s *InventoryService) GetStockMovements(productID string) []models.StockMovement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if productID == "" {
		out := make([]models.StockMovement, len(s.movements))
		copy(out, s.movements)
		return out
	}
	var out []models.StockMovement
	for _, m := range s.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out
}

func (s *InventoryService) GetAlerts(resolved bool) []models.InventoryAlert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.InventoryAlert
	for _, a := range s.alerts {
		if a.Resolved == resolved {
			out = append(out, a)
		}
	}
	return out
}

func (s *InventoryService) ResolveAlert(alertID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.alerts {
		if s.alerts[i].ID == alertID {
			s.alerts[i].Resolved = true
			return true
		}
	}
	return false
}

// GetStockReport computes portfolio-level inventory numbers. All counts are
// over the live catalog; turnover is total outbound quantity over a 30-day
// naive average.
func (s *InventoryService) GetStockReport(products []models.Product) StockReport {
	report := StockReport{TotalProducts: len(products)}

	for _, p := range products {
		report.TotalStock += p.Stock
		report.TotalValue += p.Price * float64(p.Stock)
		if p.Stock <= s.lowStockThreshold {
			report.LowStockCount++
		}
		if p.Stock == 0 {
			report.OutOfStockCount++
		}
		if p.Stock > s.overstockThreshold {
			report.OverstockCount++
		}
	}
	if report.TotalProducts > 0 {
		report.AverageStock = float64(report.TotalStock) / float64(report.TotalProducts)
	}
	report.StockTurnover = s.stockTurnover()
	report.Alerts = s.GetAlerts(false)

	s.mu.RLock()
	recent := s.movements
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}
	report.RecentMovements = append([]models.StockMovement(nil), recent...)
	s.mu.RUnlock()

	return report
}

func (s *InventoryService) stockTurnover() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var totalOut int
	for _, m := range s.movements {
		if m.Type == models.MovementOut {
			totalOut += m.Quantity
		}
	}
	return float64(totalOut) / 30
}
