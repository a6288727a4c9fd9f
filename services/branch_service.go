package services

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/frrrancoelgori-ui/joyeria/models"
	"github.com/frrrancoelgori-ui/joyeria/repository"
)

type BranchPerformance string

const (
	PerformanceExcellent BranchPerformance = "excellent"
	PerformanceGood      BranchPerformance = "good"
	PerformanceAverage   BranchPerformance = "average"
	PerformancePoor      BranchPerformance = "poor"
)

type BranchTopProduct struct {
	Name  string  `json:"name"`
	Stock int     `json:"stock"`
	Value float64 `json:"value"`
}

type BranchAnalytics struct {
	BranchID      string             `json:"branch_id"`
	BranchName    string             `json:"branch_name"`
	TotalProducts int                `json:"total_products"`
	TotalStock    int                `json:"total_stock"`
	TotalValue    float64            `json:"total_value"`
	SalesCount    int                `json:"sales_count"`
	Revenue       float64            `json:"revenue"`
	TopProducts   []BranchTopProduct `json:"top_products"`
	LowStockCount int                `json:"low_stock_alerts"`
	Specialties   []string           `json:"specialties"`
	Performance   BranchPerformance  `json:"performance"`
}

type BranchReport struct {
	Branch          models.Branch            `json:"branch"`
	Analytics       BranchAnalytics          `json:"analytics"`
	Inventory       []models.BranchInventory `json:"inventory"`
	SalesHistory    []models.BranchSales     `json:"sales_history"`
	Recommendations []string                 `json:"recommendations"`
}

// BranchService computes per-branch rollups and keeps the side ledgers: a
// best-effort per-branch inventory mirror and daily sales rollups. The
// catalog's Product.Stock stays authoritative; callers sync the mirror
// through explicit calls.
type BranchService struct {
	branches          *repository.BranchRepository
	catalog           *repository.CatalogRepository
	lowStockThreshold int
	logger            *zap.Logger

	mu        sync.RWMutex
	inventory map[string][]models.BranchInventory // branchID -> ledger lines
	sales     map[string][]models.BranchSales     // branchID -> daily rollups
}

func NewBranchService(
	branches *repository.BranchRepository,
	catalog *repository.CatalogRepository,
	lowStockThreshold int,
	logger *zap.Logger,
) *BranchService {
	return &BranchService{
		branches:          branches,
		catalog:           catalog,
		lowStockThreshold: lowStockThreshold,
		logger:            logger,
		inventory:         make(map[string][]models.BranchInventory),
		sales:             make(map[string][]models.BranchSales),
	}
}

// BranchInput carries the admin-editable fields of a branch.
type BranchInput struct {
	Name         string              `json:"name" validate:"required"`
	Address      string              `json:"address"`
	Phone        string              `json:"phone"`
	Email        string              `json:"email" validate:"omitempty,email"`
	Manager      string              `json:"manager"`
	City         string              `json:"city"`
	State        string              `json:"state"`
	ZipCode      string              `json:"zip_code"`
	OpeningHours models.OpeningHours `json:"opening_hours"`
	Specialties  []string            `json:"specialties"`
	IsActive     bool                `json:"is_active"`
	Coordinates  *models.Coordinates `json:"coordinates"`
}

func (s *BranchService) ListBranches() []models.Branch {
	return s.branches.FindAll()
}

func (s *BranchService) GetBranch(id string) (models.Branch, *ServiceError) {
	b, ok := s.branches.FindByID(id)
	if !ok {
		return models.Branch{}, newError(404, "branch not found")
	}
	return b, nil
}

func (s *BranchService) AddBranch(input BranchInput) models.Branch {
	branch := models.Branch{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Address:      input.Address,
		Phone:        input.Phone,
		Email:        input.Email,
		Manager:      input.Manager,
		City:         input.City,
		State:        input.State,
		ZipCode:      input.ZipCode,
		OpeningHours: input.OpeningHours,
		Specialties:  input.Specialties,
		IsActive:     input.IsActive,
		Coordinates:  input.Coordinates,
	}
	s.branches.Create(branch)
	s.logger.Info("branch added", zap.String("branch_id", branch.ID), zap.String("name", branch.Name))
	return branch
}

func (s *BranchService) UpdateBranch(id string, input BranchInput) (models.Branch, *ServiceError) {
	branch, ok := s.branches.FindByID(id)
	if !ok {
		return models.Branch{}, newError(404, "branch not found")
	}
	branch.Name = input.Name
	branch.Address = input.Address
	branch.Phone = input.Phone
	branch.Email = input.Email
	branch.Manager = input.Manager
	branch.City = input.City
	branch.State = input.State
	branch.ZipCode = input.ZipCode
	branch.OpeningHours = input.OpeningHours
	branch.Specialties = input.Specialties
	branch.IsActive = input.IsActive
	branch.Coordinates = input.Coordinates
	s.branches.Update(branch)
	return branch, nil
}

// DeleteBranch refuses while products still reference the branch.
func (s *BranchService) DeleteBranch(id string) *ServiceError {
	if _, ok := s.branches.FindByID(id); !ok {
		return newError(404, "branch not found")
	}
	if n := s.catalog.CountByBranch(id); n > 0 {
		return newError(409, fmt.Sprintf("branch has %d products in inventory", n))
	}
	s.branches.Delete(id)

	s.mu.Lock()
	delete(s.inventory, id)
	delete(s.sales, id)
	s.mu.Unlock()

	s.logger.Info("branch deleted", zap.String("branch_id", id))
	return nil
}

// UpdateBranchInventory upserts the ledger line for a product at a branch.
func (s *BranchService) UpdateBranchInventory(branchID, productID string, stock int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.inventory[branchID]
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Stock = stock
			lines[i].LastUpdated = time.Now()
			return
		}
	}
	s.inventory[branchID] = append(lines, models.BranchInventory{
		BranchID:    branchID,
		ProductID:   productID,
		Stock:       stock,
		LastUpdated: time.Now(),
	})
}

func (s *BranchService) RemoveFromBranchInventory(branchID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.inventory[branchID]
	kept := lines[:0]
	for _, line := range lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	s.inventory[branchID] = kept
}

// TransferStock moves quantity between the two branches' ledger lines. This
// touches only the side ledger; the caller separately patches the
// authoritative Product.Stock.
func (s *BranchService) TransferStock(productID, fromBranch, toBranch string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := s.inventory[fromBranch]
	for i := range from {
		if from[i].ProductID == productID {
			from[i].Stock -= quantity
			from[i].LastUpdated = time.Now()
			break
		}
	}

	to := s.inventory[toBranch]
	found := false
	for i := range to {
		if to[i].ProductID == productID {
			to[i].Stock += quantity
			to[i].LastUpdated = time.Now()
			found = true
			break
		}
	}
	if !found {
		s.inventory[toBranch] = append(to, models.BranchInventory{
			BranchID:    toBranch,
			ProductID:   productID,
			Stock:       quantity,
			LastUpdated: time.Now(),
		})
	}
}

func (s *BranchService) GetBranchInventory(branchID string) []models.BranchInventory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.BranchInventory(nil), s.inventory[branchID]...)
}

// RecordBranchSale folds a sale into the branch's daily rollup.
func (s *BranchService) RecordBranchSale(branchID string, sale models.Sale) {
	today := time.Now().Format("2006-01-02")

	s.mu.Lock()
	defer s.mu.Unlock()

	rollups := s.sales[branchID]
	for i := range rollups {
		if rollups[i].Date == today {
			rollups[i].TotalSales++
			rollups[i].TotalRevenue += sale.Total
			return
		}
	}

	productIDs := make([]string, 0, len(sale.Items))
	for _, item := range sale.Items {
		productIDs = append(productIDs, item.Product.ID)
	}
	s.sales[branchID] = append(rollups, models.BranchSales{
		BranchID:     branchID,
		Date:         today,
		TotalSales:   1,
		TotalRevenue: sale.Total,
		TopProducts:  productIDs,
	})
}

func (s *BranchService) GetBranchSales(branchID string) []models.BranchSales {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.BranchSales(nil), s.sales[branchID]...)
}

// GetBranchAnalytics computes the rollup for one branch, or all branches
// when branchID is empty. Unknown branch IDs are skipped.
func (s *BranchService) GetBranchAnalytics(branchID string, products []models.Product, sales []models.Sale) []BranchAnalytics {
	var ids []string
	if branchID != "" {
		ids = []string{branchID}
	} else {
		for _, b := range s.branches.FindAll() {
			ids = append(ids, b.ID)
		}
	}

	out := make([]BranchAnalytics, 0, len(ids))
	for _, id := range ids {
		branch, ok := s.branches.FindByID(id)
		if !ok {
			continue
		}
		out = append(out, s.analyticsFor(branch, products, sales))
	}
	return out
}

func (s *BranchService) analyticsFor(branch models.Branch, products []models.Product, sales []models.Sale) BranchAnalytics {
	a := BranchAnalytics{
		BranchID:    branch.ID,
		BranchName:  branch.Name,
		Specialties: branch.Specialties,
	}

	var branchProducts []models.Product
	for _, p := range products {
		if p.BranchID == branch.ID {
			branchProducts = append(branchProducts, p)
		}
	}

	for _, sale := range sales {
		for _, item := range sale.Items {
			if item.Product.BranchID == branch.ID {
				a.SalesCount++
				a.Revenue += sale.Total
				break
			}
		}
	}

	a.TotalProducts = len(branchProducts)
	for _, p := range branchProducts {
		a.TotalStock += p.Stock
		a.TotalValue += p.Price * float64(p.Stock)
		if p.Stock <= s.lowStockThreshold {
			a.LowStockCount++
		}
	}

	// Top five by inventory value (price times stock).
	sort.SliceStable(branchProducts, func(i, j int) bool {
		return branchProducts[i].Price*float64(branchProducts[i].Stock) >
			branchProducts[j].Price*float64(branchProducts[j].Stock)
	})
	for i, p := range branchProducts {
		if i == 5 {
			break
		}
		a.TopProducts = append(a.TopProducts, BranchTopProduct{
			Name:  p.Name,
			Stock: p.Stock,
			Value: p.Price * float64(p.Stock),
		})
	}

	score := a.Revenue/10000 + float64(a.TotalProducts)/10 + float64(a.TotalStock)/50
	switch {
	case score >= 3:
		a.Performance = PerformanceExcellent
	case score >= 2:
		a.Performance = PerformanceGood
	case score >= 1:
		a.Performance = PerformanceAverage
	default:
		a.Performance = PerformancePoor
	}
	return a
}

// GenerateBranchReport combines the branch record, its analytics, both side
// ledgers and a short rule-based recommendation list.
func (s *BranchService) GenerateBranchReport(branchID string, products []models.Product, sales []models.Sale) (BranchReport, *ServiceError) {
	branch, ok := s.branches.FindByID(branchID)
	if !ok {
		return BranchReport{}, newError(404, "branch not found")
	}

	analytics := s.analyticsFor(branch, products, sales)
	return BranchReport{
		Branch:          branch,
		Analytics:       analytics,
		Inventory:       s.GetBranchInventory(branchID),
		SalesHistory:    s.GetBranchSales(branchID),
		Recommendations: recommendationsFor(analytics),
	}, nil
}

func recommendationsFor(a BranchAnalytics) []string {
	var recs []string
	if a.LowStockCount > 5 {
		recs = append(recs, "Reabastecer productos con stock bajo")
	}
	if a.Performance == PerformancePoor {
		recs = append(recs, "Revisar estrategias de ventas y marketing local")
	}
	if a.TotalProducts < 10 {
		recs = append(recs, "Considerar ampliar el catálogo de productos")
	}
	if a.Revenue < 5000 {
		recs = append(recs, "Implementar promociones especiales para aumentar ventas")
	}
	return recs
}
