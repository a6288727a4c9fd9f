package services

import (
	"time"

	"go.uber.org/zap"

	"github.com/frrrancoelgori-ui/joyeria/models"
	"github.com/frrrancoelgori-ui/joyeria/repository"
)

// testStack wires the full service graph against fresh in-memory stores.
type testStack struct {
	branches   *repository.BranchRepository
	categories *repository.CategoryRepository
	catalog    *repository.CatalogRepository
	carts      *repository.CartRepository
	sales      *repository.SalesRepository

	analytics  *AnalyticsService
	inventory  *InventoryService
	customers  *CustomerService
	branchSvc  *BranchService
	catalogSvc *CatalogService
	cartSvc    *CartService
}

func newTestStack() *testStack {
	log := zap.NewNop()

	s := &testStack{
		branches:   repository.NewBranchRepository(),
		categories: repository.NewCategoryRepository(),
		catalog:    repository.NewCatalogRepository(),
		carts:      repository.NewCartRepository(),
		sales:      repository.NewSalesRepository(),
	}
	s.analytics = NewAnalyticsService(s.sales, s.carts, time.Minute, log)
	s.inventory = NewInventoryService(5, 100, log)
	s.customers = NewCustomerService("guest@example.com", log)
	s.branchSvc = NewBranchService(s.branches, s.catalog, 5, log)
	s.catalogSvc = NewCatalogService(s.catalog, s.categories, s.branches, s.carts, s.analytics, s.branchSvc, log)
	s.cartSvc = NewCartService(s.carts, s.catalog, s.sales, s.analytics, s.inventory, s.customers, s.branchSvc, "941228089", log)
	return s
}

func (s *testStack) addBranch(id, name string) models.Branch {
	b := models.Branch{ID: id, Name: name, IsActive: true}
	s.branches.Create(b)
	return b
}

func (s *testStack) addProduct(id, name, category string, price float64, stock int, branchID string) models.Product {
	branch, _ := s.branches.FindByID(branchID)
	p := models.Product{
		ID:         id,
		Name:       name,
		Category:   category,
		Price:      price,
		Stock:      stock,
		Material:   "Oro Blanco 18k",
		BranchID:   branchID,
		BranchName: branch.Name,
	}
	s.catalog.Create(p)
	s.branchSvc.UpdateBranchInventory(branchID, id, stock)
	return p
}

func (s *testStack) recordSale(date time.Time, total float64, email string, items ...models.CartItem) models.Sale {
	sale := models.Sale{
		ID:            "sale-" + date.Format("20060102150405.000"),
		Date:          date,
		Items:         items,
		Total:         total,
		CustomerEmail: email,
		Status:        models.SaleStatusCompleted,
	}
	s.sales.Append(sale)
	return sale
}

func line(p models.Product, qty int) models.CartItem {
	return models.CartItem{Product: p, Quantity: qty}
}
