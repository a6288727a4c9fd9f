package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/frrrancoelgori-ui/joyeria/models"
	"github.com/frrrancoelgori-ui/joyeria/repository"
)

// ProductInput carries the admin-editable fields of a product.
type ProductInput struct {
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	Image         string  `json:"image"`
	Category      string  `json:"category" validate:"required"`
	Stock         int     `json:"stock" validate:"gte=0"`
	Material      string  `json:"material"`
	Weight        float64 `json:"weight"`
	Size          string  `json:"size"`
	Gemstone      string  `json:"gemstone"`
	Certification string  `json:"certification"`
	BranchID      string  `json:"branch_id" validate:"required"`
	Customizable  bool    `json:"is_customizable"`
	CraftingTime  int     `json:"crafting_time"`
}

type CategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// CatalogService orchestrates product and category CRUD: it owns the
// catalog-side effects the dashboard expects (activity counters, the branch
// inventory mirror, cart purges on delete).
type CatalogService struct {
	catalog    *repository.CatalogRepository
	categories *repository.CategoryRepository
	branches   *repository.BranchRepository
	carts      *repository.CartRepository
	analytics  *AnalyticsService
	branchSvc  *BranchService
	logger     *zap.Logger
}

func NewCatalogService(
	catalog *repository.CatalogRepository,
	categories *repository.CategoryRepository,
	branches *repository.BranchRepository,
	carts *repository.CartRepository,
	analytics *AnalyticsService,
	branchSvc *BranchService,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		catalog:    catalog,
		categories: categories,
		branches:   branches,
		carts:      carts,
		analytics:  analytics,
		branchSvc:  branchSvc,
		logger:     logger,
	}
}

func (s *CatalogService) ListProducts(filters repository.ProductFilters) []models.Product {
	return s.catalog.FindFiltered(filters)
}

func (s *CatalogService) GetProduct(id string) (models.Product, *ServiceError) {
	p, ok := s.catalog.FindByID(id)
	if !ok {
		return models.Product{}, newError(404, "product not found")
	}
	return p, nil
}

func (s *CatalogService) AddProduct(input ProductInput) (models.Product, *ServiceError) {
	branch, ok := s.branches.FindByID(input.BranchID)
	if !ok {
		return models.Product{}, newError(400, "branch does not exist")
	}

	product := models.Product{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		Image:         input.Image,
		Category:      input.Category,
		Stock:         input.Stock,
		Material:      input.Material,
		Weight:        input.Weight,
		Size:          input.Size,
		Gemstone:      input.Gemstone,
		Certification: input.Certification,
		BranchID:      branch.ID,
		BranchName:    branch.Name,
		Customizable:  input.Customizable,
		CraftingTime:  input.CraftingTime,
	}

	s.catalog.Create(product)
	s.analytics.TrackProductAdded(product)
	s.branchSvc.UpdateBranchInventory(product.BranchID, product.ID, product.Stock)

	s.logger.Info("product added",
		zap.String("product_id", product.ID),
		zap.String("name", product.Name),
	)
	return product, nil
}

// AddProducts bulk-inserts already-built product records (CSV import path).
func (s *CatalogService) AddProducts(products []models.Product) {
	s.catalog.CreateMany(products)
	for _, p := range products {
		s.analytics.TrackProductAdded(p)
		s.branchSvc.UpdateBranchInventory(p.BranchID, p.ID, p.Stock)
	}
	s.logger.Info("products imported", zap.Int("count", len(products)))
}

func (s *CatalogService) UpdateProduct(id string, input ProductInput) (models.Product, *ServiceError) {
	existing, ok := s.catalog.FindByID(id)
	if !ok {
		return models.Product{}, newError(404, "product not found")
	}
	branch, ok := s.branches.FindByID(input.BranchID)
	if !ok {
		return models.Product{}, newError(400, "branch does not exist")
	}

	updated := existing
	updated.Name = input.Name
	updated.Description = input.Description
	updated.Price = input.Price
	updated.Image = input.Image
	updated.Category = input.Category
	updated.Stock = input.Stock
	updated.Material = input.Material
	updated.Weight = input.Weight
	updated.Size = input.Size
	updated.Gemstone = input.Gemstone
	updated.Certification = input.Certification
	updated.BranchID = branch.ID
	updated.BranchName = branch.Name
	updated.Customizable = input.Customizable
	updated.CraftingTime = input.CraftingTime

	s.catalog.Update(updated)
	s.analytics.TrackProductUpdated(updated)
	s.branchSvc.UpdateBranchInventory(updated.BranchID, updated.ID, updated.Stock)
	return updated, nil
}

// DeleteProduct removes a product and purges it from every active cart.
func (s *CatalogService) DeleteProduct(id string) *ServiceError {
	product, ok := s.catalog.Delete(id)
	if !ok {
		return newError(404, "product not found")
	}

	s.carts.RemoveProduct(id)
	s.analytics.TrackProductDeleted(product)
	s.analytics.TrackCartUpdate()
	s.branchSvc.RemoveFromBranchInventory(product.BranchID, id)

	s.logger.Info("product deleted", zap.String("product_id", id))
	return nil
}

// TransferStock moves quantity from a product's branch to another branch.
// When the destination already carries a product with the same name the
// stock merges into it; otherwise the product is cloned under the
// destination branch. The branch service's side ledger is updated alongside.
func (s *CatalogService) TransferStock(productID, fromBranch, toBranch string, quantity int) *ServiceError {
	product, ok := s.catalog.FindByID(productID)
	if !ok || product.BranchID != fromBranch {
		return newError(404, "product not found in source branch")
	}
	if quantity <= 0 {
		return newError(400, "quantity must be positive")
	}
	if product.Stock < quantity {
		return newError(409, fmt.Sprintf("insufficient stock: only %d units available", product.Stock))
	}
	destination, ok := s.branches.FindByID(toBranch)
	if !ok {
		return newError(400, "destination branch does not exist")
	}

	if existing, found := s.catalog.FindByNameAndBranch(product.Name, toBranch); found {
		s.catalog.AdjustStock(existing.ID, quantity)
		s.catalog.AdjustStock(productID, -quantity)
	} else {
		clone := product
		clone.ID = uuid.NewString()
		clone.Stock = quantity
		clone.BranchID = destination.ID
		clone.BranchName = destination.Name
		s.catalog.Create(clone)
		s.catalog.AdjustStock(productID, -quantity)
	}

	s.branchSvc.TransferStock(productID, fromBranch, toBranch, quantity)

	s.logger.Info("stock transferred",
		zap.String("product_id", productID),
		zap.String("from", fromBranch),
		zap.String("to", toBranch),
		zap.Int("quantity", quantity),
	)
	return nil
}

func (s *CatalogService) ListCategories() []models.Category {
	return s.categories.FindAll()
}

func (s *CatalogService) AddCategory(input CategoryInput) (models.Category, *ServiceError) {
	if _, exists := s.categories.FindByName(input.Name); exists {
		return models.Category{}, newError(409, "category already exists")
	}
	category := models.Category{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Color:       input.Color,
	}
	s.categories.Create(category)
	return category, nil
}

func (s *CatalogService) UpdateCategory(id string, input CategoryInput) (models.Category, *ServiceError) {
	existing, ok := s.categories.FindByID(id)
	if !ok {
		return models.Category{}, newError(404, "category not found")
	}
	existing.Name = input.Name
	existing.Description = input.Description
	existing.Color = input.Color
	s.categories.Update(existing)
	return existing, nil
}

// DeleteCategory refuses when products still carry the category name.
func (s *CatalogService) DeleteCategory(id string) *ServiceError {
	category, ok := s.categories.FindByID(id)
	if !ok {
		return newError(404, "category not found")
	}
	if n := s.catalog.CountByCategory(category.Name); n > 0 {
		return newError(409, fmt.Sprintf("category has %d associated products", n))
	}
	s.categories.Delete(id)
	return nil
}

var productCSVHeader = []string{
	"id", "name", "description", "price", "image", "category", "stock",
	"material", "weight", "size", "gemstone", "certification",
	"branch_id", "branch_name", "is_customizable", "crafting_time",
}

// ExportProductsCSV writes the whole catalog as CSV.
func (s *CatalogService) ExportProductsCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(productCSVHeader); err != nil {
		return err
	}
	for _, p := range s.catalog.FindAll() {
		record := []string{
			p.ID, p.Name, p.Description,
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			p.Image, p.Category, strconv.Itoa(p.Stock),
			p.Material, strconv.FormatFloat(p.Weight, 'f', 2, 64),
			p.Size, p.Gemstone, p.Certification,
			p.BranchID, p.BranchName,
			strconv.FormatBool(p.Customizable), strconv.Itoa(p.CraftingTime),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportProductsCSV parses product rows and bulk-inserts them. Rows missing
// a branch are rejected; rows without an ID get one assigned.
func (s *CatalogService) ImportProductsCSV(r io.Reader) (int, *ServiceError) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return 0, newError(400, "invalid CSV: "+err.Error())
	}
	if len(rows) < 2 {
		return 0, newError(400, "CSV has no data rows")
	}

	var products []models.Product
	for i, row := range rows[1:] {
		if len(row) < len(productCSVHeader) {
			return 0, newError(400, fmt.Sprintf("row %d: expected %d columns, got %d", i+2, len(productCSVHeader), len(row)))
		}
		price, err := strconv.ParseFloat(row[3], 64)
		if err != nil || price < 0 {
			return 0, newError(400, fmt.Sprintf("row %d: invalid price %q", i+2, row[3]))
		}
		stock, err := strconv.Atoi(row[6])
		if err != nil || stock < 0 {
			return 0, newError(400, fmt.Sprintf("row %d: invalid stock %q", i+2, row[6]))
		}
		branch, ok := s.branches.FindByID(row[12])
		if !ok {
			return 0, newError(400, fmt.Sprintf("row %d: unknown branch %q", i+2, row[12]))
		}

		weight, _ := strconv.ParseFloat(row[8], 64)
		customizable, _ := strconv.ParseBool(row[14])
		craftingTime, _ := strconv.Atoi(row[15])

		id := row[0]
		if id == "" {
			id = uuid.NewString()
		}

		products = append(products, models.Product{
			ID:            id,
			Name:          row[1],
			Description:   row[2],
			Price:         price,
			Image:         row[4],
			Category:      row[5],
			Stock:         stock,
			Material:      row[7],
			Weight:        weight,
			Size:          row[9],
			Gemstone:      row[10],
			Certification: row[11],
			BranchID:      branch.ID,
			BranchName:    branch.Name,
			Customizable:  customizable,
			CraftingTime:  craftingTime,
		})
	}

	s.AddProducts(products)
	return len(products), nil
}
