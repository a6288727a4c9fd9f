package services

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frrrancoelgori-ui/joyeria/repository"
)

func TestAddProduct(t *testing.T) {
	t.Run("assigns id and denormalizes the branch name", func(t *testing.T) {
		// Arrange
		s := newTestStack()
		s.addBranch("1", "Centro")

		// Act
		product, err := s.catalogSvc.AddProduct(ProductInput{
			Name: "Anillo", Category: "Anillos", Price: 2500, Stock: 8, BranchID: "1",
		})

		// Assert
		assert.Nil(t, err)
		assert.NotEmpty(t, product.ID)
		assert.Equal(t, "Centro", product.BranchName)

		stored, ok := s.catalog.FindByID(product.ID)
		assert.True(t, ok)
		assert.Equal(t, product, stored)

		// The branch mirror got a line.
		assert.Len(t, s.branchSvc.GetBranchInventory("1"), 1)
	})

	t.Run("unknown branch is refused", func(t *testing.T) {
		s := newTestStack()

		_, err := s.catalogSvc.AddProduct(ProductInput{
			Name: "Anillo", Category: "Anillos", Price: 2500, BranchID: "missing",
		})

		assert.NotNil(t, err)
		assert.Equal(t, 400, err.StatusCode)
	})
}

func TestUpdateProduct(t *testing.T) {
	s := newTestStack()
	s.addBranch("1", "Centro")
	s.addBranch("2", "Plaza Norte")
	s.addProduct("p1", "Anillo", "Anillos", 2500, 8, "1")

	t.Run("moves the product to the new branch", func(t *testing.T) {
		updated, err := s.catalogSvc.UpdateProduct("p1", ProductInput{
			Name: "Anillo", Category: "Anillos", Price: 2600, Stock: 8, BranchID: "2",
		})

		assert.Nil(t, err)
		assert.InDelta(t, 2600, updated.Price, 0.001)
		assert.Equal(t, "Plaza Norte", updated.BranchName)
	})

	t.Run("unknown product is 404", func(t *testing.T) {
		_, err := s.catalogSvc.UpdateProduct("missing", ProductInput{
			Name: "X", Category: "Anillos", Price: 1, BranchID: "1",
		})
		assert.NotNil(t, err)
		assert.Equal(t, 404, err.StatusCode)
	})
}

func TestDeleteProduct(t *testing.T) {
	t.Run("purges the product from every cart", func(t *testing.T) {
		s := newTestStack()
		s.addBranch("1", "Centro")
		s.addProduct("p1", "Anillo", "Anillos", 2500, 8, "1")
		s.addProduct("p2", "Collar", "Collares", 450, 12, "1")
		s.cartSvc.AddToCart("a", "p1")
		s.cartSvc.AddToCart("a", "p2")
		s.cartSvc.AddToCart("b", "p1")

		err := s.catalogSvc.DeleteProduct("p1")

		assert.Nil(t, err)
		_, ok := s.catalog.FindByID("p1")
		assert.False(t, ok)

		cartA := s.cartSvc.GetCart("a")
		assert.Len(t, cartA.Items, 1)
		assert.Equal(t, "p2", cartA.Items[0].Product.ID)
		assert.Empty(t, s.cartSvc.GetCart("b").Items)
	})

	t.Run("unknown product is 404", func(t *testing.T) {
		s := newTestStack()
		err := s.catalogSvc.DeleteProduct("missing")
		assert.NotNil(t, err)
		assert.Equal(t, 404, err.StatusCode)
	})
}

func TestTransferStock(t *testing.T) {
	t.Run("clones the product at the destination", func(t *testing.T) {
		// Arrange
		s := newTestStack()
		s.addBranch("1", "Centro")
		s.addBranch("2", "Plaza Norte")
		s.addProduct("p1", "Anillo", "Anillos", 2500, 8, "1")

		// Act
		err := s.catalogSvc.TransferStock("p1", "1", "2", 3)

		// Assert
		assert.Nil(t, err)
		source, _ := s.catalog.FindByID("p1")
		assert.Equal(t, 5, source.Stock)

		clone, found := s.catalog.FindByNameAndBranch("Anillo", "2")
		assert.True(t, found)
		assert.Equal(t, 3, clone.Stock)
		assert.Equal(t, "Plaza Norte", clone.BranchName)
		assert.NotEqual(t, "p1", clone.ID)

		// Total units across branches are conserved.
		assert.Equal(t, 8, source.Stock+clone.Stock)
	})

	t.Run("merges into an existing product with the same name", func(t *testing.T) {
		s := newTestStack()
		s.addBranch("1", "Centro")
		s.addBranch("2", "Plaza Norte")
		s.addProduct("p1", "Anillo", "Anillos", 2500, 8, "1")
		s.addProduct("p2", "Anillo", "Anillos", 2500, 2, "2")

		err := s.catalogSvc.TransferStock("p1", "1", "2", 3)

		assert.Nil(t, err)
		source, _ := s.catalog.FindByID("p1")
		destination, _ := s.catalog.FindByID("p2")
		assert.Equal(t, 5, source.Stock)
		assert.Equal(t, 5, destination.Stock)
	})

	t.Run("insufficient stock is refused", func(t *testing.T) {
		s := newTestStack()
		s.addBranch("1", "Centro")
		s.addBranch("2", "Plaza Norte")
		s.addProduct("p1", "Anillo", "Anillos", 2500, 2, "1")

		err := s.catalogSvc.TransferStock("p1", "1", "2", 5)

		assert.NotNil(t, err)
		assert.Equal(t, 409, err.StatusCode)
	})

	t.Run("wrong source branch is 404", func(t *testing.T) {
		s := newTestStack()
		s.addBranch("1", "Centro")
		s.addBranch("2", "Plaza Norte")
		s.addProduct("p1", "Anillo", "Anillos", 2500, 8, "1")

		err := s.catalogSvc.TransferStock("p1", "2", "1", 1)

		assert.NotNil(t, err)
		assert.Equal(t, 404, err.StatusCode)
	})
}

func TestCategoryCRUD(t *testing.T) {
	t.Run("duplicate names are refused", func(t *testing.T) {
		s := newTestStack()
		_, err := s.catalogSvc.AddCategory(CategoryInput{Name: "Anillos"})
		assert.Nil(t, err)

		_, err = s.catalogSvc.AddCategory(CategoryInput{Name: "Anillos"})
		assert.NotNil(t, err)
		assert.Equal(t, 409, err.StatusCode)
	})

	t.Run("delete refuses while products carry the category", func(t *testing.T) {
		s := newTestStack()
		s.addBranch("1", "Centro")
		category, _ := s.catalogSvc.AddCategory(CategoryInput{Name: "Anillos"})
		s.addProduct("p1", "Anillo", "Anillos", 2500, 8, "1")

		err := s.catalogSvc.DeleteCategory(category.ID)

		assert.NotNil(t, err)
		assert.Equal(t, 409, err.StatusCode)
	})

	t.Run("delete succeeds once unused", func(t *testing.T) {
		s := newTestStack()
		category, _ := s.catalogSvc.AddCategory(CategoryInput{Name: "Anillos"})

		assert.Nil(t, s.catalogSvc.DeleteCategory(category.ID))
		assert.Empty(t, s.catalogSvc.ListCategories())
	})
}

func TestProductsCSVRoundTrip(t *testing.T) {
	s := newTestStack()
	s.addBranch("1", "Centro")
	s.addProduct("p1", "Anillo", "Anillos", 2500, 8, "1")

	var buf bytes.Buffer
	assert.NoError(t, s.catalogSvc.ExportProductsCSV(&buf))

	t.Run("export writes header plus one row per product", func(t *testing.T) {
		rows, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
		assert.NoError(t, err)
		assert.Len(t, rows, 2)
		assert.Equal(t, productCSVHeader, rows[0])
		assert.Equal(t, "Anillo", rows[1][1])
	})

	t.Run("import restores the rows into a fresh catalog", func(t *testing.T) {
		fresh := newTestStack()
		fresh.addBranch("1", "Centro")

		count, err := fresh.catalogSvc.ImportProductsCSV(bytes.NewReader(buf.Bytes()))

		assert.Nil(t, err)
		assert.Equal(t, 1, count)
		imported, ok := fresh.catalog.FindByID("p1")
		assert.True(t, ok)
		assert.Equal(t, "Anillo", imported.Name)
		assert.InDelta(t, 2500, imported.Price, 0.001)
	})

	t.Run("rows without id get one assigned", func(t *testing.T) {
		fresh := newTestStack()
		fresh.addBranch("1", "Centro")
		data := strings.Join(productCSVHeader, ",") + "\n" +
			",Collar,,450.00,,Collares,12,Oro Amarillo 14k,25.00,45cm,,,1,Centro,false,0\n"

		count, err := fresh.catalogSvc.ImportProductsCSV(strings.NewReader(data))

		assert.Nil(t, err)
		assert.Equal(t, 1, count)
		products := fresh.catalog.FindAll()
		assert.NotEmpty(t, products[0].ID)
	})

	t.Run("unknown branch rejects the import", func(t *testing.T) {
		fresh := newTestStack()
		data := strings.Join(productCSVHeader, ",") + "\n" +
			"x,Collar,,450.00,,Collares,12,,,,,,99,Nowhere,false,0\n"

		_, err := fresh.catalogSvc.ImportProductsCSV(strings.NewReader(data))

		assert.NotNil(t, err)
		assert.Equal(t, 400, err.StatusCode)
	})

	t.Run("negative price rejects the import", func(t *testing.T) {
		fresh := newTestStack()
		fresh.addBranch("1", "Centro")
		data := strings.Join(productCSVHeader, ",") + "\n" +
			"x,Collar,,-1,,Collares,12,,,,,,1,Centro,false,0\n"

		_, err := fresh.catalogSvc.ImportProductsCSV(strings.NewReader(data))

		assert.NotNil(t, err)
		assert.Equal(t, 400, err.StatusCode)
	})
}

func TestListProductsFilters(t *testing.T) {
	s := newTestStack()
	s.addBranch("1", "Centro")
	s.addBranch("2", "Plaza Norte")
	s.addProduct("p1", "Anillo Solitario", "Anillos", 2500, 8, "1")
	s.addProduct("p2", "Collar de Perlas", "Collares", 450, 0, "2")
	s.addProduct("p3", "Anillo Halo", "Anillos", 3500, 3, "2")

	t.Run("by category", func(t *testing.T) {
		out := s.catalogSvc.ListProducts(repository.ProductFilters{Category: "Anillos"})
		assert.Len(t, out, 2)
	})

	t.Run("by branch", func(t *testing.T) {
		out := s.catalogSvc.ListProducts(repository.ProductFilters{BranchID: "2"})
		assert.Len(t, out, 2)
	})

	t.Run("search matches the name case-insensitively", func(t *testing.T) {
		out := s.catalogSvc.ListProducts(repository.ProductFilters{Search: "anillo"})
		assert.Len(t, out, 2)
	})

	t.Run("in stock only", func(t *testing.T) {
		out := s.catalogSvc.ListProducts(repository.ProductFilters{InStock: true})
		assert.Len(t, out, 2)
	})

	t.Run("price range", func(t *testing.T) {
		out := s.catalogSvc.ListProducts(repository.ProductFilters{MinPrice: 1000, MaxPrice: 3000})
		assert.Len(t, out, 1)
		assert.Equal(t, "p1", out[0].ID)
	})

	t.Run("sort by price descending", func(t *testing.T) {
		out := s.catalogSvc.ListProducts(repository.ProductFilters{SortBy: "price_desc"})
		assert.Equal(t, "p3", out[0].ID)
	})
}
