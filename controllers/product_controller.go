package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/frrrancoelgori-ui/joyeria/logger"
	"github.com/frrrancoelgori-ui/joyeria/repository"
	"github.com/frrrancoelgori-ui/joyeria/services"
)

type ProductController struct {
	catalog   *services.CatalogService
	validator *RequestValidator
}

func NewProductController(catalog *services.CatalogService, validator *RequestValidator) *ProductController {
	return &ProductController{catalog: catalog, validator: validator}
}

// ListProducts returns the catalog, optionally filtered.
func (pc *ProductController) ListProducts(c *gin.Context) {
	filters := repository.ProductFilters{
		Category: c.Query("category"),
		BranchID: c.Query("branch_id"),
		Search:   c.Query("search"),
		SortBy:   c.Query("sort"),
		InStock:  c.Query("in_stock") == "true",
	}
	if v := c.Query("min_price"); v != "" {
		filters.MinPrice, _ = strconv.ParseFloat(v, 64)
	}
	if v := c.Query("max_price"); v != "" {
		filters.MaxPrice, _ = strconv.ParseFloat(v, 64)
	}

	c.JSON(http.StatusOK, pc.catalog.ListProducts(filters))
}

func (pc *ProductController) GetProduct(c *gin.Context) {
	product, svcErr := pc.catalog.GetProduct(c.Param("id"))
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	var input services.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := pc.validator.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, svcErr := pc.catalog.AddProduct(input)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (pc *ProductController) UpdateProduct(c *gin.Context) {
	var input services.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := pc.validator.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, svcErr := pc.catalog.UpdateProduct(c.Param("id"), input)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	if svcErr := pc.catalog.DeleteProduct(c.Param("id")); svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

type transferRequest struct {
	ProductID  string `json:"product_id" binding:"required"`
	FromBranch string `json:"from_branch" binding:"required"`
	ToBranch   string `json:"to_branch" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
}

// TransferStock moves units of a product between branches.
func (pc *ProductController) TransferStock(c *gin.Context) {
	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if svcErr := pc.catalog.TransferStock(req.ProductID, req.FromBranch, req.ToBranch, req.Quantity); svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "stock transferred"})
}

// ExportProducts streams the catalog as a CSV download.
func (pc *ProductController) ExportProducts(c *gin.Context) {
	filename := fmt.Sprintf("productos_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename="+filename)

	if err := pc.catalog.ExportProductsCSV(c.Writer); err != nil {
		logger.Log.Error("product export failed", zap.Error(err))
	}
}

// ImportProducts bulk-loads products from an uploaded CSV file.
func (pc *ProductController) ImportProducts(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open file"})
		return
	}
	defer f.Close()

	count, svcErr := pc.catalog.ImportProductsCSV(f)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": count})
}
