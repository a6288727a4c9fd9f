package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frrrancoelgori-ui/joyeria/services"
)

type CategoryController struct {
	catalog   *services.CatalogService
	validator *RequestValidator
}

func NewCategoryController(catalog *services.CatalogService, validator *RequestValidator) *CategoryController {
	return &CategoryController{catalog: catalog, validator: validator}
}

func (cc *CategoryController) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, cc.catalog.ListCategories())
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var input services.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := cc.validator.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, svcErr := cc.catalog.AddCategory(input)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	var input services.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := cc.validator.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, svcErr := cc.catalog.UpdateCategory(c.Param("id"), input)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	if svcErr := cc.catalog.DeleteCategory(c.Param("id")); svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}
