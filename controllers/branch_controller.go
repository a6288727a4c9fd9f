package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frrrancoelgori-ui/joyeria/repository"
	"github.com/frrrancoelgori-ui/joyeria/services"
)

type BranchController struct {
	branches  *services.BranchService
	catalog   *repository.CatalogRepository
	sales     *repository.SalesRepository
	validator *RequestValidator
}

func NewBranchController(
	branches *services.BranchService,
	catalog *repository.CatalogRepository,
	sales *repository.SalesRepository,
	validator *RequestValidator,
) *BranchController {
	return &BranchController{branches: branches, catalog: catalog, sales: sales, validator: validator}
}

func (bc *BranchController) ListBranches(c *gin.Context) {
	c.JSON(http.StatusOK, bc.branches.ListBranches())
}

func (bc *BranchController) GetBranch(c *gin.Context) {
	branch, svcErr := bc.branches.GetBranch(c.Param("id"))
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, branch)
}

func (bc *BranchController) CreateBranch(c *gin.Context) {
	var input services.BranchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := bc.validator.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, bc.branches.AddBranch(input))
}

func (bc *BranchController) UpdateBranch(c *gin.Context) {
	var input services.BranchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := bc.validator.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	branch, svcErr := bc.branches.UpdateBranch(c.Param("id"), input)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, branch)
}

func (bc *BranchController) DeleteBranch(c *gin.Context) {
	if svcErr := bc.branches.DeleteBranch(c.Param("id")); svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "branch deleted"})
}

// BranchAnalytics returns performance scores for one branch, or all branches
// when no id query parameter is given.
func (bc *BranchController) BranchAnalytics(c *gin.Context) {
	analytics := bc.branches.GetBranchAnalytics(c.Query("id"), bc.catalog.FindAll(), bc.sales.FindAll())
	c.JSON(http.StatusOK, analytics)
}

func (bc *BranchController) BranchReport(c *gin.Context) {
	report, svcErr := bc.branches.GenerateBranchReport(c.Param("id"), bc.catalog.FindAll(), bc.sales.FindAll())
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (bc *BranchController) BranchInventory(c *gin.Context) {
	c.JSON(http.StatusOK, bc.branches.GetBranchInventory(c.Param("id")))
}

func (bc *BranchController) BranchSales(c *gin.Context) {
	c.JSON(http.StatusOK, bc.branches.GetBranchSales(c.Param("id")))
}
