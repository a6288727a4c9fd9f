package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/frrrancoelgori-ui/joyeria/logger"
	"github.com/frrrancoelgori-ui/joyeria/repository"
	"github.com/frrrancoelgori-ui/joyeria/services"
)

type ReportController struct {
	reports   *services.ReportService
	customers *services.CustomerService
	cart      *services.CartService
	catalog   *repository.CatalogRepository
	sales     *repository.SalesRepository
}

func NewReportController(
	reports *services.ReportService,
	customers *services.CustomerService,
	cart *services.CartService,
	catalog *repository.CatalogRepository,
	sales *repository.SalesRepository,
) *ReportController {
	return &ReportController{
		reports:   reports,
		customers: customers,
		cart:      cart,
		catalog:   catalog,
		sales:     sales,
	}
}

func parsePeriod(raw string) (services.ReportPeriod, bool) {
	period := services.ReportPeriod(raw)
	switch period {
	case services.PeriodDaily, services.PeriodWeekly, services.PeriodMonthly:
		return period, true
	}
	return "", false
}

// Reports bundles the sales, inventory and customer views the dashboard
// renders side by side.
func (rc *ReportController) Reports(c *gin.Context) {
	period, ok := parsePeriod(c.DefaultQuery("period", string(services.PeriodMonthly)))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period"})
		return
	}

	sales := rc.sales.FindAll()
	c.JSON(http.StatusOK, gin.H{
		"sales":     rc.reports.GenerateSalesReport(sales, period),
		"inventory": rc.reports.GenerateInventoryReport(rc.catalog.FindAll(), sales),
		"customers": rc.customers.GetCustomerInsights(),
	})
}

func (rc *ReportController) SalesReport(c *gin.Context) {
	period, ok := parsePeriod(c.DefaultQuery("period", string(services.PeriodMonthly)))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period"})
		return
	}
	c.JSON(http.StatusOK, rc.reports.GenerateSalesReport(rc.sales.FindAll(), period))
}

func (rc *ReportController) InventoryReport(c *gin.Context) {
	c.JSON(http.StatusOK, rc.reports.GenerateInventoryReport(rc.catalog.FindAll(), rc.sales.FindAll()))
}

// ExecutiveSummary folds the monthly reports into top-line KPIs.
func (rc *ReportController) ExecutiveSummary(c *gin.Context) {
	sales := rc.sales.FindAll()
	salesReport := rc.reports.GenerateSalesReport(sales, services.PeriodMonthly)
	inventoryReport := rc.reports.GenerateInventoryReport(rc.catalog.FindAll(), sales)
	insights := rc.customers.GetCustomerInsights()

	c.JSON(http.StatusOK, rc.reports.GenerateExecutiveSummary(salesReport, inventoryReport, insights))
}

// ExportSales streams the full sales history as a CSV download.
func (rc *ReportController) ExportSales(c *gin.Context) {
	filename := fmt.Sprintf("ventas_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename="+filename)

	if err := rc.cart.ExportSalesCSV(c.Writer); err != nil {
		logger.Log.Error("sales export failed", zap.Error(err))
	}
}
