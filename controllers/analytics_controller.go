package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/frrrancoelgori-ui/joyeria/repository"
	"github.com/frrrancoelgori-ui/joyeria/services"
)

type AnalyticsController struct {
	analytics *services.AnalyticsService
	inventory *services.InventoryService
	customers *services.CustomerService
	catalog   *repository.CatalogRepository
}

func NewAnalyticsController(
	analytics *services.AnalyticsService,
	inventory *services.InventoryService,
	customers *services.CustomerService,
	catalog *repository.CatalogRepository,
) *AnalyticsController {
	return &AnalyticsController{
		analytics: analytics,
		inventory: inventory,
		customers: customers,
		catalog:   catalog,
	}
}

// Dashboard assembles the admin overview: revenue per timeframe, top
// sellers, category breakdown, live metrics, stock health and customer
// insights in one payload.
func (ac *AnalyticsController) Dashboard(c *gin.Context) {
	products := ac.catalog.FindAll()

	c.JSON(http.StatusOK, gin.H{
		"revenue": gin.H{
			"month": ac.analytics.CalculateRevenue(services.TimeframeMonth),
			"week":  ac.analytics.CalculateRevenue(services.TimeframeWeek),
			"day":   ac.analytics.CalculateRevenue(services.TimeframeDay),
		},
		"top_products":       ac.analytics.TopSellingProducts(products, 5),
		"category_analytics": ac.analytics.CategoryAnalytics(),
		"real_time_metrics":  ac.analytics.RealTimeMetrics(),
		"stock_report":       ac.inventory.GetStockReport(products),
		"customer_insights":  ac.customers.GetCustomerInsights(),
	})
}

func (ac *AnalyticsController) RealTimeMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, ac.analytics.RealTimeMetrics())
}

func (ac *AnalyticsController) Revenue(c *gin.Context) {
	timeframe := services.Timeframe(c.DefaultQuery("timeframe", string(services.TimeframeMonth)))
	switch timeframe {
	case services.TimeframeMonth, services.TimeframeWeek, services.TimeframeDay:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid timeframe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"timeframe": timeframe,
		"revenue":   ac.analytics.CalculateRevenue(timeframe),
	})
}

func (ac *AnalyticsController) TopProducts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}
	c.JSON(http.StatusOK, ac.analytics.TopSellingProducts(ac.catalog.FindAll(), limit))
}

func (ac *AnalyticsController) CategoryAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, ac.analytics.CategoryAnalytics())
}

func (ac *AnalyticsController) CartAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, ac.analytics.CartAnalytics())
}

func (ac *AnalyticsController) AdvancedReport(c *gin.Context) {
	c.JSON(http.StatusOK, ac.analytics.AdvancedReport())
}

// InventoryAlerts recomputes alerts against the live catalog before
// answering, so the list always reflects current stock.
func (ac *AnalyticsController) InventoryAlerts(c *gin.Context) {
	ac.inventory.CheckInventoryAlerts(ac.catalog.FindAll())
	resolved := c.Query("resolved") == "true"
	c.JSON(http.StatusOK, ac.inventory.GetAlerts(resolved))
}

func (ac *AnalyticsController) ResolveAlert(c *gin.Context) {
	if !ac.inventory.ResolveAlert(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "alert resolved"})
}

func (ac *AnalyticsController) StockReport(c *gin.Context) {
	c.JSON(http.StatusOK, ac.inventory.GetStockReport(ac.catalog.FindAll()))
}

func (ac *AnalyticsController) StockMovements(c *gin.Context) {
	c.JSON(http.StatusOK, ac.inventory.GetStockMovements(c.Query("product_id")))
}

func (ac *AnalyticsController) CustomerInsights(c *gin.Context) {
	c.JSON(http.StatusOK, ac.customers.GetCustomerInsights())
}

func (ac *AnalyticsController) TopCustomers(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}
	c.JSON(http.StatusOK, ac.customers.GetTopCustomers(limit))
}

func (ac *AnalyticsController) ListCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, ac.customers.GetAllCustomers())
}

func (ac *AnalyticsController) GetCustomer(c *gin.Context) {
	customer, ok := ac.customers.GetCustomerByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}
	c.JSON(http.StatusOK, customer)
}
