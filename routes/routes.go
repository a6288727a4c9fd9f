package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/frrrancoelgori-ui/joyeria/controllers"
	"github.com/frrrancoelgori-ui/joyeria/middleware"
)

// Controllers bundles every handler group the router mounts.
type Controllers struct {
	Auth      *controllers.AuthController
	Products  *controllers.ProductController
	Category  *controllers.CategoryController
	Branches  *controllers.BranchController
	Cart      *controllers.CartController
	Analytics *controllers.AnalyticsController
	Reports   *controllers.ReportController
}

// Register mounts the public storefront surface and the JWT-protected
// admin surface under /api.
func Register(r *gin.Engine, ctrl Controllers, jwtSecret string) {
	api := r.Group("/api")

	api.POST("/auth/login", ctrl.Auth.Login)

	products := api.Group("/products")
	{
		products.GET("", ctrl.Products.ListProducts)
		products.GET("/:id", ctrl.Products.GetProduct)
	}

	api.GET("/branches", ctrl.Branches.ListBranches)
	api.GET("/branches/:id", ctrl.Branches.GetBranch)
	api.GET("/categories", ctrl.Category.ListCategories)

	cart := api.Group("/cart")
	{
		cart.GET("", ctrl.Cart.GetCart)
		cart.POST("/items", ctrl.Cart.AddToCart)
		cart.PUT("/items/:productId", ctrl.Cart.UpdateQuantity)
		cart.DELETE("/items/:productId", ctrl.Cart.RemoveFromCart)
		cart.DELETE("", ctrl.Cart.ClearCart)
		cart.POST("/checkout", ctrl.Cart.Checkout)
		cart.GET("/whatsapp-link", ctrl.Cart.WhatsAppLink)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.RequireAdmin(jwtSecret))
	{
		admin.POST("/auth/change-credentials", ctrl.Auth.ChangeCredentials)

		admin.POST("/products", ctrl.Products.CreateProduct)
		admin.PUT("/products/:id", ctrl.Products.UpdateProduct)
		admin.DELETE("/products/:id", ctrl.Products.DeleteProduct)
		admin.POST("/products/transfer", ctrl.Products.TransferStock)
		admin.GET("/products/export", ctrl.Products.ExportProducts)
		admin.POST("/products/import", ctrl.Products.ImportProducts)

		admin.POST("/categories", ctrl.Category.CreateCategory)
		admin.PUT("/categories/:id", ctrl.Category.UpdateCategory)
		admin.DELETE("/categories/:id", ctrl.Category.DeleteCategory)

		admin.POST("/branches", ctrl.Branches.CreateBranch)
		admin.PUT("/branches/:id", ctrl.Branches.UpdateBranch)
		admin.DELETE("/branches/:id", ctrl.Branches.DeleteBranch)
		admin.GET("/branches/analytics", ctrl.Branches.BranchAnalytics)
		admin.GET("/branches/:id/report", ctrl.Branches.BranchReport)
		admin.GET("/branches/:id/inventory", ctrl.Branches.BranchInventory)
		admin.GET("/branches/:id/sales", ctrl.Branches.BranchSales)

		analytics := admin.Group("/analytics")
		{
			analytics.GET("", ctrl.Analytics.Dashboard)
			analytics.GET("/realtime", ctrl.Analytics.RealTimeMetrics)
			analytics.GET("/revenue", ctrl.Analytics.Revenue)
			analytics.GET("/top-products", ctrl.Analytics.TopProducts)
			analytics.GET("/categories", ctrl.Analytics.CategoryAnalytics)
			analytics.GET("/cart", ctrl.Analytics.CartAnalytics)
			analytics.GET("/advanced", ctrl.Analytics.AdvancedReport)
		}

		inventory := admin.Group("/inventory")
		{
			inventory.GET("/alerts", ctrl.Analytics.InventoryAlerts)
			inventory.POST("/alerts/:id/resolve", ctrl.Analytics.ResolveAlert)
			inventory.GET("/report", ctrl.Analytics.StockReport)
			inventory.GET("/movements", ctrl.Analytics.StockMovements)
		}

		customers := admin.Group("/customers")
		{
			customers.GET("", ctrl.Analytics.ListCustomers)
			customers.GET("/insights", ctrl.Analytics.CustomerInsights)
			customers.GET("/top", ctrl.Analytics.TopCustomers)
			customers.GET("/:id", ctrl.Analytics.GetCustomer)
		}

		reports := admin.Group("/reports")
		{
			reports.GET("", ctrl.Reports.Reports)
			reports.GET("/sales", ctrl.Reports.SalesReport)
			reports.GET("/inventory", ctrl.Reports.InventoryReport)
			reports.GET("/executive-summary", ctrl.Reports.ExecutiveSummary)
			reports.GET("/sales/export", ctrl.Reports.ExportSales)
		}
	}
}
