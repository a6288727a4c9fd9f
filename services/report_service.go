package services

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/frrrancoelgori-ui/joyeria/models"
)

type ReportPeriod string

const (
	PeriodDaily   ReportPeriod = "daily"
	PeriodWeekly  ReportPeriod = "weekly"
	PeriodMonthly ReportPeriod = "monthly"
)

type ProductSalesLine struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type CategorySalesLine struct {
	Category string  `json:"category"`
	Sales    int     `json:"sales"`
	Revenue  float64 `json:"revenue"`
}

type DailySalesLine struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}

type SalesReport struct {
	Period            ReportPeriod        `json:"period"`
	TotalSales        int                 `json:"total_sales"`
	TotalRevenue      float64             `json:"total_revenue"`
	AverageOrderValue float64             `json:"average_order_value"`
	TopProducts       []ProductSalesLine  `json:"top_products"`
	SalesByCategory   []CategorySalesLine `json:"sales_by_category"`
	DailySales        []DailySalesLine    `json:"daily_sales"`
}

type CategoryBreakdownLine struct {
	Category string  `json:"category"`
	Products int     `json:"products"`
	Value    float64 `json:"value"`
}

type InventoryReport struct {
	TotalProducts      int                     `json:"total_products"`
	TotalValue         float64                 `json:"total_value"`
	LowStockItems      int                     `json:"low_stock_items"`
	OutOfStockItems    int                     `json:"out_of_stock_items"`
	TopSellingProducts []TopProduct            `json:"top_selling_products"`
	SlowMovingProducts []TopProduct            `json:"slow_moving_products"`
	CategoryBreakdown  []CategoryBreakdownLine `json:"category_breakdown"`
}

type ExecutiveSummary struct {
	KPIs struct {
		TotalRevenue      float64 `json:"total_revenue"`
		TotalOrders       int     `json:"total_orders"`
		AverageOrderValue float64 `json:"average_order_value"`
		InventoryValue    float64 `json:"inventory_value"`
		TotalCustomers    int     `json:"total_customers"`
		NewCustomers      int     `json:"new_customers"`
	} `json:"kpis"`
	Alerts struct {
		LowStock        int `json:"low_stock"`
		OutOfStock      int `json:"out_of_stock"`
		AtRiskCustomers int `json:"at_risk_customers"`
	} `json:"alerts"`
	Trends struct {
		TopCategory string  `json:"top_category"`
		TopProduct  string  `json:"top_product"`
		GrowthRate  float64 `json:"growth_rate"`
	} `json:"trends"`
}

// ReportService composes the aggregators' outputs into period-scoped sales
// and inventory reports and an executive summary.
type ReportService struct {
	lowStockThreshold int
	logger            *zap.Logger
}

func NewReportService(lowStockThreshold int, logger *zap.Logger) *ReportService {
	return &ReportService{lowStockThreshold: lowStockThreshold, logger: logger}
}

// GenerateSalesReport aggregates sales inside the trailing period window.
// All grouping reads the product snapshots on the sale lines, so later
// catalog edits don't rewrite history.
func (s *ReportService) GenerateSalesReport(sales []models.Sale, period ReportPeriod) SalesReport {
	now := time.Now()
	var start time.Time
	switch period {
	case PeriodDaily:
		start = now.AddDate(0, 0, -1)
	case PeriodWeekly:
		start = now.AddDate(0, 0, -7)
	default:
		period = PeriodMonthly
		start = now.AddDate(0, 0, -30)
	}

	var filtered []models.Sale
	for _, sale := range sales {
		if !sale.Date.Before(start) {
			filtered = append(filtered, sale)
		}
	}

	report := SalesReport{Period: period, TotalSales: len(filtered)}
	for _, sale := range filtered {
		report.TotalRevenue += sale.Total
	}
	if len(filtered) > 0 {
		report.AverageOrderValue = report.TotalRevenue / float64(len(filtered))
	}

	// Top products by units, keyed by product name.
	productIdx := make(map[string]int)
	for _, sale := range filtered {
		for _, item := range sale.Items {
			i, seen := productIdx[item.Product.Name]
			if !seen {
				i = len(report.TopProducts)
				productIdx[item.Product.Name] = i
				report.TopProducts = append(report.TopProducts, ProductSalesLine{Name: item.Product.Name})
			}
			report.TopProducts[i].Quantity += item.Quantity
			report.TopProducts[i].Revenue += item.Product.Price * float64(item.Quantity)
		}
	}
	sort.SliceStable(report.TopProducts, func(i, j int) bool {
		return report.TopProducts[i].Quantity > report.TopProducts[j].Quantity
	})
	if len(report.TopProducts) > 10 {
		report.TopProducts = report.TopProducts[:10]
	}

	categoryIdx := make(map[string]int)
	for _, sale := range filtered {
		for _, item := range sale.Items {
			i, seen := categoryIdx[item.Product.Category]
			if !seen {
				i = len(report.SalesByCategory)
				categoryIdx[item.Product.Category] = i
				report.SalesByCategory = append(report.SalesByCategory, CategorySalesLine{Category: item.Product.Category})
			}
			report.SalesByCategory[i].Sales += item.Quantity
			report.SalesByCategory[i].Revenue += item.Product.Price * float64(item.Quantity)
		}
	}

	dailyIdx := make(map[string]int)
	for _, sale := range filtered {
		day := sale.Date.Format("2006-01-02")
		i, seen := dailyIdx[day]
		if !seen {
			i = len(report.DailySales)
			dailyIdx[day] = i
			report.DailySales = append(report.DailySales, DailySalesLine{Date: day})
		}
		report.DailySales[i].Sales++
		report.DailySales[i].Revenue += sale.Total
	}
	sort.SliceStable(report.DailySales, func(i, j int) bool {
		return report.DailySales[i].Date < report.DailySales[j].Date
	})

	return report
}

// GenerateInventoryReport derives inventory health plus top sellers and slow
// movers (sold two units or fewer while sitting on stock above ten).
func (s *ReportService) GenerateInventoryReport(products []models.Product, sales []models.Sale) InventoryReport {
	report := InventoryReport{TotalProducts: len(products)}

	for _, p := range products {
		report.TotalValue += p.Price * float64(p.Stock)
		if p.Stock > 0 && p.Stock <= s.lowStockThreshold {
			report.LowStockItems++
		}
		if p.Stock == 0 {
			report.OutOfStockItems++
		}
	}

	sold := make(map[string]int)
	for _, sale := range sales {
		for _, item := range sale.Items {
			sold[item.Product.ID] += item.Quantity
		}
	}

	ranked := make([]TopProduct, 0, len(products))
	for _, p := range products {
		ranked = append(ranked, TopProduct{Product: p, TotalSold: sold[p.ID]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSold > ranked[j].TotalSold
	})

	top := ranked
	if len(top) > 10 {
		top = top[:10]
	}
	report.TopSellingProducts = append([]TopProduct(nil), top...)

	for _, p := range products {
		if sold[p.ID] <= 2 && p.Stock > 10 {
			report.SlowMovingProducts = append(report.SlowMovingProducts, TopProduct{Product: p, TotalSold: sold[p.ID]})
			if len(report.SlowMovingProducts) == 10 {
				break
			}
		}
	}

	categoryIdx := make(map[string]int)
	for _, p := range products {
		i, seen := categoryIdx[p.Category]
		if !seen {
			i = len(report.CategoryBreakdown)
			categoryIdx[p.Category] = i
			report.CategoryBreakdown = append(report.CategoryBreakdown, CategoryBreakdownLine{Category: p.Category})
		}
		report.CategoryBreakdown[i].Products++
		report.CategoryBreakdown[i].Value += p.Price * float64(p.Stock)
	}

	return report
}

// GenerateExecutiveSummary folds the three reports into dashboard KPIs.
func (s *ReportService) GenerateExecutiveSummary(
	salesReport SalesReport,
	inventoryReport InventoryReport,
	customerInsights CustomerInsights,
) ExecutiveSummary {
	var summary ExecutiveSummary

	summary.KPIs.TotalRevenue = salesReport.TotalRevenue
	summary.KPIs.TotalOrders = salesReport.TotalSales
	summary.KPIs.AverageOrderValue = salesReport.AverageOrderValue
	summary.KPIs.InventoryValue = inventoryReport.TotalValue
	summary.KPIs.TotalCustomers = customerInsights.TotalCustomers
	summary.KPIs.NewCustomers = customerInsights.NewCustomersThisMonth

	summary.Alerts.LowStock = inventoryReport.LowStockItems
	summary.Alerts.OutOfStock = inventoryReport.OutOfStockItems
	summary.Alerts.AtRiskCustomers = customerInsights.Segments.AtRisk

	summary.Trends.TopCategory = "N/A"
	if len(salesReport.SalesByCategory) > 0 {
		summary.Trends.TopCategory = salesReport.SalesByCategory[0].Category
	}
	summary.Trends.TopProduct = "N/A"
	if len(salesReport.TopProducts) > 0 {
		summary.Trends.TopProduct = salesReport.TopProducts[0].Name
	}
	summary.Trends.GrowthRate = growthRate(salesReport.DailySales)

	return summary
}

// growthRate compares the last seven data points of the daily series against
// the prior seven. Zero when there is too little data or no prior revenue.
func growthRate(daily []DailySalesLine) float64 {
	if len(daily) < 2 {
		return 0
	}

	recentStart := len(daily) - 7
	if recentStart < 0 {
		recentStart = 0
	}
	previousStart := len(daily) - 14
	if previousStart < 0 {
		previousStart = 0
	}

	var recent, previous float64
	for _, d := range daily[recentStart:] {
		recent += d.Revenue
	}
	for _, d := range daily[previousStart:recentStart] {
		previous += d.Revenue
	}

	if previous <= 0 {
		return 0
	}
	return (recent - previous) / previous * 100
}
