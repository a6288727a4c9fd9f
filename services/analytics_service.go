package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/frrrancoelgori-ui/joyeria/models"
	"github.com/frrrancoelgori-ui/joyeria/repository"
)

type Timeframe string

const (
	TimeframeDay   Timeframe = "day"
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
)

// RealTimeMetrics is the dashboard snapshot, refreshed on tracked events and
// on a fixed interval so the timestamp never goes stale.
type RealTimeMetrics struct {
	TotalSales        int       `json:"total_sales"`
	TodayRevenue      float64   `json:"today_revenue"`
	AverageOrderValue float64   `json:"average_order_value"`
	ActiveCartItems   int       `json:"active_cart_items"`
	TotalCartValue    float64   `json:"total_cart_value"`
	ProductsAdded     int       `json:"products_added"`
	ProductsUpdated   int       `json:"products_updated"`
	ProductsDeleted   int       `json:"products_deleted"`
	Timestamp         time.Time `json:"timestamp"`
}

type TopProduct struct {
	models.Product
	TotalSold int `json:"total_sold"`
}

type CategoryAnalytics struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
	Quantity int     `json:"quantity"`
}

type CartAnalytics struct {
	TotalItems       int     `json:"total_items"`
	TotalValue       float64 `json:"total_value"`
	UniqueProducts   int     `json:"unique_products"`
	AverageItemPrice float64 `json:"average_item_price"`
}

type ProductActivity struct {
	Added         int `json:"added"`
	Updated       int `json:"updated"`
	Deleted       int `json:"deleted"`
	TotalActivity int `json:"total_activity"`
}

// AdvancedReport combines the sales, cart, activity and real-time views.
type AdvancedReport struct {
	Sales struct {
		Total             int     `json:"total"`
		Revenue           float64 `json:"revenue"`
		AverageOrderValue float64 `json:"average_order_value"`
	} `json:"sales"`
	Cart     CartAnalytics   `json:"cart"`
	Products ProductActivity `json:"products"`
	RealTime RealTimeMetrics `json:"real_time"`
}

// AnalyticsService derives revenue, top-seller, category and real-time
// metrics from the sales ledger and the active carts. It owns no
// authoritative state; everything it reports is recomputable.
type AnalyticsService struct {
	sales           *repository.SalesRepository
	carts           *repository.CartRepository
	logger          *zap.Logger
	refreshInterval time.Duration

	mu       sync.RWMutex
	metrics  RealTimeMetrics
	activity ProductActivity
}

func NewAnalyticsService(
	sales *repository.SalesRepository,
	carts *repository.CartRepository,
	refreshInterval time.Duration,
	logger *zap.Logger,
) *AnalyticsService {
	s := &AnalyticsService{
		sales:           sales,
		carts:           carts,
		logger:          logger,
		refreshInterval: refreshInterval,
	}
	s.refreshMetrics()
	return s
}

// Run refreshes the real-time metrics on a fixed interval until the context
// is cancelled. Meant to be started as a goroutine and torn down with the
// process, not leaked.
func (s *AnalyticsService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()

	s.logger.Info("analytics refresher started",
		zap.Duration("interval", s.refreshInterval))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("analytics refresher stopped")
			return
		case <-ticker.C:
			s.refreshMetrics()
		}
	}
}

func (s *AnalyticsService) TrackProductAdded(_ models.Product) {
	s.mu.Lock()
	s.activity.Added++
	s.mu.Unlock()
	s.refreshMetrics()
}

func (s *AnalyticsService) TrackProductUpdated(_ models.Product) {
	s.mu.Lock()
	s.activity.Updated++
	s.mu.Unlock()
	s.refreshMetrics()
}

func (s *AnalyticsService) TrackProductDeleted(_ models.Product) {
	s.mu.Lock()
	s.activity.Deleted++
	s.mu.Unlock()
	s.refreshMetrics()
}

// TrackCartUpdate is called after any cart mutation.
func (s *AnalyticsService) TrackCartUpdate() {
	s.refreshMetrics()
}

// RecordSale is called after a sale lands on the ledger.
func (s *AnalyticsService) RecordSale(_ models.Sale) {
	s.refreshMetrics()
}

// CalculateRevenue sums completed sale totals over a trailing window ending
// now. Month is a calendar month back, day and week are fixed offsets.
func (s *AnalyticsService) CalculateRevenue(timeframe Timeframe) float64 {
	now := time.Now()
	var start time.Time

	switch timeframe {
	case TimeframeDay:
		start = now.AddDate(0, 0, -1)
	case TimeframeWeek:
		start = now.AddDate(0, 0, -7)
	default:
		start = now.AddDate(0, -1, 0)
	}

	var total float64
	for _, sale := range s.sales.FindAll() {
		if !sale.Date.Before(start) {
			total += sale.Total
		}
	}
	return total
}

// TopSellingProducts ranks the given products by units sold across the whole
// ledger. Ties keep the catalog's insertion order.
func (s *AnalyticsService) TopSellingProducts(products []models.Product, limit int) []TopProduct {
	if limit <= 0 {
		limit = 5
	}

	sold := make(map[string]int)
	for _, sale := range s.sales.FindAll() {
		for _, item := range sale.Items {
			sold[item.Product.ID] += item.Quantity
		}
	}

	ranked := make([]TopProduct, 0, len(products))
	for _, p := range products {
		ranked = append(ranked, TopProduct{Product: p, TotalSold: sold[p.ID]})
	}
	// Stable, so ties keep catalog order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSold > ranked[j].TotalSold
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// CategoryAnalytics groups sale lines by the category recorded on the line's
// product snapshot, not the live catalog record.
func (s *AnalyticsService) CategoryAnalytics() []CategoryAnalytics {
	index := make(map[string]int)
	var out []CategoryAnalytics

	for _, sale := range s.sales.FindAll() {
		for _, item := range sale.Items {
			cat := item.Product.Category
			i, seen := index[cat]
			if !seen {
				i = len(out)
				index[cat] = i
				out = append(out, CategoryAnalytics{Category: cat})
			}
			out[i].Revenue += item.Product.Price * float64(item.Quantity)
			out[i].Quantity += item.Quantity
		}
	}
	return out
}

func (s *AnalyticsService) CartAnalytics() CartAnalytics {
	items := s.carts.AllItems()

	var a CartAnalytics
	var priceSum float64
	for _, item := range items {
		a.TotalItems += item.Quantity
		a.TotalValue += item.Product.Price * float64(item.Quantity)
		priceSum += item.Product.Price
	}
	a.UniqueProducts = len(items)
	if len(items) > 0 {
		a.AverageItemPrice = priceSum / float64(len(items))
	}
	return a
}

func (s *AnalyticsService) ProductActivityMetrics() ProductActivity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a := s.activity
	a.TotalActivity = a.Added + a.Updated + a.Deleted
	return a
}

func (s *AnalyticsService) RealTimeMetrics() RealTimeMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.metrics
}

func (s *AnalyticsService) AdvancedReport() AdvancedReport {
	sales := s.sales.FindAll()
	var revenue float64
	for _, sale := range sales {
		revenue += sale.Total
	}

	var r AdvancedReport
	r.Sales.Total = len(sales)
	r.Sales.Revenue = revenue
	if len(sales) > 0 {
		r.Sales.AverageOrderValue = revenue / float64(len(sales))
	}
	r.Cart = s.CartAnalytics()
	r.Products = s.ProductActivityMetrics()
	r.RealTime = s.RealTimeMetrics()
	return r
}

func (s *AnalyticsService) refreshMetrics() {
	sales := s.sales.FindAll()
	var revenue float64
	for _, sale := range sales {
		revenue += sale.Total
	}
	var aov float64
	if len(sales) > 0 {
		aov = revenue / float64(len(sales))
	}

	cart := s.CartAnalytics()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics = RealTimeMetrics{
		TotalSales:        len(sales),
		TodayRevenue:      s.revenueSinceLocked(sales, time.Now().AddDate(0, 0, -1)),
		AverageOrderValue: aov,
		ActiveCartItems:   cart.TotalItems,
		TotalCartValue:    cart.TotalValue,
		ProductsAdded:     s.activity.Added,
		ProductsUpdated:   s.activity.Updated,
		ProductsDeleted:   s.activity.Deleted,
		Timestamp:         time.Now(),
	}
}

func (s *AnalyticsService) revenueSinceLocked(sales []models.Sale, start time.Time) float64 {
	var total float64
	for _, sale := range sales {
		if !sale.Date.Before(start) {
			total += sale.Total
		}
	}
	return total
}
