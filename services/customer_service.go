package services

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/frrrancoelgori-ui/joyeria/models"
)

// CustomerInsights is the portfolio-level view over all derived customers.
type CustomerInsights struct {
	TotalCustomers        int     `json:"total_customers"`
	NewCustomersThisMonth int     `json:"new_customers_this_month"`
	VIPCustomers          int     `json:"vip_customers"`
	AverageOrderValue     float64 `json:"average_order_value"`
	CustomerLifetimeValue float64 `json:"customer_lifetime_value"`
	RetentionRate         float64 `json:"retention_rate"`
	Segments              struct {
		New     int `json:"new"`
		Regular int `json:"regular"`
		Loyal   int `json:"loyal"`
		AtRisk  int `json:"at_risk"`
	} `json:"segments"`
}

// CustomerService maintains one derived customer record per distinct email
// seen on the sales ledger. Guest checkouts collapse into a single synthetic
// customer under the configured guest email.
type CustomerService struct {
	guestEmail string
	logger     *zap.Logger

	mu        sync.RWMutex
	customers map[string]models.Customer
	order     []string // first-seen email order
}

func NewCustomerService(guestEmail string, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		guestEmail: guestEmail,
		logger:     logger,
		customers:  make(map[string]models.Customer),
	}
}

// ProcessSale folds one completed sale into the customer aggregates.
func (s *CustomerService) ProcessSale(sale models.Sale) {
	email := sale.CustomerEmail
	if email == "" {
		email = s.guestEmail
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.customers[email]
	if !ok {
		customer = models.Customer{
			ID:               uuid.NewString(),
			Email:            email,
			LastPurchase:     sale.Date,
			RegistrationDate: sale.Date,
			Status:           models.CustomerActive,
			Segment:          models.SegmentNew,
		}
		s.order = append(s.order, email)
	}

	customer.TotalPurchases++
	customer.TotalSpent += sale.Total
	customer.LastPurchase = sale.Date
	customer.Status = models.CustomerActive
	customer.Segment = segmentFor(customer)

	s.customers[email] = customer
}

// segmentFor classifies a customer. Order matters: the first purchase always
// wins, even when the spend would otherwise qualify as loyal.
func segmentFor(c models.Customer) models.CustomerSegment {
	daysSinceLast := int(time.Since(c.LastPurchase).Hours() / 24)

	switch {
	case c.TotalPurchases == 1:
		return models.SegmentNew
	case c.TotalPurchases >= 10 && c.TotalSpent >= 1000:
		return models.SegmentLoyal
	case daysSinceLast > 90:
		return models.SegmentAtRisk
	default:
		return models.SegmentRegular
	}
}

// GetCustomerInsights is a pure read over the derived records. The VIP count
// deliberately uses a broader predicate (spent >= 1000 OR purchases >= 10)
// than the loyal segment (AND), matching the dashboard's historic behavior.
func (s *CustomerService) GetCustomerInsights() CustomerInsights {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var insights CustomerInsights
	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)

	var totalRevenue float64
	var totalOrders int
	var active int

	for _, email := range s.order {
		c := s.customers[email]
		insights.TotalCustomers++
		if !c.RegistrationDate.Before(thirtyDaysAgo) {
			insights.NewCustomersThisMonth++
		}
		if c.TotalSpent >= 1000 || c.TotalPurchases >= 10 {
			insights.VIPCustomers++
		}
		totalRevenue += c.TotalSpent
		totalOrders += c.TotalPurchases
		if int(time.Since(c.LastPurchase).Hours()/24) <= 90 {
			active++
		}

		switch c.Segment {
		case models.SegmentNew:
			insights.Segments.New++
		case models.SegmentRegular:
			insights.Segments.Regular++
		case models.SegmentLoyal:
			insights.Segments.Loyal++
		case models.SegmentAtRisk:
			insights.Segments.AtRisk++
		}
	}

	if totalOrders > 0 {
		insights.AverageOrderValue = totalRevenue / float64(totalOrders)
	}
	if insights.TotalCustomers > 0 {
		insights.CustomerLifetimeValue = totalRevenue / float64(insights.TotalCustomers)
		insights.RetentionRate = float64(active) / float64(insights.TotalCustomers) * 100
	}
	return insights
}

func (s *CustomerService) GetTopCustomers(limit int) []models.Customer {
	if limit <= 0 {
		limit = 10
	}

	s.mu.RLock()
	out := make([]models.Customer, 0, len(s.order))
	for _, email := range s.order {
		out = append(out, s.customers[email])
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalSpent > out[j].TotalSpent
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (s *CustomerService) GetCustomerByID(id string) (models.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

func (s *CustomerService) GetAllCustomers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Customer, 0, len(s.order))
	for _, email := range s.order {
		out = append(out, s.customers[email])
	}
	return out
}
