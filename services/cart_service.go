package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/frrrancoelgori-ui/joyeria/models"
	"github.com/frrrancoelgori-ui/joyeria/repository"
)

// CartService owns the per-session carts and the checkout path: snapshotting
// the cart into the sales ledger, fulfilling stock and feeding the
// aggregators.
type CartService struct {
	carts     *repository.CartRepository
	catalog   *repository.CatalogRepository
	sales     *repository.SalesRepository
	analytics *AnalyticsService
	inventory *InventoryService
	customers *CustomerService
	branchSvc *BranchService
	phone     string
	logger    *zap.Logger
}

func NewCartService(
	carts *repository.CartRepository,
	catalog *repository.CatalogRepository,
	sales *repository.SalesRepository,
	analytics *AnalyticsService,
	inventory *InventoryService,
	customers *CustomerService,
	branchSvc *BranchService,
	whatsAppPhone string,
	logger *zap.Logger,
) *CartService {
	return &CartService{
		carts:     carts,
		catalog:   catalog,
		sales:     sales,
		analytics: analytics,
		inventory: inventory,
		customers: customers,
		branchSvc: branchSvc,
		phone:     whatsAppPhone,
		logger:    logger,
	}
}

func (s *CartService) GetCart(sessionID string) models.Cart {
	return s.carts.Get(sessionID)
}

// AddToCart adds one unit of the product, merging into an existing line.
// Out-of-stock products are refused.
func (s *CartService) AddToCart(sessionID, productID string) (models.Cart, *ServiceError) {
	product, ok := s.catalog.FindByID(productID)
	if !ok {
		return models.Cart{}, newError(404, "product not found")
	}
	if product.Stock == 0 {
		return models.Cart{}, newError(409, "product is out of stock")
	}

	cart := s.carts.Get(sessionID)
	found := false
	for i := range cart.Items {
		if cart.Items[i].Product.ID == productID {
			cart.Items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, models.CartItem{Product: product, Quantity: 1})
	}

	s.carts.Save(cart)
	s.analytics.TrackCartUpdate()
	return cart, nil
}

// UpdateQuantity sets a line's quantity; zero or below removes the line.
func (s *CartService) UpdateQuantity(sessionID, productID string, quantity int) (models.Cart, *ServiceError) {
	if quantity <= 0 {
		return s.RemoveFromCart(sessionID, productID)
	}

	cart := s.carts.Get(sessionID)
	for i := range cart.Items {
		if cart.Items[i].Product.ID == productID {
			cart.Items[i].Quantity = quantity
			s.carts.Save(cart)
			s.analytics.TrackCartUpdate()
			return cart, nil
		}
	}
	return models.Cart{}, newError(404, "product not in cart")
}

func (s *CartService) RemoveFromCart(sessionID, productID string) (models.Cart, *ServiceError) {
	cart := s.carts.Get(sessionID)
	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept
	s.carts.Save(cart)
	s.analytics.TrackCartUpdate()
	return cart, nil
}

func (s *CartService) ClearCart(sessionID string) {
	s.carts.Delete(sessionID)
	s.analytics.TrackCartUpdate()
}

// Checkout turns the session's cart into a completed sale: the ledger gets
// an immutable snapshot, stock is decremented with an audit movement per
// line, the customer and branch aggregates are fed, and the cart cleared.
func (s *CartService) Checkout(sessionID, customerEmail string) (models.Sale, *ServiceError) {
	cart := s.carts.Get(sessionID)
	if len(cart.Items) == 0 {
		return models.Sale{}, newError(400, "cart is empty")
	}

	items := make([]models.CartItem, len(cart.Items))
	copy(items, cart.Items)

	sale := models.Sale{
		ID:            uuid.NewString(),
		Date:          time.Now(),
		Items:         items,
		Total:         cart.TotalValue(),
		CustomerEmail: customerEmail,
		Status:        models.SaleStatusCompleted,
	}

	s.sales.Append(sale)
	s.analytics.RecordSale(sale)
	s.customers.ProcessSale(sale)

	branchesSeen := make(map[string]bool)
	for _, item := range items {
		previous, current, ok := s.catalog.AdjustStock(item.Product.ID, -item.Quantity)
		if ok {
			s.inventory.RecordStockMovement(
				item.Product.ID, models.MovementOut, item.Quantity,
				"Venta completada", previous, current, "",
			)
			s.branchSvc.UpdateBranchInventory(item.Product.BranchID, item.Product.ID, current)
		}
		if !branchesSeen[item.Product.BranchID] {
			branchesSeen[item.Product.BranchID] = true
			s.branchSvc.RecordBranchSale(item.Product.BranchID, sale)
		}
	}

	s.carts.Delete(sessionID)
	s.analytics.TrackCartUpdate()

	s.logger.Info("purchase completed",
		zap.String("sale_id", sale.ID),
		zap.Float64("total", sale.Total),
		zap.Int("lines", len(items)),
	)
	return sale, nil
}

// WhatsAppLink renders the cart as the retailer's WhatsApp inquiry message
// and returns the wa.me URL the storefront opens.
func (s *CartService) WhatsAppLink(sessionID string) (string, *ServiceError) {
	cart := s.carts.Get(sessionID)
	if len(cart.Items) == 0 {
		return "", newError(400, "cart is empty")
	}

	var b strings.Builder
	b.WriteString("¡Hola! Me interesan estos productos de Diamante Real:\n\n")
	for i, item := range cart.Items {
		p := item.Product
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, p.Name)
		fmt.Fprintf(&b, "   • Cantidad: %d\n", item.Quantity)
		fmt.Fprintf(&b, "   • Precio: $%.2f\n", p.Price)
		fmt.Fprintf(&b, "   • Material: %s\n", p.Material)
		fmt.Fprintf(&b, "   • Sucursal: %s\n", p.BranchName)
		if p.Gemstone != "" {
			fmt.Fprintf(&b, "   • Gemas: %s\n", p.Gemstone)
		}
		if p.Customizable {
			fmt.Fprintf(&b, "   • ✨ Personalizable (%d días)\n", p.CraftingTime)
		}
		fmt.Fprintf(&b, "   • Subtotal: $%.2f\n\n", p.Price*float64(item.Quantity))
	}
	fmt.Fprintf(&b, "*TOTAL: $%.2f*\n\n", cart.TotalValue())
	b.WriteString("Me gustaría recibir más información sobre estos productos y conocer las opciones de pago y entrega. ¡Gracias!")

	return "https://wa.me/" + s.phone + "?text=" + url.QueryEscape(b.String()), nil
}

// ExportSalesCSV writes the sales ledger as CSV, one row per sale line.
func (s *CartService) ExportSalesCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := []string{"sale_id", "date", "customer_email", "status", "product_id", "product_name", "quantity", "unit_price", "line_total", "sale_total"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, sale := range s.sales.FindAll() {
		for _, item := range sale.Items {
			record := []string{
				sale.ID,
				sale.Date.Format(time.RFC3339),
				sale.CustomerEmail,
				string(sale.Status),
				item.Product.ID,
				item.Product.Name,
				strconv.Itoa(item.Quantity),
				strconv.FormatFloat(item.Product.Price, 'f', 2, 64),
				strconv.FormatFloat(item.Product.Price*float64(item.Quantity), 'f', 2, 64),
				strconv.FormatFloat(sale.Total, 'f', 2, 64),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
