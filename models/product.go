package models

// Product is a catalog entry. Stock is authoritative here; the per-branch
// inventory ledger kept by the branch service is a best-effort mirror.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Image         string  `json:"image"`
	Category      string  `json:"category"`
	Stock         int     `json:"stock"`
	Material      string  `json:"material"`
	Weight        float64 `json:"weight"`
	Size          string  `json:"size"`
	Gemstone      string  `json:"gemstone,omitempty"`
	Certification string  `json:"certification,omitempty"`
	BranchID      string  `json:"branch_id"`
	BranchName    string  `json:"branch_name"`
	Customizable  bool    `json:"is_customizable"`
	// Days to craft, only meaningful when Customizable is true.
	CraftingTime int `json:"crafting_time,omitempty"`
}

type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
}

// TotalValue is the sum of price times quantity across all lines.
func (c *Cart) TotalValue() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// TotalItems is the sum of quantities across all lines.
func (c *Cart) TotalItems() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}
