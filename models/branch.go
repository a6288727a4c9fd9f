package models

import "time"

type OpeningHours struct {
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
	Saturday  string `json:"saturday"`
	Sunday    string `json:"sunday"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Branch struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Address      string       `json:"address"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email"`
	Manager      string       `json:"manager"`
	City         string       `json:"city"`
	State        string       `json:"state"`
	ZipCode      string       `json:"zip_code"`
	OpeningHours OpeningHours `json:"opening_hours"`
	Specialties  []string     `json:"specialties"`
	IsActive     bool         `json:"is_active"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
}

// BranchInventory is one line of the per-branch stock ledger. It is kept in
// sync with Product.Stock by explicit calls and is not authoritative.
type BranchInventory struct {
	BranchID      string    `json:"branch_id"`
	ProductID     string    `json:"product_id"`
	Stock         int       `json:"stock"`
	ReservedStock int       `json:"reserved_stock"`
	LastUpdated   time.Time `json:"last_updated"`
}

// BranchSales is a per-branch daily sales rollup.
type BranchSales struct {
	BranchID     string   `json:"branch_id"`
	Date         string   `json:"date"` // YYYY-MM-DD
	TotalSales   int      `json:"total_sales"`
	TotalRevenue float64  `json:"total_revenue"`
	TopProducts  []string `json:"top_products"`
}
