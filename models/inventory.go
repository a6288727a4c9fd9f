package models

import "time"

type AlertType string

const (
	AlertLowStock    AlertType = "low_stock"
	AlertOutOfStock  AlertType = "out_of_stock"
	AlertOverstock   AlertType = "overstock"
	AlertPriceChange AlertType = "price_change"
)

type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "low"
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

type InventoryAlert struct {
	ID          string        `json:"id"`
	Type        AlertType     `json:"type"`
	ProductID   string        `json:"product_id"`
	ProductName string        `json:"product_name"`
	Message     string        `json:"message"`
	Severity    AlertSeverity `json:"severity"`
	Timestamp   time.Time     `json:"timestamp"`
	Resolved    bool          `json:"resolved"`
}

type MovementType string

const (
	MovementIn         MovementType = "in"
	MovementOut        MovementType = "out"
	MovementAdjustment MovementType = "adjustment"
)

// StockMovement is one line of the append-only stock audit trail.
type StockMovement struct {
	ID            string       `json:"id"`
	ProductID     string       `json:"product_id"`
	Type          MovementType `json:"type"`
	Quantity      int          `json:"quantity"`
	Reason        string       `json:"reason"`
	Timestamp     time.Time    `json:"timestamp"`
	UserID        string       `json:"user_id"`
	PreviousStock int          `json:"previous_stock"`
	NewStock      int          `json:"new_stock"`
}
