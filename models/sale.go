package models

import "time"

type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusCancelled SaleStatus = "cancelled"
)

// Sale is an immutable snapshot of a cart at checkout time.
type Sale struct {
	ID            string     `json:"id"`
	Date          time.Time  `json:"date"`
	Items         []CartItem `json:"items"`
	Total         float64    `json:"total"`
	CustomerEmail string     `json:"customer_email,omitempty"`
	Status        SaleStatus `json:"status"`
}
