package models

import "time"

type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
	CustomerVIP      CustomerStatus = "vip"
)

type CustomerSegment string

const (
	SegmentNew     CustomerSegment = "new"
	SegmentRegular CustomerSegment = "regular"
	SegmentLoyal   CustomerSegment = "loyal"
	SegmentAtRisk  CustomerSegment = "at_risk"
)

// Customer is derived from the sales ledger, keyed by email.
type Customer struct {
	ID               string          `json:"id"`
	Email            string          `json:"email"`
	Name             string          `json:"name,omitempty"`
	Phone            string          `json:"phone,omitempty"`
	Address          string          `json:"address,omitempty"`
	TotalPurchases   int             `json:"total_purchases"`
	TotalSpent       float64         `json:"total_spent"`
	LastPurchase     time.Time       `json:"last_purchase"`
	RegistrationDate time.Time       `json:"registration_date"`
	Status           CustomerStatus  `json:"status"`
	Segment          CustomerSegment `json:"segment"`
}
