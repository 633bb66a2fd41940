package model

import "time"

// Promotion is a discount window attached to one flight.  It is
// active for a reference date d when StartDate < d <= EndDate.
// DiscountRate is the fraction of the fare discounted, e.g. 0.25.
type Promotion struct {
	ID           uint64    `json:"promotion_id"`  // promotions.promotion_id
	FlightID     uint64    `json:"flight_id"`     // promotions.flight_id
	Title        string    `json:"title"`         // promotions.title
	Description  string    `json:"description"`   // promotions.description
	DiscountRate float64   `json:"discount_rate"` // promotions.discount_rate
	StartDate    time.Time `json:"start_date"`    // promotions.start_date
	EndDate      time.Time `json:"end_date"`      // promotions.end_date
}
