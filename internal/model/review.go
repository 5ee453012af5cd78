package model

import "time"

// Review is a single user review of an item.
type Review struct {
	ID       string
	ItemID   string
	UserID   string
	Username string
	Rating   float64
	Comment  string
	Date     time.Time
}
