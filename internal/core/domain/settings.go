package domain

import "time"

// Settings is the single-row shop profile shown on the storefront.
type Settings struct {
	ShopName  string
	Tagline   string
	Email     string
	Phone     string
	Address   string
	UpdatedAt time.Time
}
