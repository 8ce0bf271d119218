package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type Category struct {
	ID   uint64
	Name string
}

type Product struct {
	ID          string
	CategoryID  uint64
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	// ImageHandle is the media host's deletion handle for ImageURL.
	ImageHandle string
	CreatedAt   time.Time
	Category    *Category
}
