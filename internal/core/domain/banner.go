package domain

import "time"

type Banner struct {
	ID          string
	Title       string
	ImageURL    string
	ImageHandle string
	CreatedAt   time.Time
}
