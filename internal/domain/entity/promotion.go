package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Promotion é uma promoção exibida no carrossel do cardápio digital.
type Promotion struct {
	ID          string
	Title       string
	Description string
	ImageURL    string
	Price       decimal.Decimal
	StartsAt    time.Time
	EndsAt      time.Time
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CurrentlyActive informa se a promoção vale no instante dado.
func (p Promotion) CurrentlyActive(now time.Time) bool {
	return p.Active && !now.Before(p.StartsAt) && now.Before(p.EndsAt)
}
