package domain

import (
	"time"

	"github.com/mobileking0827/VossShop/internal/money"
)

type Product struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       money.Money `json:"price_cents"`
	CreatedAt   time.Time   `json:"created_at"`
}
