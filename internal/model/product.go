package model

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ID    int             `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
	Desc  string          `json:"desc"`
	Image string          `json:"image"`
	Stock int             `json:"quantity"`
}

// DisplayPrice 前端顯示用 "$1200.00"
func (p Product) DisplayPrice() string {
	return "$" + p.Price.StringFixed(2)
}
