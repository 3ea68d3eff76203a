package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer 只存在於結帳流程，不落地
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Country string `json:"country"`
}

type InvoiceLine struct {
	Title     string          `json:"title"`
	Desc      string          `json:"desc"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Invoice 產生後即為值快照，後續購物車異動不會影響已產生的invoice
type Invoice struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Customer    Customer        `json:"customer"`
	Lines       []InvoiceLine   `json:"lines"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}
