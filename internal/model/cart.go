package model

import (
	"github.com/shopspring/decimal"
)

// CartLine 加入購物車時複製商品顯示欄位，之後商品異動不影響已存在的line
type CartLine struct {
	ProductID int             `json:"product_id"`
	Title     string          `json:"title"`
	Desc      string          `json:"desc"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Cart struct {
	Lines []CartLine `json:"lines"`
}
