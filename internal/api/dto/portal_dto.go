package dto

import (
	"strings"
	"time"

	"github.com/RoyceAzure/lab/vendorportal/internal/model"
	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Price    string `json:"price"`
	Desc     string `json:"desc"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// ParsePrice 接受 "1200.00" 或 "$1200.00"
func ParsePrice(price string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimPrefix(strings.TrimSpace(price), "$"))
}

func ProductToDTO(p model.Product) ProductDTO {
	return ProductDTO{
		ID:       p.ID,
		Title:    p.Title,
		Price:    p.DisplayPrice(),
		Desc:     p.Desc,
		Image:    p.Image,
		Quantity: p.Stock,
	}
}

type ProductInputDTO struct {
	Title    string `json:"title"`
	Price    string `json:"price"`
	Desc     string `json:"desc"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

type CartLineDTO struct {
	ProductID int    `json:"product_id"`
	Title     string `json:"title"`
	Desc      string `json:"desc"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type CartDTO struct {
	Lines      []CartLineDTO `json:"lines"`
	ItemCount  int           `json:"item_count"`
	TotalPrice string        `json:"total_price"`
	Notice     string        `json:"notice,omitempty"`
}

func CartToDTO(cart *model.Cart, notice string) CartDTO {
	dto := CartDTO{Lines: []CartLineDTO{}, Notice: notice}
	total := decimal.NewFromInt(0)
	for _, line := range cart.Lines {
		lineTotal := line.LineTotal()
		dto.Lines = append(dto.Lines, CartLineDTO{
			ProductID: line.ProductID,
			Title:     line.Title,
			Desc:      line.Desc,
			UnitPrice: line.UnitPrice.StringFixed(2),
			Quantity:  line.Quantity,
			LineTotal: lineTotal.StringFixed(2),
		})
		dto.ItemCount += line.Quantity
		total = total.Add(lineTotal)
	}
	dto.TotalPrice = total.StringFixed(2)
	return dto
}

type AddToCartDTO struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type UpdateQuantityDTO struct {
	Quantity int `json:"quantity"`
}

type CustomerDTO struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Country string `json:"country"`
}

type InvoiceLineEditDTO struct {
	ProductID int    `json:"product_id"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

type GenerateInvoiceDTO struct {
	Customer CustomerDTO          `json:"customer"`
	Edits    []InvoiceLineEditDTO `json:"edits"`
}

type InvoiceLineDTO struct {
	Title     string `json:"title"`
	Desc      string `json:"desc"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type InvoiceDTO struct {
	ID          string           `json:"id"`
	Date        string           `json:"date"`
	Customer    CustomerDTO      `json:"customer"`
	Lines       []InvoiceLineDTO `json:"lines"`
	TotalAmount string           `json:"total_amount"`
}

func InvoiceToDTO(invoice *model.Invoice) InvoiceDTO {
	dto := InvoiceDTO{
		ID:   invoice.ID,
		Date: invoice.Date.Format("2006-01-02"),
		Customer: CustomerDTO{
			Name:    invoice.Customer.Name,
			Email:   invoice.Customer.Email,
			Phone:   invoice.Customer.Phone,
			Address: invoice.Customer.Address,
			Country: invoice.Customer.Country,
		},
		TotalAmount: invoice.TotalAmount.StringFixed(2),
	}
	for _, line := range invoice.Lines {
		dto.Lines = append(dto.Lines, InvoiceLineDTO{
			Title:     line.Title,
			Desc:      line.Desc,
			UnitPrice: line.UnitPrice.StringFixed(2),
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal.StringFixed(2),
		})
	}
	return dto
}

// DTOToInvoice 把客戶端回傳的invoice快照還原成model，金額欄位不合法即回錯
func DTOToInvoice(d InvoiceDTO) (*model.Invoice, error) {
	date, err := time.Parse("2006-01-02", d.Date)
	if err != nil {
		return nil, err
	}
	total, err := ParsePrice(d.TotalAmount)
	if err != nil {
		return nil, err
	}

	invoice := &model.Invoice{
		ID:   d.ID,
		Date: date,
		Customer: model.Customer{
			Name:    d.Customer.Name,
			Email:   d.Customer.Email,
			Phone:   d.Customer.Phone,
			Address: d.Customer.Address,
			Country: d.Customer.Country,
		},
		TotalAmount: total,
	}
	for _, line := range d.Lines {
		unitPrice, err := ParsePrice(line.UnitPrice)
		if err != nil {
			return nil, err
		}
		lineTotal, err := ParsePrice(line.LineTotal)
		if err != nil {
			return nil, err
		}
		invoice.Lines = append(invoice.Lines, model.InvoiceLine{
			Title:     line.Title,
			Desc:      line.Desc,
			UnitPrice: unitPrice,
			Quantity:  line.Quantity,
			LineTotal: lineTotal,
		})
	}
	return invoice, nil
}

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupDTO struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type TokenInfo struct {
	Value     string `json:"value"`
	ExpiresIn int    `json:"expires_in"`
}

type UserSessionDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	AccessToken TokenInfo      `json:"access_token"`
	User        UserSessionDTO `json:"user"`
}

type ThemeDTO struct {
	Theme string `json:"theme"`
}

type AdminUserInputDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type ListMeta struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}
