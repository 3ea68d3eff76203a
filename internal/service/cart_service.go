package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/RoyceAzure/lab/vendorportal/internal/infra/repository/memstore"
	"github.com/RoyceAzure/lab/vendorportal/internal/model"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrEmptyCart         = errors.New("cart is empty")
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// InvoiceLineEdit 結帳頁上可編輯的單價/數量，蓋過購物車原值
type InvoiceLineEdit struct {
	ProductID int
	UnitPrice decimal.Decimal
	Quantity  int
}

type ICartService interface {
	// AddToCart 同商品合併數量，不會產生重複line
	// 數量上限為剩餘庫存(庫存減去已在購物車內的數量)
	// 回傳notice區分 "added" 與 "quantity updated"
	AddToCart(ctx context.Context, productID int, quantity int) (*model.Cart, string, error)
	// RemoveFromCart 不存在的商品為no-op，不是錯誤
	RemoveFromCart(ctx context.Context, productID int) *model.Cart
	// UpdateQuantity quantity <= 0 視同移除，其餘直接覆寫數量
	UpdateQuantity(ctx context.Context, productID int, quantity int) *model.Cart
	GetCart(ctx context.Context) *model.Cart
	TotalItemCount(ctx context.Context) int
	TotalPrice(ctx context.Context) decimal.Decimal
	// TotalPriceDisplay 固定2位小數，四捨五入(round half away from zero)
	TotalPriceDisplay(ctx context.Context) string
	// GenerateInvoice 驗證失敗回傳field error map且不改變任何狀態
	// 成功回傳目前購物車的值快照，之後購物車異動不影響該invoice
	GenerateInvoice(ctx context.Context, customer model.Customer, edits []InvoiceLineEdit) (*model.Invoice, map[string]string, error)
	// ConfirmCheckout 不重新驗證invoice，清空購物車
	ConfirmCheckout(ctx context.Context, invoice *model.Invoice) error
}

// CartService 持有唯一一份購物車，所有異動都經過這裡
type CartService struct {
	mu          sync.Mutex
	lines       []model.CartLine
	productRepo memstore.IProductRepository

	lastInvoiceID int64
}

func NewCartService(productRepo memstore.IProductRepository) *CartService {
	return &CartService{productRepo: productRepo}
}

func (s *CartService) snapshot() *model.Cart {
	lines := make([]model.CartLine, len(s.lines))
	copy(lines, s.lines)
	return &model.Cart{Lines: lines}
}

func (s *CartService) AddToCart(ctx context.Context, productID int, quantity int) (*model.Cart, string, error) {
	if quantity <= 0 {
		return nil, "", ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, "", err
	}
	if product == nil {
		return nil, "", ErrProductNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inCart := 0
	idx := -1
	for i, line := range s.lines {
		if line.ProductID == productID {
			inCart = line.Quantity
			idx = i
			break
		}
	}

	//累計檢查：delta不能超過剩餘庫存
	if quantity > product.Stock-inCart {
		return nil, "", ErrInsufficientStock
	}

	if idx >= 0 {
		s.lines[idx].Quantity += quantity
		return s.snapshot(), fmt.Sprintf("%s quantity updated in cart.", product.Title), nil
	}

	s.lines = append(s.lines, model.CartLine{
		ProductID: product.ID,
		Title:     product.Title,
		Desc:      product.Desc,
		UnitPrice: product.Price,
		Quantity:  quantity,
	})
	return s.snapshot(), fmt.Sprintf("%s added to cart.", product.Title), nil
}

func (s *CartService) RemoveFromCart(ctx context.Context, productID int) *model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, line := range s.lines {
		if line.ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}
	return s.snapshot()
}

func (s *CartService) UpdateQuantity(ctx context.Context, productID int, quantity int) *model.Cart {
	if quantity <= 0 {
		return s.RemoveFromCart(ctx, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, line := range s.lines {
		if line.ProductID == productID {
			s.lines[i].Quantity = quantity
			break
		}
	}
	return s.snapshot()
}

func (s *CartService) GetCart(ctx context.Context) *model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *CartService) TotalItemCount(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

func (s *CartService) TotalPrice(ctx context.Context) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.NewFromInt(0)
	for _, line := range s.lines {
		total = total.Add(line.LineTotal())
	}
	return total
}

func (s *CartService) TotalPriceDisplay(ctx context.Context) string {
	return s.TotalPrice(ctx).StringFixed(2)
}

func validateCustomer(customer model.Customer) map[string]string {
	fieldErrors := map[string]string{}

	if customer.Name == "" {
		fieldErrors["name"] = "Name is required"
	}
	if customer.Email == "" {
		fieldErrors["email"] = "Email is required"
	} else if !emailPattern.MatchString(customer.Email) {
		fieldErrors["email"] = "Email is invalid"
	}
	if customer.Phone == "" {
		fieldErrors["phone"] = "Phone is required"
	}
	if customer.Address == "" {
		fieldErrors["address"] = "Address is required"
	}
	if customer.Country == "" {
		fieldErrors["country"] = "Country is required"
	}
	return fieldErrors
}

// nextInvoiceID 以毫秒時間戳為基底，同一毫秒內遞增保證唯一
func (s *CartService) nextInvoiceID() string {
	now := time.Now().UnixMilli()
	if now <= s.lastInvoiceID {
		now = s.lastInvoiceID + 1
	}
	s.lastInvoiceID = now
	return fmt.Sprintf("INV-%d", now)
}

func (s *CartService) GenerateInvoice(ctx context.Context, customer model.Customer, edits []InvoiceLineEdit) (*model.Invoice, map[string]string, error) {
	if fieldErrors := validateCustomer(customer); len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.lines) == 0 {
		return nil, nil, ErrEmptyCart
	}

	editByID := map[int]InvoiceLineEdit{}
	for _, edit := range edits {
		if edit.Quantity < 0 || edit.UnitPrice.IsNegative() {
			continue
		}
		editByID[edit.ProductID] = edit
	}

	total := decimal.NewFromInt(0)
	invoiceLines := make([]model.InvoiceLine, 0, len(s.lines))
	for _, line := range s.lines {
		price := line.UnitPrice
		quantity := line.Quantity
		if edit, ok := editByID[line.ProductID]; ok {
			price = edit.UnitPrice
			quantity = edit.Quantity
		}
		lineTotal := price.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
		invoiceLines = append(invoiceLines, model.InvoiceLine{
			Title:     line.Title,
			Desc:      line.Desc,
			UnitPrice: price,
			Quantity:  quantity,
			LineTotal: lineTotal,
		})
		total = total.Add(lineTotal)
	}

	return &model.Invoice{
		ID:          s.nextInvoiceID(),
		Date:        time.Now(),
		Customer:    customer,
		Lines:       invoiceLines,
		TotalAmount: total.Round(2),
	}, nil, nil
}

func (s *CartService) ConfirmCheckout(ctx context.Context, invoice *model.Invoice) error {
	if invoice == nil {
		return errors.New("invoice is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	return nil
}

var _ ICartService = (*CartService)(nil)
