package service

import (
	"context"
	"strings"
	"testing"

	"github.com/RoyceAzure/lab/vendorportal/internal/infra/repository/memstore"
	"github.com/RoyceAzure/lab/vendorportal/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CartServiceTestSuite struct {
	suite.Suite
	ctx  context.Context
	cart *CartService
}

func (s *CartServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.cart = NewCartService(memstore.NewSeededProductRepo())
}

func TestCartServiceSuite(t *testing.T) {
	suite.Run(t, new(CartServiceTestSuite))
}

func validCustomer() model.Customer {
	return model.Customer{
		Name:    "Alice",
		Email:   "alice@example.com",
		Phone:   "0912345678",
		Address: "No.1 Main St.",
		Country: "Taiwan",
	}
}

func (s *CartServiceTestSuite) TestAddToCartMergesSameProduct() {
	_, notice, err := s.cart.AddToCart(s.ctx, 1, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "LapTop added to cart.", notice)

	cart, notice, err := s.cart.AddToCart(s.ctx, 1, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "LapTop quantity updated in cart.", notice)

	// 同商品只會有一條line，數量合併
	require.Len(s.T(), cart.Lines, 1)
	require.Equal(s.T(), 3, cart.Lines[0].Quantity)
	require.Equal(s.T(), 3, s.cart.TotalItemCount(s.ctx))
}

func (s *CartServiceTestSuite) TestAddToCartRejectsBadInput() {
	_, _, err := s.cart.AddToCart(s.ctx, 1, 0)
	require.ErrorIs(s.T(), err, ErrInvalidQuantity)

	_, _, err = s.cart.AddToCart(s.ctx, 1, -3)
	require.ErrorIs(s.T(), err, ErrInvalidQuantity)

	_, _, err = s.cart.AddToCart(s.ctx, 999, 1)
	require.ErrorIs(s.T(), err, ErrProductNotFound)
}

func (s *CartServiceTestSuite) TestAddToCartStockIsCumulative() {
	// LapTop 庫存5
	_, _, err := s.cart.AddToCart(s.ctx, 1, 3)
	require.NoError(s.T(), err)

	// 已有3個在購物車，再加3超過庫存
	_, _, err = s.cart.AddToCart(s.ctx, 1, 3)
	require.ErrorIs(s.T(), err, ErrInsufficientStock)

	// 剛好補到庫存上限可以
	_, _, err = s.cart.AddToCart(s.ctx, 1, 2)
	require.NoError(s.T(), err)

	// 庫存0的商品完全加不進去
	_, _, err = s.cart.AddToCart(s.ctx, 2, 1)
	require.ErrorIs(s.T(), err, ErrInsufficientStock)
}

func (s *CartServiceTestSuite) TestUpdateQuantityZeroRemovesLine() {
	_, _, err := s.cart.AddToCart(s.ctx, 1, 2)
	require.NoError(s.T(), err)

	cart := s.cart.UpdateQuantity(s.ctx, 1, 0)
	require.Empty(s.T(), cart.Lines)

	_, _, err = s.cart.AddToCart(s.ctx, 3, 2)
	require.NoError(s.T(), err)
	cart = s.cart.UpdateQuantity(s.ctx, 3, -1)
	require.Empty(s.T(), cart.Lines)
}

func (s *CartServiceTestSuite) TestRemoveAbsentProductIsNoop() {
	_, _, err := s.cart.AddToCart(s.ctx, 1, 1)
	require.NoError(s.T(), err)

	cart := s.cart.RemoveFromCart(s.ctx, 999)
	require.Len(s.T(), cart.Lines, 1)
}

func (s *CartServiceTestSuite) TestTotalPriceTwoDecimals() {
	// Head Phone 99.00 x1 + Bluetooth Speaker 79.99 x2 = 258.98
	_, _, err := s.cart.AddToCart(s.ctx, 3, 1)
	require.NoError(s.T(), err)
	_, _, err = s.cart.AddToCart(s.ctx, 5, 2)
	require.NoError(s.T(), err)

	require.Equal(s.T(), "258.98", s.cart.TotalPriceDisplay(s.ctx))
	require.Equal(s.T(), 3, s.cart.TotalItemCount(s.ctx))
}

func (s *CartServiceTestSuite) TestGetCartReturnsSnapshot() {
	_, _, err := s.cart.AddToCart(s.ctx, 1, 1)
	require.NoError(s.T(), err)

	snapshot := s.cart.GetCart(s.ctx)
	snapshot.Lines[0].Quantity = 99

	// 外部改動snapshot不影響內部狀態
	require.Equal(s.T(), 1, s.cart.GetCart(s.ctx).Lines[0].Quantity)
}

func (s *CartServiceTestSuite) TestGenerateInvoiceValidatesCustomer() {
	_, _, err := s.cart.AddToCart(s.ctx, 1, 1)
	require.NoError(s.T(), err)

	invoice, fieldErrors, err := s.cart.GenerateInvoice(s.ctx, model.Customer{}, nil)
	require.NoError(s.T(), err)
	require.Nil(s.T(), invoice)
	require.Len(s.T(), fieldErrors, 5)
	require.Equal(s.T(), "Name is required", fieldErrors["name"])
	require.Equal(s.T(), "Email is required", fieldErrors["email"])

	customer := validCustomer()
	customer.Email = "not-an-email"
	invoice, fieldErrors, err = s.cart.GenerateInvoice(s.ctx, customer, nil)
	require.NoError(s.T(), err)
	require.Nil(s.T(), invoice)
	require.Equal(s.T(), "Email is invalid", fieldErrors["email"])

	// 驗證失敗不影響購物車
	require.Len(s.T(), s.cart.GetCart(s.ctx).Lines, 1)
}

func (s *CartServiceTestSuite) TestGenerateInvoiceEmptyCart() {
	_, _, err := s.cart.GenerateInvoice(s.ctx, validCustomer(), nil)
	require.ErrorIs(s.T(), err, ErrEmptyCart)
}

func (s *CartServiceTestSuite) TestGenerateInvoiceTotals() {
	// LapTop 1200.00 x2 + Head Phone 99.00 x1 = 2499.00
	_, _, err := s.cart.AddToCart(s.ctx, 1, 2)
	require.NoError(s.T(), err)
	_, _, err = s.cart.AddToCart(s.ctx, 3, 1)
	require.NoError(s.T(), err)

	invoice, fieldErrors, err := s.cart.GenerateInvoice(s.ctx, validCustomer(), nil)
	require.NoError(s.T(), err)
	require.Empty(s.T(), fieldErrors)
	require.Len(s.T(), invoice.Lines, 2)
	require.Equal(s.T(), "2400.00", invoice.Lines[0].LineTotal.StringFixed(2))
	require.Equal(s.T(), "2499.00", invoice.TotalAmount.StringFixed(2))
	require.True(s.T(), strings.HasPrefix(invoice.ID, "INV-"))
}

func (s *CartServiceTestSuite) TestGenerateInvoiceAppliesEdits() {
	_, _, err := s.cart.AddToCart(s.ctx, 1, 2)
	require.NoError(s.T(), err)

	edits := []InvoiceLineEdit{
		{ProductID: 1, UnitPrice: decimal.RequireFromString("1000.00"), Quantity: 3},
	}
	invoice, _, err := s.cart.GenerateInvoice(s.ctx, validCustomer(), edits)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, invoice.Lines[0].Quantity)
	require.Equal(s.T(), "3000.00", invoice.TotalAmount.StringFixed(2))

	// 編輯只影響invoice，購物車原值不變
	require.Equal(s.T(), 2, s.cart.GetCart(s.ctx).Lines[0].Quantity)
}

func (s *CartServiceTestSuite) TestGenerateInvoiceIgnoresNegativeEdits() {
	_, _, err := s.cart.AddToCart(s.ctx, 1, 2)
	require.NoError(s.T(), err)

	edits := []InvoiceLineEdit{
		{ProductID: 1, UnitPrice: decimal.RequireFromString("-5.00"), Quantity: 2},
	}
	invoice, _, err := s.cart.GenerateInvoice(s.ctx, validCustomer(), edits)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "2400.00", invoice.TotalAmount.StringFixed(2))
}

func (s *CartServiceTestSuite) TestInvoiceIsValueSnapshot() {
	_, _, err := s.cart.AddToCart(s.ctx, 1, 2)
	require.NoError(s.T(), err)

	invoice, _, err := s.cart.GenerateInvoice(s.ctx, validCustomer(), nil)
	require.NoError(s.T(), err)

	// invoice產生後再改購物車，invoice不受影響
	s.cart.UpdateQuantity(s.ctx, 1, 5)
	require.Equal(s.T(), 2, invoice.Lines[0].Quantity)
	require.Equal(s.T(), "2400.00", invoice.TotalAmount.StringFixed(2))
}

func (s *CartServiceTestSuite) TestInvoiceIDsAreUnique() {
	_, _, err := s.cart.AddToCart(s.ctx, 1, 1)
	require.NoError(s.T(), err)

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		invoice, _, err := s.cart.GenerateInvoice(s.ctx, validCustomer(), nil)
		require.NoError(s.T(), err)
		require.False(s.T(), seen[invoice.ID], "invoice id %s 重複", invoice.ID)
		seen[invoice.ID] = true
	}
}

func (s *CartServiceTestSuite) TestConfirmCheckoutClearsCart() {
	_, _, err := s.cart.AddToCart(s.ctx, 1, 2)
	require.NoError(s.T(), err)

	invoice, _, err := s.cart.GenerateInvoice(s.ctx, validCustomer(), nil)
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.cart.ConfirmCheckout(s.ctx, invoice))
	require.Empty(s.T(), s.cart.GetCart(s.ctx).Lines)
	require.Equal(s.T(), 0, s.cart.TotalItemCount(s.ctx))

	// 結帳後invoice仍然完整
	require.Len(s.T(), invoice.Lines, 1)
}

func (s *CartServiceTestSuite) TestConfirmCheckoutRequiresInvoice() {
	require.Error(s.T(), s.cart.ConfirmCheckout(s.ctx, nil))
}
