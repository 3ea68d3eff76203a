package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/vendorportal/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func invoiceFixture() *model.Invoice {
	return &model.Invoice{
		ID:   "INV-1700000000000",
		Date: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		Customer: model.Customer{
			Name:    "Alice",
			Email:   "alice@example.com",
			Phone:   "0912345678",
			Address: "No.1 Main St.",
			Country: "Taiwan",
		},
		Lines: []model.InvoiceLine{
			{Title: "LapTop", Desc: "Core i7, 16GB", UnitPrice: decimal.RequireFromString("1200.00"), Quantity: 2, LineTotal: decimal.RequireFromString("2400.00")},
			{Title: "Head Phone", Desc: "JBL Wireless", UnitPrice: decimal.RequireFromString("99.00"), Quantity: 1, LineTotal: decimal.RequireFromString("99.00")},
		},
		TotalAmount: decimal.RequireFromString("2499.00"),
	}
}

func TestInvoiceText(t *testing.T) {
	text := InvoiceText(invoiceFixture())

	require.True(t, strings.HasPrefix(text, "\nINVOICE\n========\n"))
	require.Contains(t, text, "Invoice ID: INV-1700000000000")
	require.Contains(t, text, "Date: 2026-03-15")
	require.Contains(t, text, "Name: Alice")
	require.Contains(t, text, "LapTop x 2 @ $1200.00 = $2400.00")
	require.Contains(t, text, "Head Phone x 1 @ $99.00 = $99.00")
	require.True(t, strings.HasSuffix(text, "Total Amount: $2499.00\n"))
}

func TestInvoiceHTML(t *testing.T) {
	html, err := InvoiceHTML(invoiceFixture())
	require.NoError(t, err)

	require.Contains(t, html, "<div class=\"invoice-title\">INVOICE</div>")
	require.Contains(t, html, "INV-1700000000000")
	require.Contains(t, html, "Bill To:")
	require.Contains(t, html, "alice@example.com")
	require.Contains(t, html, "LapTop")
	require.Contains(t, html, "2499.00")
}

func TestInvoiceHTMLEscapesCustomerInput(t *testing.T) {
	invoice := invoiceFixture()
	invoice.Customer.Name = `<script>alert("x")</script>`

	html, err := InvoiceHTML(invoice)
	require.NoError(t, err)
	require.NotContains(t, html, "<script>")
}

func TestWriteCSVEscaping(t *testing.T) {
	data, err := WriteCSV([]string{"name", "address"}, [][]string{
		{`Smith, Jane`, `42 "Rose" Lane`},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	// 含逗號與引號的欄位要被引用與跳脫
	require.Equal(t, `"Smith, Jane","42 ""Rose"" Lane"`, lines[1])
}

func TestUsersCSV(t *testing.T) {
	data, err := UsersCSV([]model.User{
		{ID: 1, Name: "Alice", Email: "alice@example.com", Phone: "0912", Address: "Main St", Country: "TW", Status: model.UserStatusActive},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Equal(t, "id,name,email,phone,address,country,status", lines[0])
	require.Equal(t, "1,Alice,alice@example.com,0912,Main St,TW,Active", lines[1])
}

func TestAdminUsersCSV(t *testing.T) {
	data, err := AdminUsersCSV([]model.AdminUser{
		{ID: 1, Name: "Admin User", Email: "admin@example.com", Role: model.AdminRoleSuperAdmin, LastLogin: "Never", Status: model.UserStatusActive},
	})
	require.NoError(t, err)

	require.Contains(t, string(data), "id,name,email,role,lastLogin,status")
	require.Contains(t, string(data), "Super Admin")
}

func TestProductsXLSX(t *testing.T) {
	products := []model.Product{
		{ID: 1, Title: "LapTop", Price: decimal.RequireFromString("1200.00"), Desc: "Core i7, 16GB", Stock: 5},
		{ID: 2, Title: "USB Hub", Price: decimal.RequireFromString("1800.00"), Desc: "8 in 1 USB-C Hub", Stock: 0},
	}

	var buf bytes.Buffer
	require.NoError(t, ProductsXLSX(products, &buf))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.NotEmpty(t, file.Sheets)

	sheet := file.Sheets[0]
	// 表頭加兩筆資料
	require.Len(t, sheet.Rows, 3)
	require.Equal(t, "LapTop", sheet.Rows[1].Cells[1].String())
}
