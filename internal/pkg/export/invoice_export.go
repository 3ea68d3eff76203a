package export

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/RoyceAzure/lab/vendorportal/internal/model"
)

const invoiceDateLayout = "2006-01-02"

// InvoiceText 純文字收據，不動到購物車
func InvoiceText(invoice *model.Invoice) string {
	var b strings.Builder

	b.WriteString("\nINVOICE\n========\n")
	fmt.Fprintf(&b, "Invoice ID: %s\n", invoice.ID)
	fmt.Fprintf(&b, "Date: %s\n\n", invoice.Date.Format(invoiceDateLayout))

	b.WriteString("Customer Information:\n")
	fmt.Fprintf(&b, "Name: %s\n", invoice.Customer.Name)
	fmt.Fprintf(&b, "Email: %s\n", invoice.Customer.Email)
	fmt.Fprintf(&b, "Phone: %s\n", invoice.Customer.Phone)
	fmt.Fprintf(&b, "Address: %s\n", invoice.Customer.Address)
	fmt.Fprintf(&b, "Country: %s\n\n", invoice.Customer.Country)

	b.WriteString("Items:\n")
	for _, line := range invoice.Lines {
		fmt.Fprintf(&b, "%s x %d @ $%s = $%s\n",
			line.Title, line.Quantity, line.UnitPrice.StringFixed(2), line.LineTotal.StringFixed(2))
	}

	fmt.Fprintf(&b, "\nTotal Amount: $%s\n", invoice.TotalAmount.StringFixed(2))
	return b.String()
}

var invoiceHTMLTemplate = template.Must(template.New("invoice").Parse(`<html>
  <head>
    <title>Invoice {{.ID}}</title>
    <style>
      body { font-family: Arial, sans-serif; }
      .header { text-align: center; margin-bottom: 30px; }
      .invoice-title { font-size: 24px; font-weight: bold; }
      .bill-to { text-align: left; margin: 20px 0; }
      .bill-to h3 { margin-bottom: 10px; }
      table { width: 100%; border-collapse: collapse; margin: 20px 0; }
      th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
      th { background-color: #f2f2f2; }
      .text-right { text-align: right; }
      .text-center { text-align: center; }
      .total-section { margin-top: 30px; text-align: right; }
      .total-row { font-weight: bold; }
    </style>
  </head>
  <body>
    <div class="header">
      <div class="invoice-title">INVOICE</div>
      <div>Invoice ID: {{.ID}}</div>
      <div>Date: {{.Date}}</div>
    </div>

    <div class="bill-to">
      <h3>Bill To:</h3>
      <div>{{.Customer.Name}}</div>
      <div>{{.Customer.Email}}</div>
      <div>{{.Customer.Phone}}</div>
      <div>{{.Customer.Address}}</div>
      <div>{{.Customer.Country}}</div>
    </div>

    <table>
      <thead>
        <tr>
          <th>Item</th>
          <th>Quantity</th>
          <th>Unit Price</th>
          <th>Total</th>
        </tr>
      </thead>
      <tbody>
        {{range .Lines}}<tr>
          <td>{{.Title}}</td>
          <td class="text-center">{{.Quantity}}</td>
          <td class="text-right">${{.UnitPrice}}</td>
          <td class="text-right">${{.LineTotal}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <div class="total-section">
      <div class="total-row">Total Amount: ${{.TotalAmount}}</div>
    </div>
  </body>
</html>
`))

type invoiceHTMLLine struct {
	Title     string
	Quantity  int
	UnitPrice string
	LineTotal string
}

type invoiceHTMLData struct {
	ID          string
	Date        string
	Customer    model.Customer
	Lines       []invoiceHTMLLine
	TotalAmount string
}

// InvoiceHTML 自含樣式的單檔HTML文件，與文字版一樣是純格式化
func InvoiceHTML(invoice *model.Invoice) (string, error) {
	data := invoiceHTMLData{
		ID:          invoice.ID,
		Date:        invoice.Date.Format(invoiceDateLayout),
		Customer:    invoice.Customer,
		TotalAmount: invoice.TotalAmount.StringFixed(2),
	}
	for _, line := range invoice.Lines {
		data.Lines = append(data.Lines, invoiceHTMLLine{
			Title:     line.Title,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.StringFixed(2),
			LineTotal: line.LineTotal.StringFixed(2),
		})
	}

	var b strings.Builder
	if err := invoiceHTMLTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
