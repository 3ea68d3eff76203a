package export

import (
	"io"

	"github.com/RoyceAzure/lab/vendorportal/internal/model"
	"github.com/tealeg/xlsx"
)

// ProductsXLSX 商品目錄匯出成xlsx，直接寫進w
func ProductsXLSX(products []model.Product, w io.Writer) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return err
	}

	headers := []string{"ID", "Title", "Price", "Description", "Image", "Stock"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Title)
		row.AddCell().SetValue(p.Price.StringFixed(2))
		row.AddCell().SetValue(p.Desc)
		row.AddCell().SetValue(p.Image)
		row.AddCell().SetValue(p.Stock)
	}

	return file.Write(w)
}
