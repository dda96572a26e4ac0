package catalog

import (
	"fmt"
	"io"
	"strings"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gocarina/gocsv"
	"github.com/talkincode/storefront/internal/domain"
)

const (
	statusLow = "low_stock"
	statusOK  = "in_stock"
)

type exportRow struct {
	ID         int64   `csv:"id"`
	TitleFr    string  `csv:"title_fr"`
	TitleAr    string  `csv:"title_ar"`
	Category   string  `csv:"category"`
	Price      float64 `csv:"price"`
	OldPrice   string  `csv:"old_price"`
	Stock      int     `csv:"stock"`
	StockAlert int     `csv:"stock_alert"`
	Status     string  `csv:"status"`
	Features   string  `csv:"features"`
	Packaging  string  `csv:"packaging"`
	Warranty   string  `csv:"warranty"`
	SizeGuide  string  `csv:"size_guide"`
}

var xlsxHeader = []string{"ID", "Produit", "المنتج", "Catégorie", "Prix", "Stock", "Seuil", "État"}

func toExportRows(products []domain.Product) []*exportRow {
	rows := make([]*exportRow, 0, len(products))
	for _, p := range products {
		row := &exportRow{
			ID:         p.ID,
			TitleFr:    p.TitleFr,
			TitleAr:    p.TitleAr,
			Category:   p.Category,
			Price:      p.Price,
			Stock:      p.Stock,
			StockAlert: p.StockAlert,
			Status:     statusOK,
			Features:   strings.Join(p.Features, " | "),
			Packaging:  p.Packaging,
			Warranty:   p.Warranty,
			SizeGuide:  p.SizeGuide,
		}
		if p.OldPrice != nil {
			row.OldPrice = fmt.Sprint(*p.OldPrice)
		}
		if p.LowStock() {
			row.Status = statusLow
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteCSV writes the catalog as CSV with a header line.
func (c *Catalog) WriteCSV(w io.Writer) error {
	return EncodeCSV(w, c.List())
}

// WriteXLSX writes the admin stock table as a spreadsheet.
func (c *Catalog) WriteXLSX(w io.Writer) error {
	return EncodeXLSX(w, c.List())
}

// EncodeCSV writes products as CSV with a header line.
func EncodeCSV(w io.Writer, products []domain.Product) error {
	return gocsv.Marshal(toExportRows(products), w)
}

// EncodeXLSX writes products as a one-sheet workbook.
func EncodeXLSX(w io.Writer, products []domain.Product) error {
	const sheet = "Sheet1"
	xlsx := excelize.NewFile()
	for i, h := range xlsxHeader {
		xlsx.SetCellValue(sheet, cellName(i, 1), h)
	}
	for r, row := range toExportRows(products) {
		line := r + 2
		values := []interface{}{
			fmt.Sprint(row.ID), row.TitleFr, row.TitleAr, row.Category,
			row.Price, row.Stock, row.StockAlert, row.Status,
		}
		for i, v := range values {
			xlsx.SetCellValue(sheet, cellName(i, line), v)
		}
	}
	return xlsx.Write(w)
}

// cellName converts a zero-based column and one-based row into "A1" form.
// The export never exceeds 26 columns.
func cellName(col, row int) string {
	return fmt.Sprintf("%c%d", 'A'+col, row)
}
