package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"wardrobe/m/domain"
)

const (
	ItemsSheet = "Items"
	WearsSheet = "Wears"

	// ContentType is the MIME type of an .xlsx workbook.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	itemHeader = []interface{}{"unique_id", "item", "total_wears", "cost_per_wear", "wears_per_month", "date_acquired", "cost", "source", "category"}
	wearHeader = []interface{}{"unique_id", "month", "wears", "item", "source", "category"}
)

// Workbook builds a spreadsheet with one sheet per endpoint. Column names
// match the JSON field names. The caller closes the returned file.
func Workbook(items []domain.Item, wears []domain.Wear) (*excelize.File, error) {
	f := excelize.NewFile()

	first := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(first, ItemsSheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(WearsSheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("add sheet: %w", err)
	}

	itemRows := make([][]interface{}, 0, len(items))
	for _, it := range items {
		itemRows = append(itemRows, []interface{}{
			cell(it.UniqueID),
			cell(it.Item),
			cell(it.TotalWears),
			cell(it.CostPerWear),
			cell(it.WearsPerMonth),
			cell(it.DateAcquired),
			cell(it.Cost),
			cell(it.Source),
			cell(it.Category),
		})
	}
	if err := writeSheet(f, ItemsSheet, itemHeader, itemRows); err != nil {
		_ = f.Close()
		return nil, err
	}

	wearRows := make([][]interface{}, 0, len(wears))
	for _, w := range wears {
		wearRows = append(wearRows, []interface{}{
			w.UniqueID,
			cell(w.Month),
			cell(w.Wears),
			cell(w.Item),
			cell(w.Source),
			cell(w.Category),
		})
	}
	if err := writeSheet(f, WearsSheet, wearHeader, wearRows); err != nil {
		_ = f.Close()
		return nil, err
	}

	return f, nil
}

func writeSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("%s header: %w", sheet, err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("%s cell: %w", sheet, err)
		}
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

// cell unwraps a nullable column. NULL becomes an empty cell.
func cell[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
