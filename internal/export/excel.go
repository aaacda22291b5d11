// Package export renders report rollups as an Excel workbook for download.
package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"invensight/internal/report"
)

var supplierColumns = []interface{}{"Name", "Quantity", "Unit", "Price"}

var categoryColumns = []interface{}{"Category name", "Quantity", "Price"}

// Workbook builds an xlsx file with one sheet per rollup dimension. Rows
// are written in the order given; callers pass sorted rollups so the sheet
// matches the paginated listings.
func Workbook(suppliers []report.SupplierRollup, categories []report.CategoryRollup) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", "Suppliers"); err != nil {
		return nil, fmt.Errorf("export: rename sheet: %w", err)
	}
	if _, err := f.NewSheet("Categories"); err != nil {
		return nil, fmt.Errorf("export: create sheet: %w", err)
	}

	if err := f.SetSheetRow("Suppliers", "A1", &supplierColumns); err != nil {
		return nil, fmt.Errorf("export: supplier header: %w", err)
	}
	for i, row := range suppliers {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{row.Name, row.Quantity, row.Unit, row.Price}
		if err := f.SetSheetRow("Suppliers", cell, &values); err != nil {
			return nil, fmt.Errorf("export: supplier row %d: %w", i, err)
		}
	}

	if err := f.SetSheetRow("Categories", "A1", &categoryColumns); err != nil {
		return nil, fmt.Errorf("export: category header: %w", err)
	}
	for i, row := range categories {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{row.Name, row.Quantity, row.Price}
		if err := f.SetSheetRow("Categories", cell, &values); err != nil {
			return nil, fmt.Errorf("export: category row %d: %w", i, err)
		}
	}

	return f, nil
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition. Replaces
// non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition
// header. Format: {sanitized_name}_{YYYY-MM-DD}.xlsx
func BuildFilename(name string) string {
	return fmt.Sprintf("%s_%s.xlsx", SanitizeFilename(name), time.Now().Format("2006-01-02"))
}
