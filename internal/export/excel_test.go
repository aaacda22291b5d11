package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"invensight/internal/export"
	"invensight/internal/report"
)

func TestWorkbook(t *testing.T) {
	f, err := export.Workbook(
		[]report.SupplierRollup{
			{Name: "Acme", Quantity: 5, Unit: 10, Price: 50},
			{Name: "Bolt Co", Quantity: 1, Unit: 100, Price: 100},
		},
		[]report.CategoryRollup{
			{Name: "Fasteners", Quantity: 6, Price: 150},
		},
	)
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, f.Write(&buf))

	// Round-trip through the reader to confirm the file is well formed.
	reopened, err := excelize.OpenReader(&buf)
	assert.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	assert.ElementsMatch(t, []string{"Suppliers", "Categories"}, reopened.GetSheetList())

	rows, err := reopened.GetRows("Suppliers")
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Quantity", "Unit", "Price"}, rows[0])
	assert.Equal(t, "Acme", rows[1][0])
	assert.Equal(t, "Bolt Co", rows[2][0])

	catRows, err := reopened.GetRows("Categories")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Category name", "Quantity", "Price"}, catRows[0])
}

func TestWorkbook_EmptyRollups(t *testing.T) {
	f, err := export.Workbook(nil, nil)
	assert.NoError(t, err)

	rows, err := f.GetRows("Suppliers")
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "inventory_report", export.SanitizeFilename("inventory report"))
	assert.Equal(t, "a_b_c", export.SanitizeFilename("a/b\\c"))
	assert.Equal(t, "report", export.SanitizeFilename("  report!!  "))
	assert.Equal(t, "x_y", export.SanitizeFilename("x___y"))

	long := make([]byte, 150)
	for i := range long {
		long[i] = 'a'
	}
	assert.Len(t, export.SanitizeFilename(string(long)), 100)
}

func TestBuildFilename(t *testing.T) {
	name := export.BuildFilename("inventory report")
	assert.Contains(t, name, "inventory_report_")
	assert.Contains(t, name, time.Now().Format("2006-01-02"))
	assert.Contains(t, name, ".xlsx")
}
