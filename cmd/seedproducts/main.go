// Command seedproducts converts an inventory spreadsheet export into a SQL
// seed file for the products table. The first sheet is read; the first row
// must be a header row.
// Usage: go run ./cmd/seedproducts <inventory.xlsx>
// Output: db/seeds/products.sql
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const batchSize = 500

// Expected header columns, in order. Extra trailing columns are ignored.
var expectedColumns = []string{
	"id", "product_name", "category", "quantity", "unit_price",
	"total_price", "date_ordered", "supplier", "customer_name",
	"customer_email", "about",
}

type productRow struct {
	id            string // empty = NULL
	productName   string
	category      string
	quantity      int
	unitPrice     float64
	totalPrice    float64
	dateOrdered   string
	supplier      string
	customerName  string
	customerEmail string
	about         string
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: seedproducts <inventory.xlsx>")
	}
	xlsxPath := os.Args[1]
	outPath := "db/seeds/products.sql"

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	products, err := parseSheet(f)
	if err != nil {
		return fmt.Errorf("parse sheet: %w", err)
	}
	log.Printf("parsed %d product rows", len(products))

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	w := func(s string) error { _, werr := fmt.Fprintln(out, s); return werr }

	for _, line := range []string{
		"-- Product seed data generated from a spreadsheet export.",
		fmt.Sprintf("-- %d rows in batches of %d.", len(products), batchSize),
		"-- Run: make seed-products",
		"BEGIN;",
		"",
	} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write header: %w", werr)
		}
	}

	for i := 0; i < len(products); i += batchSize {
		end := i + batchSize
		if end > len(products) {
			end = len(products)
		}
		if err := writeBatch(out, products[i:end]); err != nil {
			return fmt.Errorf("write batch at offset %d: %w", i, err)
		}
	}

	for _, line := range []string{"", "COMMIT;"} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write footer: %w", werr)
		}
	}

	log.Printf("Generated %d rows (%d batches) in %s",
		len(products), (len(products)+batchSize-1)/batchSize, outPath)
	return nil
}

// parseSheet reads the first sheet. Rows with an unparseable quantity or
// unit price are skipped with a log line rather than aborting the run.
func parseSheet(f *excelize.File) ([]productRow, error) {
	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheetName)
	}

	if err := checkHeader(rows[0]); err != nil {
		return nil, err
	}

	var products []productRow
	for i := 1; i < len(rows); i++ {
		row := rows[i]

		name := strings.TrimSpace(cellVal(row, 1))
		if name == "" {
			continue
		}

		quantity, err := strconv.Atoi(strings.TrimSpace(cellVal(row, 3)))
		if err != nil {
			log.Printf("row %d: bad quantity %q, skipping", i+1, cellVal(row, 3))
			continue
		}
		unitPrice, err := strconv.ParseFloat(strings.TrimSpace(cellVal(row, 4)), 64)
		if err != nil {
			log.Printf("row %d: bad unit_price %q, skipping", i+1, cellVal(row, 4))
			continue
		}

		totalPrice, err := strconv.ParseFloat(strings.TrimSpace(cellVal(row, 5)), 64)
		if err != nil {
			totalPrice = unitPrice * float64(quantity)
		}

		id := strings.TrimSpace(cellVal(row, 0))
		if id != "" {
			if _, err := strconv.ParseInt(id, 10, 64); err != nil {
				log.Printf("row %d: non-numeric id %q, storing NULL", i+1, id)
				id = ""
			}
		}

		products = append(products, productRow{
			id:            id,
			productName:   name,
			category:      strings.TrimSpace(cellVal(row, 2)),
			quantity:      quantity,
			unitPrice:     unitPrice,
			totalPrice:    totalPrice,
			dateOrdered:   strings.TrimSpace(cellVal(row, 6)),
			supplier:      strings.TrimSpace(cellVal(row, 7)),
			customerName:  strings.TrimSpace(cellVal(row, 8)),
			customerEmail: strings.TrimSpace(cellVal(row, 9)),
			about:         strings.TrimSpace(cellVal(row, 10)),
		})
	}
	return products, nil
}

func checkHeader(header []string) error {
	for i, want := range expectedColumns {
		got := strings.ToLower(strings.TrimSpace(cellVal(header, i)))
		if got != want {
			return fmt.Errorf("header column %d: got %q, want %q", i+1, got, want)
		}
	}
	return nil
}

func writeBatch(out *os.File, batch []productRow) error {
	if len(batch) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO products (key, id, product_name, category, quantity, unit_price, total_price, date_ordered, supplier, customer_name, customer_email, about) VALUES\n")

	for i := range batch {
		p := &batch[i]
		if i > 0 {
			b.WriteString(",\n")
		}

		idVal := "NULL"
		if p.id != "" {
			idVal = p.id
		}

		fmt.Fprintf(&b, "  (gen_random_uuid(), %s, '%s', '%s', %d, %.2f, %.2f, '%s', '%s', '%s', '%s', '%s')",
			idVal,
			escapeSQL(p.productName), escapeSQL(p.category),
			p.quantity, p.unitPrice, p.totalPrice,
			escapeSQL(p.dateOrdered), escapeSQL(p.supplier),
			escapeSQL(p.customerName), escapeSQL(p.customerEmail),
			escapeSQL(p.about))
	}

	b.WriteString("\nON CONFLICT (key) DO NOTHING;\n")

	_, err := out.WriteString(b.String())
	return err
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
