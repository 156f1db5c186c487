package excel

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/darianmavgo/ordersdb/converters"
	"github.com/darianmavgo/ordersdb/converters/common"

	"github.com/xuri/excelize/v2"
	_ "modernc.org/sqlite"
)

func writeTempWorkbook(t *testing.T, sheetName string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheetName != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheetName); err != nil {
			t.Fatalf("failed to rename sheet: %v", err)
		}
	}

	header := make([]interface{}, len(common.OrderColumns))
	for i, name := range common.ColumnNames() {
		header[i] = name
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		t.Fatalf("failed to write header row: %v", err)
	}

	row := []interface{}{
		"AG-2014-2040", "3/5/2014", "3/7/2014", "First Class", "Toby Braunhardt",
		"Consumer", "Constantine", "Algeria", "Africa", "Africa",
		"OFF-TEN-10000025", "Office Supplies", "Storage", "Tenex Lockers",
		"261.96", "abc", "0", "106.14", "35.46", "Medium", "2014",
	}
	if err := f.SetSheetRow(sheetName, "A2", &row); err != nil {
		t.Fatalf("failed to write data row: %v", err)
	}

	path := filepath.Join(t.TempDir(), "orders.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook: %v", err)
	}
	return path
}

func TestConvertExcelFile(t *testing.T) {
	inputPath := writeTempWorkbook(t, "Sheet1")
	outputPath := filepath.Join(filepath.Dir(inputPath), "orders.db")

	outcome, err := converters.Convert(inputPath, outputPath, nil, nil)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if outcome.SourceRows != 1 {
		t.Errorf("expected 1 source row, got %d", outcome.SourceRows)
	}
	if outcome.TableRows != 1 {
		t.Errorf("expected 1 table row, got %d", outcome.TableRows)
	}

	db, err := sql.Open("sqlite", outputPath)
	if err != nil {
		t.Fatalf("failed to open output database: %v", err)
	}
	defer db.Close()

	var orderDate string
	var sales float64
	var quantity int64
	err = db.QueryRow("SELECT order_date, sales, quantity FROM orders WHERE order_id = 'AG-2014-2040'").
		Scan(&orderDate, &sales, &quantity)
	if err != nil {
		t.Fatalf("failed to query row: %v", err)
	}
	if orderDate != "2014-03-05" {
		t.Errorf("order_date: got %q, want %q", orderDate, "2014-03-05")
	}
	if sales != 261.96 {
		t.Errorf("sales: got %v, want 261.96", sales)
	}
	if quantity != 0 {
		t.Errorf("quantity: got %d, want 0 for unparsable cell", quantity)
	}
}

func TestConvertExcelNamedSheet(t *testing.T) {
	inputPath := writeTempWorkbook(t, "Orders 2014")
	outputPath := filepath.Join(filepath.Dir(inputPath), "orders.db")

	cfg := &common.ConversionConfig{SheetName: "Orders 2014"}
	outcome, err := converters.Convert(inputPath, outputPath, cfg, nil)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if outcome.TableRows != 1 {
		t.Errorf("expected 1 table row, got %d", outcome.TableRows)
	}
}

func TestConvertExcelMissingSheet(t *testing.T) {
	inputPath := writeTempWorkbook(t, "Sheet1")
	outputPath := filepath.Join(filepath.Dir(inputPath), "orders.db")

	cfg := &common.ConversionConfig{SheetName: "NoSuchSheet"}
	if _, err := converters.Convert(inputPath, outputPath, cfg, nil); err == nil {
		t.Fatal("expected error for missing sheet")
	}
}
