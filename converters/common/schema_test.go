package common

import (
	"strings"
	"testing"
)

func TestGenCreateTableSQL(t *testing.T) {
	ddl := GenCreateTableSQL("orders")

	if !strings.HasPrefix(ddl, "CREATE TABLE IF NOT EXISTS orders (") {
		t.Fatalf("unexpected DDL prefix: %s", ddl)
	}
	for _, want := range []string{
		"order_id TEXT",
		"order_date TEXT",
		"ship_date TEXT",
		"sales REAL",
		"quantity INTEGER",
		"shipping_cost REAL",
		"year INTEGER",
	} {
		if !strings.Contains(ddl, want) {
			t.Errorf("DDL missing %q: %s", want, ddl)
		}
	}
	if got := strings.Count(ddl, ","); got != len(OrderColumns)-1 {
		t.Errorf("expected %d column separators, got %d", len(OrderColumns)-1, got)
	}
}

func TestGenInsertStmt(t *testing.T) {
	stmtSQL, err := GenInsertStmt("orders")
	if err != nil {
		t.Fatalf("GenInsertStmt failed: %v", err)
	}
	if got := strings.Count(stmtSQL, "?"); got != len(OrderColumns) {
		t.Errorf("expected %d placeholders, got %d", len(OrderColumns), got)
	}
	if !strings.Contains(stmtSQL, "INSERT INTO orders") {
		t.Errorf("unexpected statement: %s", stmtSQL)
	}

	if _, err := GenInsertStmt(""); err == nil {
		t.Error("expected error for empty table name")
	}
}

func TestMapColumns(t *testing.T) {
	// Schema-form headers in shuffled order, with an extra column mixed in.
	headers := append([]string{"extra"}, ColumnNames()...)
	positions, err := MapColumns(headers)
	if err != nil {
		t.Fatalf("MapColumns failed: %v", err)
	}
	for i := range OrderColumns {
		if positions[i] != i+1 {
			t.Errorf("column %s: got position %d, want %d", OrderColumns[i].Name, positions[i], i+1)
		}
	}
}

func TestMapColumnsMissing(t *testing.T) {
	headers := ColumnNames()[:20] // drop "year"
	_, err := MapColumns(headers)
	if err == nil {
		t.Fatal("expected error for missing column")
	}
	if !strings.Contains(err.Error(), "year") {
		t.Errorf("error should name the missing column: %v", err)
	}
}

func TestProjectRecordShortRow(t *testing.T) {
	positions := []int{2, 0, 5}
	record := []string{"a", "b", "c"}
	got := ProjectRecord(record, positions)
	want := []string{"c", "a", ""}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("at index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
