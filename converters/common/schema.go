package common

import (
	"fmt"
	"strings"
)

// ColumnType is the destination type of a schema column. It decides both
// the SQLite affinity in the CREATE TABLE statement and the coercion rule
// applied to raw cell values.
type ColumnType int

const (
	TypeText ColumnType = iota
	TypeDate            // stored as TEXT in YYYY-MM-DD form
	TypeReal
	TypeInteger
)

// SQLType returns the SQLite column type for DDL.
func (t ColumnType) SQLType() string {
	switch t {
	case TypeReal:
		return "REAL"
	case TypeInteger:
		return "INTEGER"
	default:
		return "TEXT"
	}
}

// Column is one destination column: its name doubles as the required
// source header name (after header normalization).
type Column struct {
	Name string
	Type ColumnType
}

// OrdersTable is the default destination table name.
const OrdersTable = "orders"

// OrderColumns is the fixed destination schema, in table order. Both the
// DDL generation and row coercion consume this single definition.
var OrderColumns = []Column{
	{"order_id", TypeText},
	{"order_date", TypeDate},
	{"ship_date", TypeDate},
	{"ship_mode", TypeText},
	{"customer_name", TypeText},
	{"segment", TypeText},
	{"state", TypeText},
	{"country", TypeText},
	{"market", TypeText},
	{"region", TypeText},
	{"product_id", TypeText},
	{"category", TypeText},
	{"sub_category", TypeText},
	{"product_name", TypeText},
	{"sales", TypeReal},
	{"quantity", TypeInteger},
	{"discount", TypeReal},
	{"profit", TypeReal},
	{"shipping_cost", TypeReal},
	{"order_priority", TypeText},
	{"year", TypeInteger},
}

// ColumnNames returns the schema column names in table order.
func ColumnNames() []string {
	names := make([]string, len(OrderColumns))
	for i, col := range OrderColumns {
		names[i] = col.Name
	}
	return names
}

// GenCreateTableSQL generates the idempotent CREATE TABLE statement for the
// destination schema. An existing table is left untouched, whatever its
// schema.
func GenCreateTableSQL(tableName string) string {
	var builder strings.Builder
	builder.Grow(len(tableName) + len(OrderColumns)*24)

	builder.WriteString("CREATE TABLE IF NOT EXISTS ")
	builder.WriteString(tableName)
	builder.WriteString(" (")
	for i, col := range OrderColumns {
		builder.WriteString(col.Name)
		builder.WriteByte(' ')
		builder.WriteString(col.Type.SQLType())
		if i < len(OrderColumns)-1 {
			builder.WriteString(", ")
		}
	}
	builder.WriteByte(')')
	return builder.String()
}

// GenInsertStmt generates the prepared INSERT statement for the destination
// schema.
func GenInsertStmt(tableName string) (string, error) {
	if tableName == "" {
		return "", fmt.Errorf("table name is required")
	}

	names := ColumnNames()
	stmtSQL := fmt.Sprintf(`
INSERT INTO %s (
	%s
) VALUES (%s)`,
		tableName,
		strings.Join(names, ","),
		strings.Repeat("?,", len(names)-1)+"?",
	)

	return strings.TrimSpace(stmtSQL), nil
}

// MapColumns resolves raw source headers to schema column positions.
// Headers are normalized first, so "Order ID" and "Sub-Category" match the
// schema names. The returned slice has one entry per schema column holding
// the index of that column in the source record. Every schema column must
// be present in the source.
func MapColumns(rawHeaders []string) ([]int, error) {
	normalized := NormalizeHeaders(rawHeaders)

	byName := make(map[string]int, len(normalized))
	for idx, name := range normalized {
		if _, dup := byName[name]; !dup {
			byName[name] = idx
		}
	}

	positions := make([]int, len(OrderColumns))
	for i, col := range OrderColumns {
		idx, ok := byName[col.Name]
		if !ok {
			return nil, fmt.Errorf("source is missing required column %q", col.Name)
		}
		positions[i] = idx
	}
	return positions, nil
}

// ProjectRecord reorders a source record into schema column order using the
// positions from MapColumns. Cells past the end of a short record come back
// as empty strings.
func ProjectRecord(record []string, positions []int) []string {
	projected := make([]string, len(positions))
	for i, idx := range positions {
		if idx < len(record) {
			projected[i] = record[idx]
		}
	}
	return projected
}
