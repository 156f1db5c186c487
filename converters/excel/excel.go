package excel

import (
	"fmt"
	"io"

	"github.com/darianmavgo/ordersdb/converters"
	"github.com/darianmavgo/ordersdb/converters/common"

	"github.com/xuri/excelize/v2"
)

func init() {
	converters.Register("excel", &excelDriver{})
}

type excelDriver struct{}

func (d *excelDriver) Open(source io.Reader, config *common.ConversionConfig) (common.RowSource, error) {
	return NewOrdersWorkbook(source, config)
}

// OrdersWorkbook holds one fully loaded worksheet, records already
// projected into destination schema order.
type OrdersWorkbook struct {
	records [][]string
	file    *excelize.File
}

// Ensure OrdersWorkbook implements RowSource
var _ common.RowSource = (*OrdersWorkbook)(nil)

// Ensure OrdersWorkbook implements io.Closer
var _ io.Closer = (*OrdersWorkbook)(nil)

// NewOrdersWorkbook reads one worksheet from the Excel stream. The sheet is
// picked by config.SheetName, defaulting to the first sheet. Its first row
// must be a header carrying every schema column.
func NewOrdersWorkbook(r io.Reader, config *common.ConversionConfig) (*OrdersWorkbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel stream: %w", err)
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		f.Close()
		return nil, fmt.Errorf("no sheets found in Excel file")
	}

	sheetName := sheets[0]
	if config != nil && config.SheetName != "" {
		sheetName = config.SheetName
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
	}
	if len(rows) == 0 {
		f.Close()
		return nil, fmt.Errorf("sheet %s is empty", sheetName)
	}

	positions, err := common.MapColumns(rows[0])
	if err != nil {
		f.Close()
		return nil, err
	}

	records := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, common.ProjectRecord(row, positions))
	}

	return &OrdersWorkbook{records: records, file: f}, nil
}

// RowCount implements RowSource
func (w *OrdersWorkbook) RowCount() int {
	return len(w.records)
}

// ScanRows implements RowSource
func (w *OrdersWorkbook) ScanRows(yield func(record []string) error) error {
	for _, record := range w.records {
		if err := yield(record); err != nil {
			return err
		}
	}
	return nil
}

// Close implements io.Closer
func (w *OrdersWorkbook) Close() error {
	return w.file.Close()
}
