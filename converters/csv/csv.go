package csv

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/darianmavgo/ordersdb/converters"
	"github.com/darianmavgo/ordersdb/converters/common"
)

func init() {
	converters.Register("csv", &csvDriver{})
}

type csvDriver struct{}

func (d *csvDriver) Open(source io.Reader, config *common.ConversionConfig) (common.RowSource, error) {
	return NewOrdersCSV(source, config)
}

// OrdersCSV holds a fully loaded CSV source, records already projected
// into destination schema order.
type OrdersCSV struct {
	records [][]string
}

// Ensure OrdersCSV implements RowSource
var _ common.RowSource = (*OrdersCSV)(nil)

// NewOrdersCSV reads the whole CSV from r into memory. The first row must
// be a header carrying every schema column; extra columns are ignored.
func NewOrdersCSV(r io.Reader, config *common.ConversionConfig) (*OrdersCSV, error) {
	delimiter := ','
	if config != nil && config.Delimiter != 0 {
		delimiter = config.Delimiter
	}

	reader := csv.NewReader(bufio.NewReaderSize(r, 65536))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("CSV file is empty")
		}
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	positions, err := common.MapColumns(header)
	if err != nil {
		return nil, err
	}

	var records [][]string
	for {
		row, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		records = append(records, common.ProjectRecord(row, positions))
	}

	return &OrdersCSV{records: records}, nil
}

// RowCount implements RowSource
func (c *OrdersCSV) RowCount() int {
	return len(c.records)
}

// ScanRows implements RowSource
func (c *OrdersCSV) ScanRows(yield func(record []string) error) error {
	for _, record := range c.records {
		if err := yield(record); err != nil {
			return err
		}
	}
	return nil
}
