package converters

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/darianmavgo/ordersdb/converters/common"
)

// ErrSourceNotFound reports that the input path does not resolve to a
// readable file. When Convert returns it, no database file or table has
// been created.
var ErrSourceNotFound = errors.New("source file not found")

func getDriverName(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return "csv", nil
	case ".xlsx", ".xls":
		return "excel", nil
	}
	return "", fmt.Errorf("unsupported file type: %s", ext)
}

// Convert reads the orders source at inputPath, normalizes it against the
// destination schema and appends it to the table in the SQLite database at
// outputPath. The table is created if absent and never migrated; a second
// run against the same destination appends duplicate rows.
func Convert(inputPath, outputPath string, config *common.ConversionConfig, opts *ImportOptions) (*Outcome, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, inputPath)
		}
		return nil, fmt.Errorf("failed to stat input path: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("input path is a directory: %s", inputPath)
	}

	driverName, err := getDriverName(inputPath)
	if err != nil {
		return nil, err
	}

	// Work on a copy so defaults never leak into the caller's struct.
	var cfg common.ConversionConfig
	if config != nil {
		cfg = *config
	}
	if cfg.TableName == "" {
		cfg.TableName = common.OrdersTable
	}

	inputFile, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer inputFile.Close()

	source, err := Open(driverName, inputFile, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s source: %w", driverName, err)
	}

	// Clean up source resources if it implements io.Closer
	if c, ok := source.(io.Closer); ok {
		defer c.Close()
	}

	// Ensure output directory exists
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	return ImportOrders(source, outputPath, cfg.TableName, opts)
}
