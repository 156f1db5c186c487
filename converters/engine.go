package converters

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/darianmavgo/ordersdb/converters/common"

	_ "modernc.org/sqlite"
)

// BatchSize defines the number of rows to insert before committing a
// transaction, so long imports save progress periodically.
var BatchSize = 1000

// ImportOptions defines configuration for the import process.
type ImportOptions struct {
	BatchSize int  // Rows per transaction; <= 0 means the package default.
	Verbose   bool // If true, enables detailed logging.
}

// Outcome reports a completed import.
type Outcome struct {
	Table      string // Destination table name
	SourceRows int    // Data rows read from the source
	Columns    int    // Schema column count
	TableRows  int64  // Total table rows after insertion, prior contents included
}

// ImportOrders normalizes every record from src and appends it to the
// destination table, creating the table first if it does not exist. The
// database connection is closed before returning, success or not.
func ImportOrders(src common.RowSource, dbPath, tableName string, opts *ImportOptions) (*Outcome, error) {
	if tableName == "" {
		tableName = common.OrdersTable
	}
	batchSize := BatchSize
	if opts != nil && opts.BatchSize > 0 {
		batchSize = opts.BatchSize
	}
	verbose := opts != nil && opts.Verbose

	if verbose {
		log.Printf("[ORDERSDB] Connecting to SQLite database: %s", dbPath)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// Limit to 1 connection to avoid locking issues and improve tx.Stmt performance
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA page_size = 65536; PRAGMA cache_size = -2000;"); err != nil {
		return nil, fmt.Errorf("failed to set PRAGMAs: %w", err)
	}

	if verbose {
		log.Printf("[ORDERSDB] Creating table %s if absent", tableName)
	}
	if _, err := db.Exec(common.GenCreateTableSQL(tableName)); err != nil {
		return nil, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	insertSQL, err := common.GenInsertStmt(tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to generate insert statement for table %s: %w", tableName, err)
	}

	mainStmt, err := db.Prepare(insertSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare insert statement for table %s: %w", tableName, err)
	}
	defer mainStmt.Close()

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt := tx.Stmt(mainStmt)
	rowCount := 0

	err = src.ScanRows(func(record []string) error {
		values := common.CoerceRow(record)
		if _, err := stmt.Exec(values...); err != nil {
			return fmt.Errorf("failed to insert row in table %s: %w", tableName, err)
		}

		rowCount++
		if rowCount%batchSize == 0 {
			stmt.Close()
			if err := tx.Commit(); err != nil {
				return fmt.Errorf("failed to commit transaction for table %s: %w", tableName, err)
			}

			// Leave tx pointing at the committed transaction if Begin
			// fails, so the outer error path never sees a nil tx.
			next, beginErr := db.Begin()
			if beginErr != nil {
				return fmt.Errorf("failed to begin transaction: %w", beginErr)
			}
			tx = next
			stmt = tx.Stmt(mainStmt)
		}
		return nil
	})

	stmt.Close() // Close statement before commit/rollback

	if err != nil {
		if tx != nil {
			tx.Rollback() // ErrTxDone if the last batch already committed
		}
		return nil, fmt.Errorf("failed to scan rows: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction for table %s: %w", tableName, err)
	}

	var tableRows int64
	if err := db.QueryRow("SELECT COUNT(*) FROM " + tableName).Scan(&tableRows); err != nil {
		return nil, fmt.Errorf("failed to count rows in table %s: %w", tableName, err)
	}

	if verbose {
		log.Printf("[ORDERSDB] Finished table %s, inserted %d rows, table holds %d", tableName, rowCount, tableRows)
	}

	return &Outcome{
		Table:      tableName,
		SourceRows: src.RowCount(),
		Columns:    len(common.OrderColumns),
		TableRows:  tableRows,
	}, nil
}
