package common

import "io"

// RowSource provides order records aligned to the destination schema.
// Sources load fully into memory at open time, so RowCount is known before
// any row is scanned.
type RowSource interface {
	// RowCount reports the number of data rows loaded from the source.
	RowCount() int
	// ScanRows calls yield once per record, in source order. Records are
	// in OrderColumns order and not yet type-coerced.
	// If yield returns an error, iteration stops and that error is returned.
	ScanRows(yield func(record []string) error) error
}

// Driver is implemented by a source format package (csv, excel).
type Driver interface {
	// Open reads the full source and returns a RowSource for it.
	Open(source io.Reader, config *ConversionConfig) (RowSource, error)
}
