package common

// ConversionConfig stores configuration options for the conversion process.
type ConversionConfig struct {
	Delimiter rune   // Field delimiter for CSV parsing; 0 means comma
	TableName string // Destination table name; "" means OrdersTable
	SheetName string // Worksheet for Excel sources; "" means first sheet
}
