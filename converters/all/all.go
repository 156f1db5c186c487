package all

import (
	// Import all the source drivers so they register themselves
	_ "github.com/darianmavgo/ordersdb/converters/csv"
	_ "github.com/darianmavgo/ordersdb/converters/excel"
)
