// export_test.go exports private functions for white-box testing.
package storage

// Escape and Split expose the record field escaping for testing.
var (
	Escape = escape
	Split  = split
)
