// export_test.go exports private functions for white-box testing.
package logger

// Error chain formatting, exported for testing.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)
