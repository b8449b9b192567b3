// export_test.go exports private functions for white-box testing.
package progrock

import "time"

// SetJournalClock replaces the clock used to stamp log lines.
func SetJournalClock(j *Journal, now func() time.Time) {
	j.now = now
}
