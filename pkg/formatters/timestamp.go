package formatters

import "time"

// TimestampLayout renders 'YYYY/MM/DD HH:MM:SS.ffffff': slash-separated
// date, 24-hour clock, microsecond precision, zero padded throughout.
const TimestampLayout = "2006/01/02 15:04:05.000000"

// Timestamp returns the current UTC wall-clock time in TimestampLayout.
// No timezone suffix is included; all timestamps are UTC.
func Timestamp() string {
	return time.Now().UTC().Format(TimestampLayout)
}
