package dataprocessing

import (
	"time"

	"github.com/cfpb/consumer-credit-trends-data/internal/errors"
)

// ActualDate converts an Office of Research month index into a calendar
// date string. Month 0 is January of BaseYear; each index advances one
// calendar month. A negative index is a structural error in the input
// file, not a representable date.
func ActualDate(month int, layout string) (string, error) {
	if month < 0 {
		return "", errors.NewInvalidMonthIndex(month)
	}

	year := BaseYear + month/12
	calMonth := time.Month(month%12 + 1)

	return time.Date(year, calMonth, 1, 0, 0, 0, 0, time.UTC).Format(layout), nil
}

// EpochMillis parses a date string produced by ActualDate back into
// milliseconds since the Unix epoch, UTC with no timezone adjustment.
// For the DataFileDateLayout it exactly inverts ActualDate.
func EpochMillis(date string, layout string) (int64, error) {
	t, err := time.ParseInLocation(layout, date, time.UTC)
	if err != nil {
		return 0, errors.NewParsingError("invalid date string "+date, err)
	}
	return t.UnixMilli(), nil
}
