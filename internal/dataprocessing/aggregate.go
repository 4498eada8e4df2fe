package dataprocessing

import (
	"strconv"
	"strings"

	"github.com/cfpb/consumer-credit-trends-data/internal/errors"
)

// AdjustedPair holds the seasonally-adjusted and unadjusted variants of
// one measurement. Empty string means the variant was absent from the
// input; it becomes an empty table cell and is dropped from chart output.
type AdjustedPair struct {
	Adjusted   string
	Unadjusted string
}

// YOYPair holds the number-of-loans and dollar-volume variants of a
// year-over-year measurement.
type YOYPair struct {
	Num string
	Vol string
}

// parseMonth converts the leading month-index field of a raw row.
func parseMonth(field string, source string, row []string) (int, error) {
	month, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, errors.NewParsingError(
			"non-integer month index in "+source, err).WithContext("row", row)
	}
	if month < 0 {
		return 0, errors.NewInvalidMonthIndex(month).WithContext("source", source)
	}
	return month, nil
}

// classifyAdjustment stores value into the pair slot named by the
// free-text adjustment label. The upstream vocabulary is fixed by
// contract: labels containing "unadjust" are raw measurements, labels
// containing "seasonal" are seasonally adjusted. Anything else is a
// structural error.
func classifyAdjustment(pair *AdjustedPair, label, value, source string, row []string) error {
	switch lower := strings.ToLower(label); {
	case strings.Contains(lower, "unadjust"):
		pair.Unadjusted = value
	case strings.Contains(lower, "seasonal"):
		pair.Adjusted = value
	default:
		return errors.NewUnrecognizedAdjustmentLabel(source, row)
	}
	return nil
}

// FlatAggregate reduces summary-file rows (month, value, adjustment label)
// into one AdjustedPair per month. A later row for the same month
// overwrites only the slot its label names; the other slot is untouched.
func FlatAggregate(rows [][]string, source string) (map[int]AdjustedPair, error) {
	agg := make(map[int]AdjustedPair)

	for _, row := range rows {
		if len(row) < 3 {
			return nil, errors.NewParsingError(
				"summary row has fewer than 3 fields in "+source, nil).WithContext("row", row)
		}

		month, err := parseMonth(row[0], source, row)
		if err != nil {
			return nil, err
		}

		pair := agg[month]
		if err := classifyAdjustment(&pair, row[2], row[1], source, row); err != nil {
			return nil, err
		}
		agg[month] = pair
	}

	return agg, nil
}

// GroupedAggregate reduces grouped-volume rows (month, value, group,
// adjustment label) into an AdjustedPair per (month, group) pair.
func GroupedAggregate(rows [][]string, source string) (map[int]map[string]AdjustedPair, error) {
	agg := make(map[int]map[string]AdjustedPair)

	for _, row := range rows {
		if len(row) < 4 {
			return nil, errors.NewParsingError(
				"group row has fewer than 4 fields in "+source, nil).WithContext("row", row)
		}

		month, err := parseMonth(row[0], source, row)
		if err != nil {
			return nil, err
		}

		group := row[2]
		if agg[month] == nil {
			agg[month] = make(map[string]AdjustedPair)
		}

		pair := agg[month][group]
		if err := classifyAdjustment(&pair, row[3], row[1], source, row); err != nil {
			return nil, err
		}
		agg[month][group] = pair
	}

	return agg, nil
}

// GroupYOYAggregate reduces group-YOY rows (month, value, group) into one
// value per legal group per month. Every month key is pre-populated with
// all legal group names so that absent groups surface as explicit empty
// cells in the output rather than missing columns. A group label outside
// the legal set is fatal.
func GroupYOYAggregate(rows [][]string, legalGroups []string, source string) (map[int]map[string]string, error) {
	agg := make(map[int]map[string]string)

	legal := make(map[string]bool, len(legalGroups))
	for _, g := range legalGroups {
		legal[g] = true
	}

	for _, row := range rows {
		if len(row) < 3 {
			return nil, errors.NewParsingError(
				"group YOY row has fewer than 3 fields in "+source, nil).WithContext("row", row)
		}

		month, err := parseMonth(row[0], source, row)
		if err != nil {
			return nil, err
		}

		if agg[month] == nil {
			agg[month] = make(map[string]string, len(legalGroups))
			for _, g := range legalGroups {
				agg[month][g] = ""
			}
		}

		group := row[2]
		if !legal[group] {
			return nil, errors.NewIllegalGroupName(source, group, row)
		}
		agg[month][group] = row[1]
	}

	return agg, nil
}

// SummaryYOYAggregate reduces YOY summary rows (month, value, type label)
// into one YOYPair per month. Labels naming the inquiry or credit
// tightness indices exist in the upstream extract but are out of scope
// for this output and are skipped without error; any other unrecognized
// label is fatal.
func SummaryYOYAggregate(rows [][]string, source string) (map[int]YOYPair, error) {
	agg := make(map[int]YOYPair)

	for _, row := range rows {
		if len(row) < 3 {
			return nil, errors.NewParsingError(
				"YOY summary row has fewer than 3 fields in "+source, nil).WithContext("row", row)
		}

		month, err := parseMonth(row[0], source, row)
		if err != nil {
			return nil, err
		}

		pair := agg[month]
		switch lower := strings.ToLower(row[2]); {
		case strings.Contains(lower, "number"):
			pair.Num = row[1]
		case strings.Contains(lower, "volume"):
			pair.Vol = row[1]
		case strings.Contains(lower, "inquiry"), strings.Contains(lower, "tightness"):
			// Present upstream, excluded from this output.
		default:
			return nil, errors.NewMalformedYoyRow(source, row)
		}
		agg[month] = pair
	}

	return agg, nil
}
