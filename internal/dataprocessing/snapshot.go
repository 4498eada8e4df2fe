package dataprocessing

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cfpb/consumer-credit-trends-data/internal/errors"
	"github.com/cfpb/consumer-credit-trends-data/pkg/contracts/domain"
)

// magnitudeNames are the human modifiers by power of 1000. Values below
// one million carry no modifier word.
var magnitudeNames = []string{
	"", "", "million", "billion", "trillion", "quadrillion", "quintillion",
}

// englishPrinter groups digits the way the published snippets expect
// ("12,345,678").
var englishPrinter = message.NewPrinter(language.English)

// HumanNumber renders a number with a human magnitude modifier, e.g.
// 1100000 becomes "1.1 million". Below one million the number is printed
// with digit grouping; when wholeUnitsOnly is set it is additionally
// rounded to a whole number, so 67.012 becomes "67". wholeUnitsOnly has
// no effect at or above one million.
func HumanNumber(num float64, wholeUnitsOnly bool) string {
	idx := 0
	if num != 0 {
		idx = int(math.Floor(math.Log10(math.Abs(num)) / 3))
	}
	if idx < 0 {
		idx = 0
	}
	if idx > len(magnitudeNames)-1 {
		idx = len(magnitudeNames) - 1
	}

	if idx < 2 {
		if wholeUnitsOnly {
			return englishPrinter.Sprintf("%d", int64(math.Round(num)))
		}
		return strings.TrimSpace(englishPrinter.Sprintf("%.1f %s", num, magnitudeNames[idx]))
	}

	return englishPrinter.Sprintf("%.1f %s", num/math.Pow(10, float64(3*idx)), magnitudeNames[idx])
}

// yoyChange renders a year-over-year percentage as the published phrase,
// e.g. "5.4% increase".
func yoyChange(yoy float64) string {
	desc := PercentChangeDescriptors[0]
	if yoy > 0 {
		desc = PercentChangeDescriptors[1]
	}
	return fmt.Sprintf("%.1f%% %s", math.Abs(yoy), desc)
}

// ProcessSnapshot turns the long-format data snapshot rows (month,
// market, variable name, value, YOY value) into one human-readable
// MarketSnapshot per market, sorted by market key. Each variable type
// contributes its own fields; a variable name outside the fixed
// vocabulary is fatal.
func ProcessSnapshot(rows [][]string, source string) ([]domain.MarketSnapshot, error) {
	markets := make(map[string]*domain.MarketSnapshot)

	for _, row := range rows {
		if len(row) < 5 {
			return nil, errors.NewParsingError(
				"snapshot row has fewer than 5 fields in "+source, nil).WithContext("row", row)
		}

		month, err := parseMonth(row[0], source, row)
		if err != nil {
			return nil, err
		}
		monthStr, err := ActualDate(month, SnapshotDateLayout)
		if err != nil {
			return nil, err
		}

		market := row[1]
		varName := strings.ToLower(row[2])

		info, ok := markets[market]
		if !ok {
			info = &domain.MarketSnapshot{MarketKey: market}
			markets[market] = info
		}

		switch {
		case strings.Contains(varName, "originations"):
			value, yoy, err := parseSnapshotValues(row, source)
			if err != nil {
				return nil, err
			}
			info.DataMonth = monthStr
			info.NumOriginations = HumanNumber(value, true)
			info.YearOverYearChange = yoyChange(yoy)

		case strings.Contains(varName, "volume"):
			value, err := strconv.ParseFloat(row[3], 64)
			if err != nil {
				return nil, errors.NewParsingError(
					"non-numeric snapshot value in "+source, err).WithContext("row", row)
			}
			// Volume month is the same as the origination month.
			info.ValueOriginations = "$" + HumanNumber(value, true)

		case strings.Contains(varName, "inquiry"):
			_, yoy, err := parseSnapshotValues(row, source)
			if err != nil {
				return nil, err
			}
			info.InquiryYOYChange = yoyChange(yoy)
			info.InquiryMonth = monthStr

		case strings.Contains(varName, "tightness"):
			_, yoy, err := parseSnapshotValues(row, source)
			if err != nil {
				return nil, err
			}
			info.TightnessYOYChange = yoyChange(yoy)
			info.TightnessMonth = monthStr

		default:
			return nil, errors.NewUnknownVariableName(source, row[2], row)
		}
	}

	keys := make([]string, 0, len(markets))
	for k := range markets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]domain.MarketSnapshot, 0, len(markets))
	for _, k := range keys {
		out = append(out, *markets[k])
	}
	return out, nil
}

func parseSnapshotValues(row []string, source string) (value, yoy float64, err error) {
	value, err = strconv.ParseFloat(row[3], 64)
	if err != nil {
		return 0, 0, errors.NewParsingError(
			"non-numeric snapshot value in "+source, err).WithContext("row", row)
	}
	yoy, err = strconv.ParseFloat(row[4], 64)
	if err != nil {
		return 0, 0, errors.NewParsingError(
			"non-numeric snapshot YOY value in "+source, err).WithContext("row", row)
	}
	return value, yoy, nil
}
