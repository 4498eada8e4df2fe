package dataprocessing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cfpb/consumer-credit-trends-data/internal/errors"
	"github.com/cfpb/consumer-credit-trends-data/pkg/contracts/domain"
)

// The chart formatters consume pivoted table rows (header excluded) and
// build the JSON structures rendered by the chart organisms. A value that
// fails numeric parsing is an expected upstream placeholder ("NA" and
// friends); the single affected point is dropped, never the row or the
// file.

// LineChart formats summary rows [month, date, adjusted, unadjusted] as a
// single-market adjusted/unadjusted line chart.
func LineChart(rows [][]string) (*domain.LineChart, error) {
	out := &domain.LineChart{
		Adjusted:   domain.Series{},
		Unadjusted: domain.Series{},
	}

	for _, row := range rows {
		ms, err := EpochMillis(row[1], DataFileDateLayout)
		if err != nil {
			return nil, err
		}
		appendNumeric(&out.Adjusted, ms, row[2])
		appendNumeric(&out.Unadjusted, ms, row[3])
	}

	return out, nil
}

// GroupLineChart formats grouped rows [month, date, adjusted, unadjusted,
// group] as one adjusted/unadjusted pair per group. Age labels carry an
// "Age " prefix in table output but not in chart keys; the prefix is
// stripped here.
func GroupLineChart(rows [][]string) (domain.GroupLineChart, error) {
	out := make(domain.GroupLineChart)

	for _, row := range rows {
		ms, err := EpochMillis(row[1], DataFileDateLayout)
		if err != nil {
			return nil, err
		}

		group := row[4]
		if strings.HasPrefix(strings.ToLower(group), "age ") {
			group = group[4:]
		}

		pair, ok := out[group]
		if !ok {
			pair = &domain.LineChart{
				Adjusted:   domain.Series{},
				Unadjusted: domain.Series{},
			}
			out[group] = pair
		}

		appendNumeric(&pair.Adjusted, ms, row[2])
		appendNumeric(&pair.Unadjusted, ms, row[3])
	}

	return out, nil
}

// GroupBarChart formats group-YOY rows [month, date, v1, ..., vn] as one
// series per value column. valueCols are the internal column keys in row
// order; displayNames are the positional chart series names substituted
// on output. A key that cannot be resolved back to a column position is a
// contract violation between caller and formatter.
func GroupBarChart(rows [][]string, valueCols, displayNames []string) (domain.BarChart, error) {
	series := make(map[string]domain.Series, len(valueCols))
	for _, col := range valueCols {
		series[col] = domain.Series{}
	}

	for _, row := range rows {
		ms, err := EpochMillis(row[1], DataFileDateLayout)
		if err != nil {
			return nil, err
		}
		for i, col := range valueCols {
			if 2+i >= len(row) {
				continue
			}
			s := series[col]
			appendNumeric(&s, ms, row[2+i])
			series[col] = s
		}
	}

	out := make(domain.BarChart, len(series))
	for col, points := range series {
		idx := indexOf(valueCols, col)
		if idx < 0 || idx >= len(displayNames) {
			return nil, errors.NewUnknownSeriesColumn(col, valueCols)
		}
		out[displayNames[idx]] = points
	}

	return out, nil
}

// YOYBarChart formats YOY summary rows [month, date, num, vol] as the
// fixed two-series loan count / dollar volume bar chart.
func YOYBarChart(rows [][]string) (domain.BarChart, error) {
	num := domain.Series{}
	vol := domain.Series{}

	for _, row := range rows {
		ms, err := EpochMillis(row[1], DataFileDateLayout)
		if err != nil {
			return nil, err
		}
		appendNumeric(&num, ms, row[2])
		appendNumeric(&vol, ms, row[3])
	}

	return domain.BarChart{
		"Number of Loans": num,
		"Dollar Volume":   vol,
	}, nil
}

// TileMapChart formats map rows [fips_code, state_abbr, value] as
// choropleth tiles. Values parse as fractions and render as percentage
// strings with two decimals; non-numeric placeholders pass through
// unchanged so states with no data still get a tile.
func TileMapChart(rows [][]string) domain.TileMap {
	out := make(domain.TileMap, 0, len(rows))

	for _, row := range rows {
		value := row[2]
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			value = fmt.Sprintf("%.2f", f*100)
		}
		out = append(out, domain.TileMapEntry{Name: row[1], Value: value})
	}

	return out
}

// appendNumeric appends [ms, v] to s when raw parses as a float and drops
// the point otherwise.
func appendNumeric(s *domain.Series, ms int64, raw string) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return
	}
	*s = append(*s, domain.Point{Millis: ms, Value: v})
}

func indexOf(list []string, want string) int {
	for i, s := range list {
		if s == want {
			return i
		}
	}
	return -1
}
