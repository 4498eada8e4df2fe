package dataprocessing

import (
	"sort"
	"strconv"
)

// The pivot functions turn aggregation results into ordered output rows
// under a fixed column schema. Rows are sorted ascending by month index
// (secondarily by group label where one is present) and the schema itself
// is prepended as the header row. An aggregation with no rows yields an
// empty table; the caller treats that as success with no artifacts.

// PivotSummary emits [month, date, adjusted, unadjusted] rows.
func PivotSummary(agg map[int]AdjustedPair, schema []string) ([][]string, error) {
	if len(agg) == 0 {
		return nil, nil
	}

	months := sortedMonths(agg)

	table := make([][]string, 0, len(agg)+1)
	table = append(table, schema)
	for _, month := range months {
		date, err := ActualDate(month, DataFileDateLayout)
		if err != nil {
			return nil, err
		}
		pair := agg[month]
		table = append(table, []string{
			strconv.Itoa(month), date, pair.Adjusted, pair.Unadjusted,
		})
	}

	return table, nil
}

// PivotGrouped emits [month, date, adjusted, unadjusted, group] rows, one
// per (month, group) pair. Group labels are passed through the TextFixes
// translation table before output.
func PivotGrouped(agg map[int]map[string]AdjustedPair, schema []string) ([][]string, error) {
	if len(agg) == 0 {
		return nil, nil
	}

	months := sortedMonths(agg)

	table := [][]string{schema}
	for _, month := range months {
		date, err := ActualDate(month, DataFileDateLayout)
		if err != nil {
			return nil, err
		}

		groups := make([]string, 0, len(agg[month]))
		for g := range agg[month] {
			groups = append(groups, g)
		}
		sort.Strings(groups)

		for _, group := range groups {
			pair := agg[month][group]
			label := group
			if fixed, ok := TextFixes[group]; ok {
				label = fixed
			}
			table = append(table, []string{
				strconv.Itoa(month), date, pair.Adjusted, pair.Unadjusted, label,
			})
		}
	}

	return table, nil
}

// PivotGroupYOY emits [month, date, g1, ..., gn] rows with one value
// column per legal group, in the fixed group order. Pre-population in the
// aggregator guarantees every group key resolves; absent measurements
// surface as empty cells.
func PivotGroupYOY(agg map[int]map[string]string, legalGroups []string, schema []string) ([][]string, error) {
	if len(agg) == 0 {
		return nil, nil
	}

	months := sortedMonths(agg)

	table := [][]string{schema}
	for _, month := range months {
		date, err := ActualDate(month, DataFileDateLayout)
		if err != nil {
			return nil, err
		}
		row := []string{strconv.Itoa(month), date}
		for _, g := range legalGroups {
			row = append(row, agg[month][g])
		}
		table = append(table, row)
	}

	return table, nil
}

// PivotYOYSummary emits [month, date, num, vol] rows.
func PivotYOYSummary(agg map[int]YOYPair, schema []string) ([][]string, error) {
	if len(agg) == 0 {
		return nil, nil
	}

	months := sortedMonths(agg)

	table := [][]string{schema}
	for _, month := range months {
		date, err := ActualDate(month, DataFileDateLayout)
		if err != nil {
			return nil, err
		}
		pair := agg[month]
		table = append(table, []string{strconv.Itoa(month), date, pair.Num, pair.Vol})
	}

	return table, nil
}

func sortedMonths[V any](agg map[int]V) []int {
	months := make([]int, 0, len(agg))
	for m := range agg {
		months = append(months, m)
	}
	sort.Ints(months)
	return months
}
