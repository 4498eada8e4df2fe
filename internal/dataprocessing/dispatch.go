package dataprocessing

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cfpb/consumer-credit-trends-data/internal/errors"
)

// Result is the outcome of running one extract through its pipeline.
// An empty Table means the file aggregated to zero rows: a valid terminal
// outcome with no artifacts, not a failure.
type Result struct {
	// Table is the output rows with the schema header prepended.
	Table [][]string
	// Chart is the matching chart-JSON payload, nil when Table is empty.
	Chart interface{}
}

// PipelineFunc transforms the data rows of one extract file. The source
// name is carried for error context only.
type PipelineFunc func(rows [][]string, source string) (Result, error)

// filePrefixes is the dispatch registry: normalized filename prefix to
// pipeline. Built once at process start and never mutated. Filenames are
// formatted "<prefix>_<MKT>.csv".
var filePrefixes = map[string]PipelineFunc{
	"map_data": processMap,
	"num_data": summaryPipeline(SummaryNumOutputSchema),
	"vol_data": summaryPipeline(SummaryVolOutputSchema),

	"volume_data_age_group":    groupVolPipeline(GroupDimAge),
	"volume_data_income_level": groupVolPipeline(GroupDimIncome),
	"volume_data_score_level":  groupVolPipeline(GroupDimScore),

	"yoy_data_all":          processYOYSummary,
	"yoy_data_age_group":    groupYOYPipeline(AgeYOYIn, AgeYOYCols, AgeYOYJSON),
	"yoy_data_income_level": groupYOYPipeline(IncomeYOYIn, IncomeYOYCols, IncomeYOYJSON),
	"yoy_data_score_level":  groupYOYPipeline(ScoreYOYIn, ScoreYOYCols, ScoreYOYJSON),

	"inq_data": summaryPipeline(InquiryIndexOutputSchema),
	"crt_data": summaryPipeline(TightnessIndexOutputSchema),
}

// Prefix derives the dispatch key for a filename by stripping the
// extension and the fixed-length "_XXX" market code, then lower-casing
// the remainder.
func Prefix(filename string) string {
	name := filepath.Base(filename)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if len(name) <= marketCodeLen {
		return ""
	}
	return strings.ToLower(name[:len(name)-marketCodeLen])
}

// Dispatch resolves the pipeline for a filename prefix.
func Dispatch(prefix string) (PipelineFunc, error) {
	pipeline, ok := filePrefixes[prefix]
	if !ok {
		return nil, errors.NewUnknownFileType(prefix)
	}
	return pipeline, nil
}

// ProcessFile loads an extract file and runs it through the pipeline its
// filename prefix selects.
func ProcessFile(path string) (Result, error) {
	pipeline, err := Dispatch(Prefix(path))
	if err != nil {
		return Result{}, err
	}

	rows, err := LoadRows(path)
	if err != nil {
		return Result{}, err
	}

	return pipeline(rows, filepath.Base(path))
}

// processMap translates state-by-state map rows (fips_code, value) into
// (fips_code, state_abbr, value) table rows plus the tile-map payload.
// Input order is preserved; map files arrive already ordered by state.
func processMap(rows [][]string, source string) (Result, error) {
	if len(rows) == 0 {
		return Result{}, nil
	}

	table := [][]string{MapOutputSchema}
	for _, row := range rows {
		if len(row) < 2 {
			return Result{}, errors.NewParsingError(
				"map row has fewer than 2 fields in "+source, nil).WithContext("row", row)
		}

		code, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return Result{}, errors.NewUnknownFIPSCode(source, row[0])
		}
		abbr, ok := FIPSCodes[code]
		if !ok {
			return Result{}, errors.NewUnknownFIPSCode(source, row[0])
		}

		table = append(table, []string{row[0], abbr, row[1]})
	}

	return Result{Table: table, Chart: TileMapChart(table[1:])}, nil
}

// summaryPipeline builds the pipeline for flat summary files (loan
// counts, volumes, and the inquiry/tightness indices) under the given
// output schema.
func summaryPipeline(schema []string) PipelineFunc {
	return func(rows [][]string, source string) (Result, error) {
		agg, err := FlatAggregate(rows, source)
		if err != nil {
			return Result{}, err
		}

		table, err := PivotSummary(agg, schema)
		if err != nil || len(table) <= 1 {
			return Result{}, err
		}

		chart, err := LineChart(table[1:])
		if err != nil {
			return Result{}, err
		}
		return Result{Table: table, Chart: chart}, nil
	}
}

// groupVolPipeline builds the pipeline for grouped volume files over the
// given group dimension (borrower age, income level, credit score).
func groupVolPipeline(dim string) PipelineFunc {
	schema := groupVolSchema(dim)
	return func(rows [][]string, source string) (Result, error) {
		agg, err := GroupedAggregate(rows, source)
		if err != nil {
			return Result{}, err
		}

		table, err := PivotGrouped(agg, schema)
		if err != nil || len(table) <= 1 {
			return Result{}, err
		}

		chart, err := GroupLineChart(table[1:])
		if err != nil {
			return Result{}, err
		}
		return Result{Table: table, Chart: chart}, nil
	}
}

// groupYOYPipeline builds the pipeline for group year-over-year files.
// inNames are the legal upstream group labels, cols the internal column
// keys, and displayNames the chart series names; the three lists
// correspond positionally.
func groupYOYPipeline(inNames, cols, displayNames []string) PipelineFunc {
	schema := groupYOYSchema(cols)
	return func(rows [][]string, source string) (Result, error) {
		agg, err := GroupYOYAggregate(rows, inNames, source)
		if err != nil {
			return Result{}, err
		}

		table, err := PivotGroupYOY(agg, inNames, schema)
		if err != nil || len(table) <= 1 {
			return Result{}, err
		}

		chart, err := GroupBarChart(table[1:], cols, displayNames)
		if err != nil {
			return Result{}, err
		}
		return Result{Table: table, Chart: chart}, nil
	}
}

// processYOYSummary handles the market-wide year-over-year change file
// (numbers vs. dollar volume).
func processYOYSummary(rows [][]string, source string) (Result, error) {
	agg, err := SummaryYOYAggregate(rows, source)
	if err != nil {
		return Result{}, err
	}

	table, err := PivotYOYSummary(agg, YOYSummaryOutputSchema)
	if err != nil || len(table) <= 1 {
		return Result{}, err
	}

	chart, err := YOYBarChart(table[1:])
	if err != nil {
		return Result{}, err
	}
	return Result{Table: table, Chart: chart}, nil
}
