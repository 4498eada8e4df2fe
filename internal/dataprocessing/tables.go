package dataprocessing

import "strings"

// Static lookup tables for the Office of Research extracts. These are
// immutable configuration fixed by contract with the upstream office and
// the CFPB design manual; none of them change at runtime.

// BaseYear anchors the month index: month 0 = January of BaseYear.
const BaseYear = 2000

// Date layouts used in output artifacts.
const (
	// DataFileDateLayout is the machine-sortable month stamp used in
	// output tables and re-parsed by the chart formatters.
	DataFileDateLayout = "2006-01"
	// SnapshotDateLayout is the day-level stamp used by the snapshot
	// digest.
	SnapshotDateLayout = "2006-01-02"
)

// marketCodeLen is the length of the "_XXX" market code stripped, along
// with the extension, from a filename to obtain its dispatch prefix.
const marketCodeLen = 4

// SnapshotFilenameKey marks the non-market data snapshot file.
const SnapshotFilenameKey = "data_snapshot"

// MarketNames maps the market code embedded in filenames to the output
// directory name for that credit market.
var MarketNames = map[string]string{
	"AUT": "auto-loans",
	"CRC": "credit-cards",
	"HCE": "heces",
	"HLC": "helocs",
	"MTG": "mortgages",
	"PER": "personal-loans",
	"RET": "retail-loans",
	"STU": "student-loans",
}

// Output column schemas. The first two columns are always month index and
// formatted date; order is fixed by the front-end contract.
var (
	MapOutputSchema        = []string{"fips_code", "state_abbr", "value"}
	SummaryNumOutputSchema = []string{"month", "date", "num", "num_unadj"}
	SummaryVolOutputSchema = []string{"month", "date", "vol", "vol_unadj"}
	YOYSummaryOutputSchema = []string{"month", "date", "yoy_num", "yoy_vol"}

	InquiryIndexOutputSchema = []string{
		"month", "date", "inquiry_index", "unadjusted_inquiry_index",
	}
	TightnessIndexOutputSchema = []string{
		"month", "date", "tightness_index", "unadjusted_credit_tightness_index",
	}
)

// Group dimensions. The dimension name becomes the final column name of
// grouped volume tables ("age_group", "income_level_group", ...).
const (
	GroupDimAge    = "age"
	GroupDimIncome = "income_level"
	GroupDimScore  = "credit_score"
)

// groupVolSchema builds the grouped-volume schema for a dimension.
func groupVolSchema(dim string) []string {
	return []string{"month", "date", "vol", "vol_unadj", dim + "_group"}
}

// groupYOYSchema builds the group-YOY schema from the internal column keys.
func groupYOYSchema(cols []string) []string {
	schema := []string{"month", "date"}
	for _, c := range cols {
		schema = append(schema, c+"_yoy")
	}
	return schema
}

// YOY group vocabularies. In-columns are the labels the upstream files
// use, Cols the internal column keys, and JSON the display names for the
// chart series (sentence case, no spaces around dashes, per the design
// manual).
var (
	AgeYOYIn   = []string{"Younger than 30", "30-44", "45-64", "65 and older"}
	AgeYOYCols = []string{"younger-than-30", "30-44", "45-64", "65-and-older"}
	AgeYOYJSON = []string{"Younger than 30", "30-44", "45-64", "65 and older"}

	IncomeYOYIn   = []string{"Low", "Moderate", "Middle", "High"}
	IncomeYOYCols = []string{"low", "moderate", "middle", "high"}
	IncomeYOYJSON = IncomeYOYIn

	ScoreYOYIn   = []string{"Deep Subprime", "Subprime", "Near Prime", "Prime", "Superprime"}
	ScoreYOYCols = []string{"deep-subprime", "subprime", "near-prime", "prime", "super-prime"}
	ScoreYOYJSON = []string{"Deep subprime", "Subprime", "Near-prime", "Prime", "Super-prime"}
)

// TextFixes translates raw input group labels into the display labels
// required by agency guidelines. Absent labels pass through unchanged.
var TextFixes = map[string]string{
	"30-44":        "Age 30-44",
	"45-64":        "Age 45-64",
	"65 and older": "Age 65 and older",
	"Deep Subprime": "Deep subprime",
	"Near Prime":    "Near-prime",
	"Superprime":    "Super-prime",
}

// PercentChangeDescriptors renders the sign of a YOY change in the
// snapshot digest: index 0 for decreases, 1 for increases.
var PercentChangeDescriptors = [2]string{"decrease", "increase"}

// FIPSCodes translates state FIPS codes into postal abbreviations for the
// tile map output.
var FIPSCodes = map[int]string{
	1:  "AL",
	2:  "AK",
	4:  "AZ",
	5:  "AR",
	6:  "CA",
	8:  "CO",
	9:  "CT",
	10: "DE",
	11: "DC",
	12: "FL",
	13: "GA",
	15: "HI",
	16: "ID",
	17: "IL",
	18: "IN",
	19: "IA",
	20: "KS",
	21: "KY",
	22: "LA",
	23: "ME",
	24: "MD",
	25: "MA",
	26: "MI",
	27: "MN",
	28: "MS",
	29: "MO",
	30: "MT",
	31: "NE",
	32: "NV",
	33: "NH",
	34: "NJ",
	35: "NM",
	36: "NY",
	37: "NC",
	38: "ND",
	39: "OH",
	40: "OK",
	41: "OR",
	42: "PA",
	44: "RI",
	45: "SC",
	46: "SD",
	47: "TN",
	48: "TX",
	49: "UT",
	50: "VT",
	51: "VA",
	53: "WA",
	54: "WV",
	55: "WI",
	56: "WY",
}

// FindMarket resolves the credit market for a filename by market code
// containment. Returns "" when the filename carries no known market code.
func FindMarket(filename string) string {
	for abbr, name := range MarketNames {
		if strings.Contains(filename, abbr) {
			return name
		}
	}
	return ""
}
