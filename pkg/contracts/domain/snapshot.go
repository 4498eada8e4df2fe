package domain

// MarketSnapshot holds the human-readable headline statistics for one
// credit market, as shown on the landing-page digest. Fields not present
// in the snapshot extract for a market are omitted from the JSON output.
type MarketSnapshot struct {
	MarketKey          string `json:"market_key"`
	DataMonth          string `json:"data_month,omitempty"`
	NumOriginations    string `json:"num_originations,omitempty"`
	ValueOriginations  string `json:"value_originations,omitempty"`
	YearOverYearChange string `json:"year_over_year_change,omitempty"`
	InquiryYOYChange   string `json:"inquiry_yoy_change,omitempty"`
	InquiryMonth       string `json:"inquiry_month,omitempty"`
	TightnessYOYChange string `json:"tightness_yoy_change,omitempty"`
	TightnessMonth     string `json:"tightness_month,omitempty"`
}

// SnapshotDigest is the single cross-market digest artifact produced from
// the data snapshot file.
type SnapshotDigest struct {
	DatePublished string           `json:"date_published"`
	RunID         string           `json:"run_id,omitempty"`
	Markets       []MarketSnapshot `json:"markets"`
}
