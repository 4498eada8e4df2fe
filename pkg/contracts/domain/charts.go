package domain

import (
	"encoding/json"
)

// Point is a single chart data point: an epoch-millisecond timestamp paired
// with a numeric value. It marshals as the two-element array the chart
// organisms expect, e.g. [946684800000, 1.5].
type Point struct {
	Millis int64
	Value  float64
}

// MarshalJSON renders the point as [millis, value].
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{p.Millis, p.Value})
}

// UnmarshalJSON accepts the [millis, value] array form.
func (p *Point) UnmarshalJSON(data []byte) error {
	var raw [2]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Millis = int64(raw[0])
	p.Value = raw[1]
	return nil
}

// Series is an ordered sequence of points. Point order follows ascending
// month order; that is guaranteed by the upstream pivot sort.
type Series []Point

// LineChart is the adjusted/unadjusted pair rendered as a single-market
// line chart.
type LineChart struct {
	Adjusted   Series `json:"adjusted"`
	Unadjusted Series `json:"unadjusted"`
}

// GroupLineChart maps a display group label (e.g. "30-44", "Middle") to its
// adjusted/unadjusted pair.
type GroupLineChart map[string]*LineChart

// BarChart maps a display series name (e.g. "Number of Loans") to its
// time series. Used for both the YOY summary chart and the per-group
// YOY bar charts.
type BarChart map[string]Series

// TileMapEntry is one state tile of a choropleth map. Value is a formatted
// percentage string, or the raw placeholder token (e.g. "NA") when the
// upstream value was not numeric.
type TileMapEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// TileMap is the full choropleth payload, one entry per state present in
// the input file.
type TileMap []TileMapEntry
