// Package dataprocessing transforms the monthly statistical extracts
// published by the Office of Research into the normalized tables and
// chart-ready JSON structures consumed by the Consumer Credit Trends
// web front end.
//
// # Architecture
//
// The package is organized around a per-file-type pipeline:
//
//  1. Reader: loads the delimited rows of an extract (.csv or .xlsx)
//  2. Aggregators: pivot long rows (one row per month x category x
//     adjustment) into one record per month (or per month/group)
//  3. Pivot: emits ordered output rows under a fixed column schema
//  4. Chart formatters: denormalize the pivoted rows into the JSON
//     series structures the chart organisms render directly
//
// Dispatch from a filename prefix (e.g. "vol_data", "yoy_data_age_group")
// to the matching pipeline is a static registry built once at process
// start; see Dispatch and ProcessFile.
//
// # Data Flow
//
//	CSV/XLSX extract → Reader → Aggregator → Pivot → table rows + chart JSON
//
// A separate, simpler path handles the cross-market data snapshot file;
// see ProcessSnapshot.
//
// # Error Handling
//
// Structural problems (unrecognized adjustment label, illegal group name,
// unknown file prefix) abort the file with a typed error from the errors
// package. Non-numeric placeholder values inside well-formed rows are
// data-quality noise, not errors: the affected chart point is dropped and
// the table cell passes through unchanged.
package dataprocessing
