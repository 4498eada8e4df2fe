// Package exporter writes the processed-data artifacts for the Consumer
// Credit Trends front end.
//
// Each successfully processed extract produces two artifacts side by
// side under the output root, namespaced by market: a CSV file (schema
// header plus output rows) and a JSON file with the matching chart
// structure. The snapshot path adds one cross-market digest JSON.
package exporter
