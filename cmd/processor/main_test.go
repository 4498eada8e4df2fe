package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfpb/consumer-credit-trends-data/pkg/contracts/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeInput(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestRunProcessesBatch(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()

	writeInput(t, inDir, "num_data_AUT.csv",
		"month,value,adjustment\n"+
			"0,100.5,Seasonally Adjusted\n"+
			"0,98.2,Unadjusted\n")
	writeInput(t, inDir, "map_data_MTG.csv",
		"fips,value\n"+
			"1,0.4567\n")
	// A recognized market with an unknown file type fails that file only.
	writeInput(t, inDir, "med_data_CRC.csv",
		"month,value\n0,1\n")

	successes, failures := run(context.Background(), discardLogger(), inDir, outDir, "")
	assert.Equal(t, 2, successes)
	assert.Equal(t, 1, failures)

	// CSV table lands under the market directory.
	table, err := os.ReadFile(filepath.Join(outDir, "auto-loans", "num_data_AUT.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(table), "month,date,num,num_unadj")

	// Chart JSON lands beside it.
	chartData, err := os.ReadFile(filepath.Join(outDir, "mortgages", "map_data_MTG.json"))
	require.NoError(t, err)

	var tiles domain.TileMap
	require.NoError(t, json.Unmarshal(chartData, &tiles))
	require.Len(t, tiles, 1)
	assert.Equal(t, domain.TileMapEntry{Name: "AL", Value: "45.67"}, tiles[0])

	// The failed file leaves no artifacts.
	_, err = os.Stat(filepath.Join(outDir, "credit-cards"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunWritesSnapshotDigest(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	snapshotPath := filepath.Join(t.TempDir(), "snapshot.json")

	writeInput(t, inDir, "data_snapshot.csv",
		"month,market,var_name,value,value_yoy\n"+
			"197,AUT,Originations,1234000,5.4\n"+
			"197,AUT,Dollar volume of new loans,72500000000,7.1\n")

	ctx := context.Background()
	successes, failures := run(ctx, discardLogger(), inDir, outDir, snapshotPath)
	assert.Equal(t, 1, successes)
	assert.Zero(t, failures)

	data, err := os.ReadFile(snapshotPath)
	require.NoError(t, err)

	var digest domain.SnapshotDigest
	require.NoError(t, json.Unmarshal(data, &digest))
	assert.NotEmpty(t, digest.DatePublished)
	require.Len(t, digest.Markets, 1)
	assert.Equal(t, "AUT", digest.Markets[0].MarketKey)
	assert.Equal(t, "1.2 million", digest.Markets[0].NumOriginations)
	assert.Equal(t, "$72.5 billion", digest.Markets[0].ValueOriginations)
}

func TestRunSkipsSnapshotWhenDisabled(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()

	writeInput(t, inDir, "data_snapshot.csv",
		"month,market,var_name,value,value_yoy\n"+
			"197,AUT,Originations,1234000,5.4\n")

	successes, failures := run(context.Background(), discardLogger(), inDir, outDir, "")
	assert.Zero(t, successes)
	assert.Zero(t, failures)
}

func TestRunIgnoresUnrelatedFiles(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()

	writeInput(t, inDir, "mystery_report.csv", "a,b\n1,2\n")

	successes, failures := run(context.Background(), discardLogger(), inDir, outDir, "")
	assert.Zero(t, successes)
	assert.Equal(t, 1, failures)
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "num_data_AUT.csv", outputName("num_data_AUT.csv"))
	assert.Equal(t, "num_data_AUT.csv", outputName("num_data_AUT.xlsx"))
}
