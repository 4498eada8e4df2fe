package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/cfpb/consumer-credit-trends-data/internal/errors"
)

func TestFlatAggregate(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		want     map[int]AdjustedPair
		wantType apperrors.ErrorType
	}{
		{
			name: "pairs adjusted and unadjusted rows per month",
			rows: [][]string{
				{"190", "100.5", "Seasonally Adjusted"},
				{"190", "98.2", "Unadjusted"},
				{"191", "101.0", "Seasonally Adjusted"},
			},
			want: map[int]AdjustedPair{
				190: {Adjusted: "100.5", Unadjusted: "98.2"},
				191: {Adjusted: "101.0"},
			},
		},
		{
			name: "label matching is case-insensitive substring",
			rows: [][]string{
				{"5", "7", "seasonally adjusted"},
				{"5", "8", "UNADJUSTED"},
			},
			want: map[int]AdjustedPair{
				5: {Adjusted: "7", Unadjusted: "8"},
			},
		},
		{
			name: "unrecognized adjustment label is fatal",
			rows: [][]string{
				{"5", "7", "smoothed"},
			},
			wantType: apperrors.ErrTypeUnrecognizedAdjustmentLabel,
		},
		{
			name: "negative month index is fatal",
			rows: [][]string{
				{"-3", "7", "Unadjusted"},
			},
			wantType: apperrors.ErrTypeInvalidMonthIndex,
		},
		{
			name: "non-integer month is a parsing error",
			rows: [][]string{
				{"abc", "7", "Unadjusted"},
			},
			wantType: apperrors.ErrTypeParsing,
		},
		{
			name: "short row is a parsing error",
			rows: [][]string{
				{"5", "7"},
			},
			wantType: apperrors.ErrTypeParsing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FlatAggregate(tt.rows, "test.csv")
			if tt.wantType != "" {
				require.Error(t, err)
				assert.True(t, apperrors.IsType(err, tt.wantType))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlatAggregateOrderIndependent(t *testing.T) {
	forward := [][]string{
		{"1", "10", "Seasonally Adjusted"},
		{"1", "11", "Unadjusted"},
		{"2", "20", "Seasonally Adjusted"},
		{"2", "21", "Unadjusted"},
	}
	reversed := [][]string{forward[3], forward[2], forward[1], forward[0]}

	a, err := FlatAggregate(forward, "test.csv")
	require.NoError(t, err)
	b, err := FlatAggregate(reversed, "test.csv")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGroupedAggregate(t *testing.T) {
	rows := [][]string{
		{"190", "50", "Low", "Seasonally Adjusted"},
		{"190", "52", "Low", "Unadjusted"},
		{"190", "70", "High", "Seasonally Adjusted"},
		{"191", "55", "Low", "Unadjusted"},
	}

	got, err := GroupedAggregate(rows, "test.csv")
	require.NoError(t, err)

	want := map[int]map[string]AdjustedPair{
		190: {
			"Low":  {Adjusted: "50", Unadjusted: "52"},
			"High": {Adjusted: "70"},
		},
		191: {
			"Low": {Unadjusted: "55"},
		},
	}
	assert.Equal(t, want, got)
}

func TestGroupedAggregateRejectsBadLabel(t *testing.T) {
	rows := [][]string{
		{"190", "50", "Low", "trend-cycle"},
	}
	_, err := GroupedAggregate(rows, "test.csv")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeUnrecognizedAdjustmentLabel))
}

func TestGroupYOYAggregate(t *testing.T) {
	rows := [][]string{
		{"190", "0.05", "Low"},
		{"190", "-0.02", "High"},
		{"191", "0.01", "Middle"},
	}

	got, err := GroupYOYAggregate(rows, IncomeYOYIn, "test.csv")
	require.NoError(t, err)

	// Every legal group is pre-populated per month, absent ones empty.
	want := map[int]map[string]string{
		190: {"Low": "0.05", "Moderate": "", "Middle": "", "High": "-0.02"},
		191: {"Low": "", "Moderate": "", "Middle": "0.01", "High": ""},
	}
	assert.Equal(t, want, got)
}

func TestGroupYOYAggregateRejectsIllegalGroup(t *testing.T) {
	rows := [][]string{
		{"190", "0.05", "Mid-range"},
	}
	_, err := GroupYOYAggregate(rows, IncomeYOYIn, "test.csv")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeIllegalGroupName))
}

func TestSummaryYOYAggregate(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		want     map[int]YOYPair
		wantType apperrors.ErrorType
	}{
		{
			name: "pairs number and volume rows per month",
			rows: [][]string{
				{"190", "0.05", "Number of Loans"},
				{"190", "0.07", "Dollar Volume"},
				{"191", "0.01", "Number of Loans"},
			},
			want: map[int]YOYPair{
				190: {Num: "0.05", Vol: "0.07"},
				191: {Num: "0.01"},
			},
		},
		{
			name: "inquiry and tightness rows are skipped without error",
			rows: [][]string{
				{"190", "0.05", "Number of Loans"},
				{"190", "0.03", "Inquiry Index"},
				{"190", "0.02", "Credit Tightness Index"},
			},
			want: map[int]YOYPair{
				190: {Num: "0.05"},
			},
		},
		{
			name: "unrecognized type label is fatal",
			rows: [][]string{
				{"190", "0.05", "Median Loan Size"},
			},
			wantType: apperrors.ErrTypeMalformedYoyRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SummaryYOYAggregate(tt.rows, "test.csv")
			if tt.wantType != "" {
				require.Error(t, err)
				assert.True(t, apperrors.IsType(err, tt.wantType))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
