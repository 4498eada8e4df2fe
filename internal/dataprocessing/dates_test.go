package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/cfpb/consumer-credit-trends-data/internal/errors"
)

func TestActualDate(t *testing.T) {
	tests := []struct {
		name    string
		month   int
		layout  string
		want    string
		wantErr bool
	}{
		{
			name:   "month zero is January of the base year",
			month:  0,
			layout: DataFileDateLayout,
			want:   "2000-01",
		},
		{
			name:   "eleventh index stays in the base year",
			month:  11,
			layout: DataFileDateLayout,
			want:   "2000-12",
		},
		{
			name:   "twelfth index rolls the year",
			month:  12,
			layout: DataFileDateLayout,
			want:   "2001-01",
		},
		{
			name:   "mid-range index",
			month:  197,
			layout: DataFileDateLayout,
			want:   "2016-06",
		},
		{
			name:   "snapshot layout includes the day",
			month:  197,
			layout: SnapshotDateLayout,
			want:   "2016-06-01",
		},
		{
			name:    "negative index is rejected",
			month:   -1,
			layout:  DataFileDateLayout,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ActualDate(tt.month, tt.layout)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsType(err, apperrors.ErrTypeInvalidMonthIndex))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEpochMillis(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		want    int64
		wantErr bool
	}{
		{
			name: "base month",
			date: "2000-01",
			want: 946684800000,
		},
		{
			name: "second month",
			date: "2000-02",
			want: 949363200000,
		},
		{
			name:    "garbage date",
			date:    "not-a-date",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EpochMillis(tt.date, DataFileDateLayout)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEpochMillisInvertsActualDate(t *testing.T) {
	var prev int64
	for month := 0; month < 240; month++ {
		date, err := ActualDate(month, DataFileDateLayout)
		require.NoError(t, err)

		ms, err := EpochMillis(date, DataFileDateLayout)
		require.NoError(t, err)

		if month > 0 {
			assert.Greater(t, ms, prev, "timestamps must be strictly increasing at month %d", month)
		}
		prev = ms
	}
}
