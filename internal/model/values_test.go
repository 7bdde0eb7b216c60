package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewScore(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"lower bound", 1, false},
		{"upper bound", 5, false},
		{"middle", 3, false},
		{"zero", 0, true},
		{"negative", -1, true},
		{"too high", 6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewScore(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.value, s.Int())
		})
	}
}

func TestNewRunningTime(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		wantErr bool
	}{
		{"lower bound", 1, false},
		{"upper bound", 1440, false},
		{"typical", 120, false},
		{"zero", 0, true},
		{"negative", -10, true},
		{"over one day", 1441, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, err := NewRunningTime(tt.minutes)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.minutes, rt.Minutes())
		})
	}
}

func TestNewRunningTimeFromHours(t *testing.T) {
	tests := []struct {
		name        string
		hours       float64
		wantMinutes int
		wantErr     bool
	}{
		{"two hours", 2.0, 120, false},
		{"truncates to whole minutes", 1.999, 119, false},
		{"half hour", 0.5, 30, false},
		{"zero hours", 0, 0, true},
		{"over one day", 24.5, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, err := NewRunningTimeFromHours(tt.hours)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantMinutes, rt.Minutes())
		})
	}
}

func TestNewReleaseYear(t *testing.T) {
	current := time.Now().Year()

	tests := []struct {
		name    string
		year    int
		wantErr bool
	}{
		{"cinema invention year", 1895, false},
		{"current year", current, false},
		{"before cinema", 1894, true},
		{"next year", current + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, err := NewReleaseYear(tt.year)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.year, y.Int())
		})
	}
}

func TestReleaseYearYearsSince(t *testing.T) {
	y, err := NewReleaseYear(2004)
	require.NoError(t, err)
	require.Equal(t, time.Now().Year()-2004, y.YearsSince())
}
