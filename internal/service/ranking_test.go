package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/user/movierank/internal/model"
)

func TestRoundToNearestHalf(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"tie rounds away from zero", 3.25, 3.5},
		{"tie low", 1.25, 1.5},
		{"tie rounds up to whole", 2.75, 3.0},
		{"below tie", 3.2, 3.0},
		{"above tie", 3.3, 3.5},
		{"third mean", 8.0 / 3.0, 2.5},
		{"thirteen thirds", 13.0 / 3.0, 4.5},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, RoundToNearestHalf(tt.in))
		})
	}
}

func TestRoundToNearestHalfIdempotent(t *testing.T) {
	// 已对齐到 0.5 的值保持不变
	for _, v := range []float64{0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4, 4.5, 5} {
		require.Equal(t, v, RoundToNearestHalf(v))
	}
}

func TestDefaultRankOrder(t *testing.T) {
	a := model.RankedMovieResponse{Title: "Alpha", Rating: 4.5}
	b := model.RankedMovieResponse{Title: "Beta", Rating: 4.0}
	c := model.RankedMovieResponse{Title: "Beta", Rating: 4.5}

	require.True(t, DefaultRankOrder(a, b))  // 高分在前
	require.False(t, DefaultRankOrder(b, a)) // 低分在后
	require.True(t, DefaultRankOrder(a, c))  // 同分按标题升序
	require.False(t, DefaultRankOrder(c, a))
}
