package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustMovie(t *testing.T, title string) *Movie {
	t.Helper()
	year, err := NewReleaseYear(2004)
	require.NoError(t, err)
	rt, err := NewRunningTime(100)
	require.NoError(t, err)
	movie, err := NewMovie(title, year, rt, GenreComedy)
	require.NoError(t, err)
	return movie
}

func TestNewMovie(t *testing.T) {
	movie := mustMovie(t, "Super Size Me")
	require.Equal(t, "Super Size Me", movie.Title)
	require.Empty(t, movie.Reviews)

	year, _ := NewReleaseYear(2004)
	rt, _ := NewRunningTime(100)
	_, err := NewMovie("", year, rt, GenreComedy)
	require.Error(t, err)
	_, err = NewMovie("   ", year, rt, GenreComedy)
	require.Error(t, err)
}

func TestAddReviews(t *testing.T) {
	movie := mustMovie(t, "Super 8")

	// 空集合直接拒绝
	require.Error(t, movie.AddReviews(nil))
	require.Error(t, movie.AddReviews([]Review{}))

	first, err := NewReview(1, 1, 5)
	require.NoError(t, err)
	require.NoError(t, movie.AddReviews([]Review{*first}))
	require.Len(t, movie.Reviews, 1)

	// 追加而不是替换
	second, err := NewReview(2, 1, 3)
	require.NoError(t, err)
	require.NoError(t, movie.AddReviews([]Review{*second}))
	require.Len(t, movie.Reviews, 2)
}

func TestAverageScore(t *testing.T) {
	movie := mustMovie(t, "Superman")
	require.Equal(t, 0.0, movie.AverageScore())

	for i, score := range []int{5, 2, 1} {
		r, err := NewReview(i+1, 1, score)
		require.NoError(t, err)
		require.NoError(t, movie.AddReviews([]Review{*r}))
	}
	require.InDelta(t, 8.0/3.0, movie.AverageScore(), 1e-9)

	// 每次访问实时计算，新评论立刻生效
	r, err := NewReview(4, 1, 4)
	require.NoError(t, err)
	require.NoError(t, movie.AddReviews([]Review{*r}))
	require.InDelta(t, 3.0, movie.AverageScore(), 1e-9)
}

func TestNewReview(t *testing.T) {
	tests := []struct {
		name       string
		reviewerID int
		movieID    int
		score      int
		wantErr    bool
	}{
		{"valid", 1, 2, 3, false},
		{"zero reviewer", 0, 2, 3, true},
		{"negative movie", 1, -2, 3, true},
		{"score too low", 1, 2, 0, true},
		{"score too high", 1, 2, 6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReview(tt.reviewerID, tt.movieID, tt.score)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.score, r.Score)
		})
	}
}
