package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMovieSearchCriteriaValidate(t *testing.T) {
	tests := []struct {
		name     string
		criteria MovieSearchCriteria
		wantErr  bool
	}{
		{"all empty", MovieSearchCriteria{}, true},
		{"unknown genre only counts as empty", MovieSearchCriteria{Genre: "no such"}, true},
		{"title only", MovieSearchCriteria{Title: "super"}, false},
		{"year only", MovieSearchCriteria{Year: 2004}, false},
		{"genre only", MovieSearchCriteria{Genre: "Romance"}, false},
		{"all supplied", MovieSearchCriteria{Title: "super", Year: 2004, Genre: "Romance"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.criteria.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrEmptyCriteria)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMovieSearchCriteriaGenreCode(t *testing.T) {
	require.Equal(t, GenreRomance, MovieSearchCriteria{Genre: "Romance"}.GenreCode())
	require.Equal(t, GenreSuperHero, MovieSearchCriteria{Genre: "Marvel"}.GenreCode())
	require.Equal(t, GenreUnknown, MovieSearchCriteria{Genre: "nope"}.GenreCode())
	require.Equal(t, GenreUnknown, MovieSearchCriteria{}.GenreCode())
}
