package engine

import (
	"testing"

	"moviehub/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func intptr(i int) *int { return &i }

func floatptr(f float64) *float64 { return &f }

func testCatalog() []*entity.Movie {
	return []*entity.Movie{
		newMovie("The Dark Knight", "Christopher Nolan", "Action", 2008, 9.0, "Batman faces the Joker"),
		newMovie("Inception", "Christopher Nolan", "Sci-Fi", 2010, 8.8, "A thief enters dreams"),
		newMovie("Amelie", "Jean-Pierre Jeunet", "Romance", 2001, 8.3, "A shy waitress in Paris"),
		newMovie("Parasite", "Bong Joon-ho", "Thriller", 2019, 8.5, "Two families collide"),
	}
}

func newMovie(title, director, genre string, year int, rating float64, description string) *entity.Movie {
	return &entity.Movie{
		Base:        entity.Base{ID: uuid.New()},
		Title:       title,
		Director:    director,
		Genre:       genre,
		Year:        year,
		Rating:      rating,
		Description: strptr(description),
	}
}

func TestFilterMoviesQuery(t *testing.T) {
	movies := testCatalog()

	tests := []struct {
		name       string
		query      string
		wantTitles []string
	}{
		{"title substring", "dark", []string{"The Dark Knight"}},
		{"case insensitive", "DARK", []string{"The Dark Knight"}},
		{"director substring", "nolan", []string{"The Dark Knight", "Inception"}},
		{"description substring", "waitress", []string{"Amelie"}},
		{"genre substring", "thrill", []string{"Parasite"}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterMovies(movies, MovieFilter{Query: tt.query})

			var titles []string
			for _, m := range got {
				titles = append(titles, m.Title)
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}

func TestFilterMoviesFields(t *testing.T) {
	movies := testCatalog()

	t.Run("genre exact case-insensitive", func(t *testing.T) {
		got := FilterMovies(movies, MovieFilter{Genre: "sci-fi"})
		require.Len(t, got, 1)
		assert.Equal(t, "Inception", got[0].Title)
	})

	t.Run("year exact", func(t *testing.T) {
		got := FilterMovies(movies, MovieFilter{Year: intptr(2019)})
		require.Len(t, got, 1)
		assert.Equal(t, "Parasite", got[0].Title)
	})

	t.Run("min rating inclusive", func(t *testing.T) {
		got := FilterMovies(movies, MovieFilter{MinRating: floatptr(8.5)})
		require.Len(t, got, 3)
	})

	t.Run("combined filters", func(t *testing.T) {
		got := FilterMovies(movies, MovieFilter{Query: "nolan", MinRating: floatptr(8.9)})
		require.Len(t, got, 1)
		assert.Equal(t, "The Dark Knight", got[0].Title)
	})

	t.Run("empty filter returns everything", func(t *testing.T) {
		got := FilterMovies(movies, MovieFilter{})
		assert.Len(t, got, len(movies))
	})
}

func TestMovieFilterIsZero(t *testing.T) {
	assert.True(t, MovieFilter{}.IsZero())
	assert.False(t, MovieFilter{Query: "x"}.IsZero())
	assert.False(t, MovieFilter{Genre: "Action"}.IsZero())
	assert.False(t, MovieFilter{Year: intptr(2000)}.IsZero())
	assert.False(t, MovieFilter{MinRating: floatptr(5)}.IsZero())
}

func TestSortMovies(t *testing.T) {
	movies := testCatalog()

	t.Run("default title ascending case-insensitive", func(t *testing.T) {
		got := SortMovies(movies, "")
		assert.Equal(t, "Amelie", got[0].Title)
		assert.Equal(t, "Inception", got[1].Title)
		assert.Equal(t, "Parasite", got[2].Title)
		assert.Equal(t, "The Dark Knight", got[3].Title)
	})

	t.Run("year descending", func(t *testing.T) {
		got := SortMovies(movies, SortByYear)
		assert.Equal(t, 2019, got[0].Year)
		assert.Equal(t, 2001, got[3].Year)
	})

	t.Run("rating descending", func(t *testing.T) {
		got := SortMovies(movies, SortByRating)
		assert.Equal(t, "The Dark Knight", got[0].Title)
		assert.Equal(t, "Amelie", got[3].Title)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		first := movies[0].Title
		SortMovies(movies, SortByRating)
		assert.Equal(t, first, movies[0].Title)
	})

	t.Run("stable tie-break keeps source order", func(t *testing.T) {
		tied := []*entity.Movie{
			newMovie("B Movie", "X", "Drama", 2000, 7.0, ""),
			newMovie("A Movie", "Y", "Drama", 2000, 7.0, ""),
		}
		got := SortMovies(tied, SortByRating)
		assert.Equal(t, "B Movie", got[0].Title)
		assert.Equal(t, "A Movie", got[1].Title)
	})
}

func TestSearchThenSortScenario(t *testing.T) {
	// "dark" against a catalog with The Dark Knight and three unrelated
	// titles returns exactly the one movie.
	movies := testCatalog()

	filtered := FilterMovies(movies, MovieFilter{Query: "dark"})
	sorted := SortMovies(filtered, SortByRating)
	page := Paginate(sorted, 1, 10)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "The Dark Knight", page.Items[0].Title)
	assert.Equal(t, int64(1), page.TotalCount)
}
