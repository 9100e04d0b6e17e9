package engine

import (
	"sort"
	"strings"

	"moviehub/internal/data/entity"
)

// Sort keys for movie listings.
const (
	SortByTitle  = "title"
	SortByYear   = "year"
	SortByRating = "rating"
)

// MovieFilter describes the optional movie listing filters. Zero values
// mean "not set".
type MovieFilter struct {
	Query     string   // substring match across title, director, description, genre
	Genre     string   // exact match, case-insensitive
	Year      *int     // exact match
	MinRating *float64 // catalog rating >= threshold
}

// IsZero reports whether no filter field is set.
func (f MovieFilter) IsZero() bool {
	return f.Query == "" && f.Genre == "" && f.Year == nil && f.MinRating == nil
}

// FilterMovies returns the movies matching every set filter field, keeping
// source order.
func FilterMovies(movies []*entity.Movie, filter MovieFilter) []*entity.Movie {
	if filter.IsZero() {
		return movies
	}

	matched := make([]*entity.Movie, 0, len(movies))
	for _, movie := range movies {
		if matchesFilter(movie, filter) {
			matched = append(matched, movie)
		}
	}
	return matched
}

func matchesFilter(movie *entity.Movie, filter MovieFilter) bool {
	if filter.Query != "" && !matchesQuery(movie, filter.Query) {
		return false
	}
	if filter.Genre != "" && !strings.EqualFold(movie.Genre, filter.Genre) {
		return false
	}
	if filter.Year != nil && movie.Year != *filter.Year {
		return false
	}
	if filter.MinRating != nil && movie.Rating < *filter.MinRating {
		return false
	}
	return true
}

// matchesQuery is a case-insensitive substring match against the text
// fields; any single field matching includes the movie.
func matchesQuery(movie *entity.Movie, query string) bool {
	q := strings.ToLower(query)

	if strings.Contains(strings.ToLower(movie.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(movie.Director), q) {
		return true
	}
	if movie.Description != nil && strings.Contains(strings.ToLower(*movie.Description), q) {
		return true
	}
	if strings.Contains(strings.ToLower(movie.Genre), q) {
		return true
	}
	return false
}

// SortMovies orders movies by the given key: title (case-insensitive, the
// default), year descending, or rating descending. The sort is stable, so
// ties keep source order.
func SortMovies(movies []*entity.Movie, sortBy string) []*entity.Movie {
	sorted := make([]*entity.Movie, len(movies))
	copy(sorted, movies)

	switch sortBy {
	case SortByYear:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Year > sorted[j].Year
		})
	case SortByRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Title) < strings.ToLower(sorted[j].Title)
		})
	}

	return sorted
}
