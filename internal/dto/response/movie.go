package response

import (
	"moviehub/internal/data/entity"
)

type MovieResponse struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	Description       *string `json:"description,omitempty"`
	Genre             string  `json:"genre"`
	Director          string  `json:"director"`
	Year              int     `json:"year"`
	Rating            float64 `json:"rating"`
	DurationInMinutes int     `json:"duration_in_minutes"`
	PosterURL         *string `json:"poster_url,omitempty"`
}

type MovieDetailResponse struct {
	MovieResponse
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

// Helper converter
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:                movie.ID.String(),
		Title:             movie.Title,
		Description:       movie.Description,
		Genre:             movie.Genre,
		Director:          movie.Director,
		Year:              movie.Year,
		Rating:            movie.Rating,
		DurationInMinutes: movie.DurationInMinutes,
		PosterURL:         movie.PosterURL,
	}
}
