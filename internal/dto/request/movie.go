package request

type CreateMovieRequest struct {
	Title             string  `json:"title" validate:"required,max=200"`
	Description       *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Genre             string  `json:"genre" validate:"required,max=50"`
	Director          string  `json:"director" validate:"required,max=100"`
	Year              int     `json:"year" validate:"required,min=1888"`
	Rating            float64 `json:"rating" validate:"min=0,max=10"`
	DurationInMinutes int     `json:"duration_in_minutes" validate:"required,min=1"`
	PosterURL         *string `json:"poster_url,omitempty" validate:"omitempty,url"`
}

type UpdateMovieRequest struct {
	Title             *string  `json:"title,omitempty" validate:"omitempty,max=200"`
	Description       *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Genre             *string  `json:"genre,omitempty" validate:"omitempty,max=50"`
	Director          *string  `json:"director,omitempty" validate:"omitempty,max=100"`
	Year              *int     `json:"year,omitempty" validate:"omitempty,min=1888"`
	Rating            *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=10"`
	DurationInMinutes *int     `json:"duration_in_minutes,omitempty" validate:"omitempty,min=1"`
	PosterURL         *string  `json:"poster_url,omitempty" validate:"omitempty,url"`
}

// ListMoviesRequest is the typed, already-parsed form of the movie listing
// query parameters. Handlers build it once and the service never looks at
// raw query values.
type ListMoviesRequest struct {
	Search    string
	Genre     string
	Year      *int
	MinRating *float64
	SortBy    string `validate:"omitempty,oneof=title year rating"`
	PaginatedRequest
}
