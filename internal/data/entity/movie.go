package entity

type Movie struct {
	Base
	Title             string  `db:"title"`
	Description       *string `db:"description"`
	Genre             string  `db:"genre"`
	Director          string  `db:"director"`
	Year              int     `db:"release_year"`
	Rating            float64 `db:"rating"` // catalog scale, 0-10
	DurationInMinutes int     `db:"duration_in_minutes"`
	PosterURL         *string `db:"poster_url"`
}
