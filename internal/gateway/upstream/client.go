// Package upstream is the pass-through client for the third-party movie
// metadata API. It owns transport concerns the core must not carry:
// timeouts, a circuit breaker, and translation of upstream failures into
// the application error kinds.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"moviehub/pkg/apperrors"
	"moviehub/pkg/utils"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// Movie is the upstream representation; it is passed through, not mapped
// onto the local catalog.
type Movie struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Overview    string   `json:"overview"`
	ReleaseDate string   `json:"release_date"`
	VoteAverage float64  `json:"vote_average"`
	VoteCount   int64    `json:"vote_count"`
	PosterPath  string   `json:"poster_path"`
	GenreIDs    []int64  `json:"genre_ids,omitempty"`
	Genres      []string `json:"genres,omitempty"`
}

type MoviePage struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int64   `json:"total_results"`
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
	log     *zap.Logger
}

func NewClient(config utils.UpstreamConfig, log *zap.Logger) *Client {
	settings := gobreaker.Settings{
		Name:    "upstream-metadata",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// 404s and bad requests are answers, not outages.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, apperrors.ErrNotFound) ||
				errors.Is(err, apperrors.ErrInvalidArgument)
		},
	}

	return &Client{
		baseURL: config.BaseURL,
		apiKey:  config.APIKey,
		http: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		breaker: gobreaker.NewCircuitBreaker[[]byte](settings),
		log:     log.With(zap.String("gateway", "upstream")),
	}
}

// Popular proxies the upstream discovery listing.
func (c *Client) Popular(ctx context.Context, page int) (*MoviePage, error) {
	return c.fetchPage(ctx, "/movie/popular", url.Values{
		"page": {strconv.Itoa(page)},
	})
}

// Search proxies upstream title search.
func (c *Client) Search(ctx context.Context, query string, page int) (*MoviePage, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", apperrors.ErrInvalidArgument)
	}

	return c.fetchPage(ctx, "/search/movie", url.Values{
		"query": {query},
		"page":  {strconv.Itoa(page)},
	})
}

// Details proxies the upstream movie detail lookup.
func (c *Client) Details(ctx context.Context, id int64) (*Movie, error) {
	body, err := c.get(ctx, fmt.Sprintf("/movie/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var movie Movie
	if err := json.Unmarshal(body, &movie); err != nil {
		return nil, fmt.Errorf("decode upstream movie: %w", err)
	}
	return &movie, nil
}

// Recommendations proxies the upstream recommendations listing for a movie.
func (c *Client) Recommendations(ctx context.Context, id int64, page int) (*MoviePage, error) {
	return c.fetchPage(ctx, fmt.Sprintf("/movie/%d/recommendations", id), url.Values{
		"page": {strconv.Itoa(page)},
	})
}

func (c *Client) fetchPage(ctx context.Context, path string, params url.Values) (*MoviePage, error) {
	body, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	var page MoviePage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("decode upstream page: %w", err)
	}
	return &page, nil
}

// get performs one upstream request through the breaker and translates the
// failure modes. The single retry lives in the breaker's half-open probe;
// the core never retries.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.doGet(ctx, path, params)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.log.Warn("Upstream breaker open", zap.String("path", path))
			return nil, fmt.Errorf("%s: %w", path, apperrors.ErrUpstreamUnavailable)
		}
		return nil, err
	}
	return body, nil
}

func (c *Client) doGet(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("Upstream request failed", zap.Error(err), zap.String("path", path))
		return nil, fmt.Errorf("%s: %w", path, apperrors.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", path, apperrors.ErrNotFound)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		c.log.Error("Upstream rejected API key", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("upstream auth rejected: %w", apperrors.ErrUpstreamUnavailable)
	case resp.StatusCode >= 500:
		c.log.Warn("Upstream server error", zap.Int("status", resp.StatusCode), zap.String("path", path))
		return nil, fmt.Errorf("upstream status %d: %w", resp.StatusCode, apperrors.ErrUpstreamUnavailable)
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("%w: upstream rejected request with status %d", apperrors.ErrInvalidArgument, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream response: %w", err)
	}

	return body, nil
}
