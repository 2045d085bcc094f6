package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotFound is returned when the catalog has nothing to offer.
var ErrNotFound = errors.New("not found")

const userAgent = "daylist/1.0 (https://github.com/llehouerou/daylist)"

// Options configures a Client.
type Options struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client is a catalog API client. Downloads go through its cache.
type Client struct {
	baseURL    string
	token      string
	timeout    time.Duration
	httpClient *http.Client
	cache      *Cache
}

// NewClient creates a client storing downloads in cache. opts.Timeout bounds
// API calls only; downloads are bounded by their context.
func NewClient(opts Options, cache *Cache) *Client {
	return &Client{
		baseURL:    opts.BaseURL,
		token:      opts.Token,
		timeout:    opts.Timeout,
		httpClient: &http.Client{},
		cache:      cache,
	}
}

type trackResult struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	DurationMS  int64  `json:"duration_ms"`
	DownloadURL string `json:"download_url"`
}

func (c *Client) toTrack(r trackResult) *Track {
	return NewTrack(r.ID, r.Title, r.Artist, time.Duration(r.DurationMS)*time.Millisecond, r.DownloadURL, c)
}

// FetchDailyPlaylist returns the tracks of today's playlist.
func (c *Client) FetchDailyPlaylist(ctx context.Context) ([]*Track, error) {
	var results []trackResult
	if err := c.getJSON(ctx, "/playlists/daily", &results); err != nil {
		return nil, err
	}

	tracks := make([]*Track, 0, len(results))
	for _, r := range results {
		tracks = append(tracks, c.toTrack(r))
	}
	return tracks, nil
}

// FetchRandomTrack returns one track picked by the catalog.
func (c *Client) FetchRandomTrack(ctx context.Context) (*Track, error) {
	var result trackResult
	if err := c.getJSON(ctx, "/tracks/random", &result); err != nil {
		return nil, err
	}
	return c.toTrack(result), nil
}

// Download implements Downloader.
func (c *Client) Download(ctx context.Context, t *Track) (string, error) {
	if c.cache == nil {
		return "", ErrNoDownloader
	}
	return c.cache.Fetch(ctx, t.Title, func(ctx context.Context) (io.ReadCloser, error) {
		return c.open(ctx, t.URL)
	})
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := c.open(ctx, c.baseURL+path)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) open(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	return resp.Body, nil
}
