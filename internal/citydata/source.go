// Package citydata talks to the external city/population data source.
package citydata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"citysearch/internal/domain"
	"citysearch/internal/logging"
)

// DefaultEndpoint is the public city population endpoint
const DefaultEndpoint = "https://countriesnow.space/api/v0.1/countries/population/cities"

var httpLog = logging.ForComponent(logging.CompHTTP)

// Source loads the complete suggestion data set
type Source interface {
	Load(ctx context.Context) ([]domain.Suggestion, error)
	// Name identifies the source in logs and errors
	Name() string
}

// envelope is the response shape: { "error": false, "msg": "...", "data": [...] }
type envelope struct {
	Error bool                `json:"error"`
	Msg   string              `json:"msg"`
	Data  []domain.Suggestion `json:"data"`
}

func decode(name string, r io.Reader) ([]domain.Suggestion, error) {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, &ParseError{Source: name, Err: err}
	}
	if env.Error {
		return nil, &FetchError{URL: name, Msg: env.Msg}
	}
	if env.Data == nil {
		return nil, &ParseError{Source: name, Err: fmt.Errorf("missing data field")}
	}
	return env.Data, nil
}

// HTTPSource fetches the data set with a parameterless GET
type HTTPSource struct {
	URL    string
	client *http.Client
}

// NewHTTPSource creates a source for url. A zero timeout means requests
// are never timed out by the client.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	client := cleanhttp.DefaultPooledClient()
	client.Timeout = timeout
	return &HTTPSource{URL: url, client: client}
}

func (s *HTTPSource) Name() string { return s.URL }

// Load performs the GET and decodes the envelope
func (s *HTTPSource) Load(ctx context.Context) ([]domain.Suggestion, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, &FetchError{URL: s.URL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: s.URL, Err: err}
	}
	defer resp.Body.Close()

	httpLog.Debug("response",
		slog.String("url", s.URL),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the pooled connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{URL: s.URL, StatusCode: resp.StatusCode}
	}

	return decode(s.URL, resp.Body)
}

// FileSource reads the same JSON envelope from a local file
type FileSource struct {
	Path string
}

func (s *FileSource) Name() string { return s.Path }

func (s *FileSource) Load(ctx context.Context) ([]domain.Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{URL: s.Path, Err: err}
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, &FetchError{URL: s.Path, Err: err}
	}
	defer f.Close()
	return decode(s.Path, f)
}
