package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/magiconair/properties"
)

// Fetcher retrieves the UTF-8 text of a properties document identified by a
// URL. Fetch is called at most once per Build and is never retried; a failure
// aborts the build.
type Fetcher interface {
	Fetch(rawURL string) (string, error)
}

// urlFetcher is the default Fetcher. It supports http(s) URLs, file URLs and
// bare filesystem paths.
type urlFetcher struct {
	client *resty.Client
}

func newURLFetcher() *urlFetcher {
	return &urlFetcher{
		client: resty.New().SetTimeout(30 * time.Second),
	}
}

func (f *urlFetcher) Fetch(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	switch parsed.Scheme {
	case "http", "https":
		resp, err := f.client.R().Get(rawURL)
		if err != nil {
			return "", fmt.Errorf("GET %s: %w", rawURL, err)
		}
		if resp.IsError() {
			return "", fmt.Errorf("GET %s: unexpected status %s", rawURL, resp.Status())
		}
		return resp.String(), nil
	case "file":
		return readLocalFile(parsed.Path)
	default:
		// no scheme: treat the whole string as a filesystem path
		return readLocalFile(rawURL)
	}
}

func readLocalFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading properties file: %w", err)
	}
	return string(data), nil
}

// parseProperties parses Java properties-format content into raw key/value
// pairs. Expansion is disabled: the builder's own single-pass interpolation
// is the only substitution ever applied to configuration values.
func parseProperties(content string) (map[string]string, error) {
	loader := properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	parsed, err := loader.LoadBytes([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("error parsing properties content: %w", err)
	}
	return parsed.Map(), nil
}
