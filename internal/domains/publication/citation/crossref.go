package citation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client fetches citation counts from the Crossref REST API. Crossref asks
// polite clients to identify themselves with a mailto parameter.
type Client struct {
	httpClient *http.Client
	baseURL    string
	mailto     string
}

func NewClient(baseURL, mailto string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		mailto:     mailto,
	}
}

// NormalizeDOI reduces any authored DOI form (bare, doi: prefixed, or a
// full resolver URL) to the canonical "10.x/..." identifier.
func NormalizeDOI(raw string) string {
	doi := strings.TrimSpace(raw)
	doi = strings.TrimPrefix(doi, "https://doi.org/")
	doi = strings.TrimPrefix(doi, "http://doi.org/")
	doi = strings.TrimPrefix(doi, "https://dx.doi.org/")
	doi = strings.TrimPrefix(doi, "http://dx.doi.org/")
	doi = strings.TrimPrefix(doi, "doi:")
	return doi
}

type worksResponse struct {
	Message struct {
		IsReferencedByCount int `json:"is-referenced-by-count"`
	} `json:"message"`
}

// FetchCount looks up how often the DOI's work has been cited.
func (c *Client) FetchCount(ctx context.Context, doi string) (int, error) {
	doi = NormalizeDOI(doi)
	if doi == "" {
		return 0, fmt.Errorf("empty DOI")
	}

	endpoint := fmt.Sprintf("%s/works/%s", c.baseURL, url.PathEscape(doi))
	if c.mailto != "" {
		endpoint += "?mailto=" + url.QueryEscape(c.mailto)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("build crossref request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("crossref request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("crossref returned status %d for %s", resp.StatusCode, doi)
	}

	var body worksResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode crossref response: %w", err)
	}

	return body.Message.IsReferencedByCount, nil
}
