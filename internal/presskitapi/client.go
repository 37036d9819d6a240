package presskitapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const maxDocumentBytes = 4 << 20

var (
	// ErrNotFound signals the API has no presskit for the slug.
	ErrNotFound = errors.New("presskit not found")
	// ErrInvalidSlug rejects slugs that cannot name a tenant.
	ErrInvalidSlug = errors.New("invalid presskit slug")
	// ErrMalformedDocument marks a successful response whose body is not JSON.
	ErrMalformedDocument = errors.New("malformed presskit document")
	// ErrDocumentTooLarge rejects bodies over maxDocumentBytes.
	ErrDocumentTooLarge = errors.New("presskit document too large")

	slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,62}$`)
)

// Source yields raw presskit documents as decoded JSON.
type Source interface {
	Fetch(ctx context.Context, slug, lang string) (any, error)
}

// ValidSlug reports whether slug has the shape of a tenant identifier.
func ValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

// Client reads presskit documents from the presskit API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a presskit API client rooted at baseURL
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch retrieves the raw document for slug in lang
func (c *Client) Fetch(ctx context.Context, slug, lang string) (any, error) {
	if !ValidSlug(slug) {
		return nil, ErrInvalidSlug
	}

	apiURL := c.baseURL + "/presskits/" + url.PathEscape(slug)
	if lang != "" {
		apiURL += "?" + url.Values{"lang": []string{lang}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("presskit api error: %s - %s", resp.Status, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if len(body) > maxDocumentBytes {
		return nil, fmt.Errorf("%w: over %d bytes", ErrDocumentTooLarge, maxDocumentBytes)
	}
	return Decode(body)
}

// Decode parses a presskit document. The result is whatever JSON value the
// body holds; its shape is left to the normalizers.
func Decode(body []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return doc, nil
}
