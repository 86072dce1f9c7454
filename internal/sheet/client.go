package sheet

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Client downloads the published-CSV export of the menu sheet.
type Client struct {
	url  string
	http *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		url: url,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Fetch downloads and parses the sheet. Any failure here is a
// transport failure: the caller keeps its previous menu and surfaces a
// notice instead of a partial model.
func (c *Client) Fetch(ctx context.Context) ([]Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build sheet request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("download sheet: unexpected status %d", resp.StatusCode)
	}

	rows, err := ParseRows(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse sheet: %w", err)
	}
	return rows, nil
}
