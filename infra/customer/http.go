// Package customer implements the customer directory client over HTTP.
package customer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mboissel/ledger/pkg/domain/customer"
)

// HTTPDirectory fetches customers from the directory's REST endpoint. The
// ledger calls it once per account opening and never for any other
// operation.
type HTTPDirectory struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPDirectory creates a directory client for the given base URL.
func NewHTTPDirectory(baseURL string, timeout time.Duration, logger *slog.Logger) *HTTPDirectory {
	return &HTTPDirectory{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Fetch implements customer.Directory. A 404 from the directory is
// customer.ErrNotFound; any other failure, including transport errors and
// undecodable bodies, degrades to customer.ErrFetchFailed.
func (d *HTTPDirectory) Fetch(ctx context.Context, id string) (*customer.Customer, error) {
	url := fmt.Sprintf("%s/customers/%s", d.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", customer.ErrFetchFailed, err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		d.logger.Error("customer directory request failed", "customer", id, "error", err)
		return nil, fmt.Errorf("%w: %v", customer.ErrFetchFailed, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, customer.ErrNotFound
	case resp.StatusCode >= http.StatusBadRequest:
		d.logger.Error("customer directory returned error status", "customer", id, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: directory returned status %d", customer.ErrFetchFailed, resp.StatusCode)
	}

	var c customer.Customer
	if err := json.NewDecoder(resp.Body).Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: %v", customer.ErrFetchFailed, err)
	}
	return &c, nil
}
