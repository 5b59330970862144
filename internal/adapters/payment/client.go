// Package payment provides ValueTransfer implementations: an HTTP client for
// an external payment gateway and an in-memory account book for development
// and tests.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"chainpass/internal/domain"
)

type httpTransfer struct {
	client  *http.Client
	baseURL string
}

// NewHTTPTransfer returns a ValueTransfer that POSTs transfers to an external
// payment gateway. A non-2xx response is a failed transfer; the gateway
// guarantees a failed request has no partial effect.
func NewHTTPTransfer(client *http.Client, baseURL string) domain.ValueTransfer {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpTransfer{client: client, baseURL: baseURL}
}

type transferRequest struct {
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

func (t *httpTransfer) Transfer(ctx context.Context, to string, amount int64) error {
	body, err := json.Marshal(transferRequest{To: to, Amount: amount})
	if err != nil {
		return fmt.Errorf("failed to encode transfer request: %w", err)
	}
	url := t.baseURL + "/transfers"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach payment gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("payment gateway returned status: %d", resp.StatusCode)
	}
	return nil
}
