// Package client provides HTTP implementations of the core's external
// collaborator ports: the profanity screen for customer-facing names and the
// courier dispatch for delivery orders.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const defaultPurgoMalumBaseURL = "https://www.purgomalum.com/service"

// PurgoMalumClient implements the ProfanityChecker port against the free
// PurgoMalum web service. The containsprofanity endpoint answers with a bare
// "true" or "false" body.
type PurgoMalumClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewPurgoMalumClient creates a profanity checker backed by PurgoMalum.
// An empty baseURL selects the public service endpoint.
func NewPurgoMalumClient(baseURL string, httpClient *http.Client) *PurgoMalumClient {
	if baseURL == "" {
		baseURL = defaultPurgoMalumBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &PurgoMalumClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// ContainsProfanity reports whether the given text contains profanity.
// Any transport or protocol failure is returned as an error; callers treat a
// failed check as a failed operation, never as a clean text.
func (c *PurgoMalumClient) ContainsProfanity(ctx context.Context, text string) (bool, error) {
	endpoint := fmt.Sprintf("%s/containsprofanity?text=%s", c.baseURL, url.QueryEscape(text))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("purgomalum request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("purgomalum returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, err
	}

	result, err := strconv.ParseBool(strings.TrimSpace(string(body)))
	if err != nil {
		return false, fmt.Errorf("purgomalum returned unexpected body %q", string(body))
	}

	return result, nil
}
