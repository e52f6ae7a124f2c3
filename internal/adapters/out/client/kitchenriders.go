package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// KitchenRidersClient implements the DeliveryDispatcher port against the
// kitchen riders courier service. Dispatch is fire-and-forget: a 2xx answer
// means the courier request was taken, anything else fails the acceptance.
type KitchenRidersClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewKitchenRidersClient creates a courier dispatcher for the given service URL.
func NewKitchenRidersClient(baseURL string, httpClient *http.Client) *KitchenRidersClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &KitchenRidersClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// deliveryRequest is the wire format of a courier request.
type deliveryRequest struct {
	OrderID         string          `json:"orderId"`
	Amount          decimal.Decimal `json:"amount"`
	DeliveryAddress string          `json:"deliveryAddress"`
}

// RequestDelivery asks the courier service to pick up the given order.
func (c *KitchenRidersClient) RequestDelivery(
	ctx context.Context,
	orderID kernel.UUID,
	amount decimal.Decimal,
	deliveryAddress string,
) error {
	payload, err := json.Marshal(deliveryRequest{
		OrderID:         orderID.String(),
		Amount:          amount,
		DeliveryAddress: deliveryAddress,
	})
	if err != nil {
		return err
	}

	endpoint := c.baseURL + "/deliveries"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("kitchen riders request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("kitchen riders returned status %d", resp.StatusCode)
	}

	return nil
}
