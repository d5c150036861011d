// Package catalog resolves service and delivery-mode capability flags from
// the catalog service over HTTP. The workflow engine calls it exactly once
// per order, at creation; the resolved flags travel with the order from then
// on.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// Client implements ports.CatalogClient against the catalog's JSON API.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a catalog client for the given base URL.
func NewClient(baseURL string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		baseURL: baseURL,
		client:  client,
	}
}

type serviceResponse struct {
	Wash  bool `json:"wash"`
	Dry   bool `json:"dry"`
	Press bool `json:"press"`
	Fold  bool `json:"fold"`
}

type deliveryModeResponse struct {
	Pickup       bool `json:"pickup"`
	Delivery     bool `json:"delivery"`
	FleetInHouse bool `json:"fleet_in_house"`
}

// GetServiceComposition resolves the wash/dry/press/fold flags of a catalog service.
func (c *Client) GetServiceComposition(ctx context.Context, serviceID kernel.UUID) (order.ServiceComposition, error) {
	var response serviceResponse
	if err := c.getJSON(ctx, "/api/v1/services/"+serviceID.String(), "service", serviceID, &response); err != nil {
		return order.ServiceComposition{}, err
	}

	return order.NewServiceComposition(response.Wash, response.Dry, response.Press, response.Fold)
}

// GetDeliveryMode resolves the pickup/delivery/fleet flags of a catalog delivery mode.
func (c *Client) GetDeliveryMode(ctx context.Context, deliveryModeID kernel.UUID) (order.DeliveryMode, error) {
	var response deliveryModeResponse
	if err := c.getJSON(ctx, "/api/v1/delivery-modes/"+deliveryModeID.String(), "delivery mode", deliveryModeID, &response); err != nil {
		return order.DeliveryMode{}, err
	}

	return order.NewDeliveryMode(response.Pickup, response.Delivery, response.FleetInHouse)
}

func (c *Client) getJSON(ctx context.Context, path, kind string, id kernel.UUID, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request for %s %s: %w", kind, id, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errs.NewObjectNotFoundError(kind, id.String())
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("catalog request for %s %s: unexpected status %d", kind, id, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("catalog response for %s %s: %w", kind, id, err)
	}

	return nil
}
