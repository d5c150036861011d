package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// CatalogClient supplies the capability flags behind a catalog service and a
// delivery mode. It is consulted exactly once, at order creation; the
// resolved flags are stored on the order and never re-fetched.
type CatalogClient interface {
	// GetServiceComposition resolves the wash/dry/press/fold flags of a
	// catalog service.
	GetServiceComposition(ctx context.Context, serviceID kernel.UUID) (order.ServiceComposition, error)

	// GetDeliveryMode resolves the pickup/delivery/fleet flags of a catalog
	// delivery mode.
	GetDeliveryMode(ctx context.Context, deliveryModeID kernel.UUID) (order.DeliveryMode, error)
}
