// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The resolved workflow path is stored as an encoded string so the aggregate
// never re-derives it from the capability flags after creation. Per-track
// current positions are denormalized columns for cheap state queries; the
// stage-event log remains the source of truth for history.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID `gorm:"type:uuid;index"`
	ShopID         uuid.UUID `gorm:"type:uuid;index"`
	ServiceID      uuid.UUID `gorm:"type:uuid"`
	DeliveryModeID uuid.UUID `gorm:"type:uuid"`

	RequiresWash  bool
	RequiresDry   bool
	RequiresPress bool
	RequiresFold  bool

	PickupRequired   bool
	DeliveryRequired bool
	FleetInHouse     bool

	AddOns        string
	PaymentMethod int
	WeightGrams   *int

	Path            string
	CurrentStage    int `gorm:"index"`
	ProcessingStage int
	DeliveryStage   int

	InvoiceState     int
	DeliveryFeeState int

	RejectionReason *string
	RejectionNote   *string

	CreatedAt time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

const addOnSeparator = ","

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional weight and rejection record.
func fromDomain(aggregate *order.Order) OrderDTO {
	comp := aggregate.Composition()
	mode := aggregate.DeliveryMode()

	var rejectionReason, rejectionNote *string
	if rejection := aggregate.Rejection(); rejection != nil {
		reason := rejection.Reason()
		note := rejection.Note()
		rejectionReason = &reason
		rejectionNote = &note
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		ShopID:         aggregate.ShopID().Bytes(),
		ServiceID:      aggregate.ServiceID().Bytes(),
		DeliveryModeID: aggregate.DeliveryModeID().Bytes(),

		RequiresWash:  comp.RequiresWash(),
		RequiresDry:   comp.RequiresDry(),
		RequiresPress: comp.RequiresPress(),
		RequiresFold:  comp.RequiresFold(),

		PickupRequired:   mode.PickupRequired(),
		DeliveryRequired: mode.DeliveryRequired(),
		FleetInHouse:     mode.FleetInHouse(),

		AddOns:        strings.Join(aggregate.AddOns(), addOnSeparator),
		PaymentMethod: int(aggregate.PaymentMethod()),
		WeightGrams:   aggregate.WeightGrams(),

		Path:            aggregate.Path().Encode(),
		CurrentStage:    int(aggregate.CurrentStage()),
		ProcessingStage: int(aggregate.ProcessingStage()),
		DeliveryStage:   int(aggregate.DeliveryStage()),

		InvoiceState:     int(aggregate.InvoiceState()),
		DeliveryFeeState: int(aggregate.DeliveryFeeState()),

		RejectionReason: rejectionReason,
		RejectionNote:   rejectionNote,

		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the resolved path,
// per-track positions and payment states using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}
	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return nil, err
	}
	deliveryModeID, err := kernel.UUIDFromBytes(dto.DeliveryModeID[:])
	if err != nil {
		return nil, err
	}

	comp, err := order.NewServiceComposition(dto.RequiresWash, dto.RequiresDry, dto.RequiresPress, dto.RequiresFold)
	if err != nil {
		return nil, err
	}

	mode, err := order.NewDeliveryMode(dto.PickupRequired, dto.DeliveryRequired, dto.FleetInHouse)
	if err != nil {
		return nil, err
	}

	path, err := order.DecodePath(dto.Path)
	if err != nil {
		return nil, err
	}

	var rejection *order.Rejection
	if dto.RejectionReason != nil {
		var note string
		if dto.RejectionNote != nil {
			note = *dto.RejectionNote
		}

		rejection, err = order.NewRejection(id, *dto.RejectionReason, note)
		if err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(
		id,
		customerID,
		shopID,
		serviceID,
		deliveryModeID,
		comp,
		mode,
		splitAddOns(dto.AddOns),
		payment.Method(dto.PaymentMethod),
		dto.WeightGrams,
		path,
		order.Stage(dto.CurrentStage),
		order.Stage(dto.ProcessingStage),
		order.Stage(dto.DeliveryStage),
		payment.State(dto.InvoiceState),
		payment.State(dto.DeliveryFeeState),
		rejection,
		dto.CreatedAt,
	)
}

func splitAddOns(encoded string) []string {
	if encoded == "" {
		return nil
	}
	return strings.Split(encoded, addOnSeparator)
}
