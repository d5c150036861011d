package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new laundry order.
// The service and delivery-mode references are resolved against the catalog
// by the handler; the command carries only the customer's selections.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, shopID, serviceID, modeID, []string{"delicates"}, payment.MethodCash)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	customerID     kernel.UUID
	shopID         kernel.UUID
	serviceID      kernel.UUID
	deliveryModeID kernel.UUID
	addOns         []string
	paymentMethod  payment.Method

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new laundry order.
// Validates every identifier and the payment method.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	shopID kernel.UUID,
	serviceID kernel.UUID,
	deliveryModeID kernel.UUID,
	addOns []string,
	paymentMethod payment.Method,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setID(&cmd.orderID, orderID),
		cmd.setID(&cmd.customerID, customerID),
		cmd.setID(&cmd.shopID, shopID),
		cmd.setID(&cmd.serviceID, serviceID),
		cmd.setID(&cmd.deliveryModeID, deliveryModeID),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.addOns = addOns
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ShopID returns the shop handling the order.
func (c CreateOrderCommand) ShopID() kernel.UUID {
	return c.shopID
}

// ServiceID returns the chosen catalog service.
func (c CreateOrderCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

// DeliveryModeID returns the chosen catalog delivery mode.
func (c CreateOrderCommand) DeliveryModeID() kernel.UUID {
	return c.deliveryModeID
}

// AddOns returns the fabric and add-on selections.
func (c CreateOrderCommand) AddOns() []string {
	return c.addOns
}

// PaymentMethod returns how the customer pays.
func (c CreateOrderCommand) PaymentMethod() payment.Method {
	return c.paymentMethod
}

func (c *CreateOrderCommand) setID(field *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	*field = id
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.paymentMethod = method
	return nil
}
