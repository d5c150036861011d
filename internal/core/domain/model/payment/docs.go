// Package payment provides the payment confirmation state machine applied
// independently to the service invoice and the delivery fee of an order.
//
// The package includes:
//   - State: Pending -> Submitted -> Confirmed, with a Pending -> Confirmed
//     fast path for cash handled by staff
//   - Method: how the customer pays, which decides whether a proof reference
//     is required before confirmation
//
// The state machine itself is method-agnostic; whether a transition demands a
// proof reference is enforced by the order aggregate, which knows the order's
// payment method.
package payment
