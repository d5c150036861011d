// Package order provides domain entities and business logic for the laundry
// order lifecycle. It implements the Order aggregate root with its resolved
// workflow path, per-track stage pointers, and the stage-event records that
// form the order's history.
//
// The package includes:
//   - Order: The aggregate root holding identity, capability flags, the
//     workflow path, and an explicit current-stage pointer per track
//   - Stage and Track: The stage vocabulary and the parallel tracks a stage
//     event can belong to
//   - WorkflowPath: The linear stage sequence resolved once at order creation
//     from the service composition and delivery mode
//   - StageEvent: One immutable history record, ordered by a per-track
//     sequence number assigned at persistence time
//   - Rejection: The mandatory reason record behind a rejected order
//
// Key business rules:
//   - The path is resolved exactly once and never changes afterwards
//   - Transitions move one position forward; the only skip allowed is
//     fast-forwarding to the terminal stage
//   - Cancelled and Rejected are reachable from any non-final stage;
//     Rejected always carries a reason
//   - Logistics flows are strictly linear and force ToWeigh or Completed on
//     the order-status track when they arrive
//   - Payment tracks (invoice, delivery fee) are armed by weighing and the
//     delivery handoff; non-cash confirmation requires a proof reference
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
