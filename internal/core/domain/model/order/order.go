package order

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrNotAwaitingWeighing is returned when a weight is recorded for an order
	// that is not sitting at the weighing stage.
	ErrNotAwaitingWeighing = errors.New("order is not awaiting weighing")
)

// Order is the aggregate root for the laundry order lifecycle. It owns the
// resolved workflow path and an explicit current-stage pointer per track,
// updated transactionally alongside the append-only event log. The pointers
// are stored state, never re-derived by scanning events at read time.
//
// Order follows these invariants:
//   - Identity, customer, shop, service, and delivery-mode references are valid UUIDs
//   - The workflow path is computed once at creation and never changes
//   - Stage transitions follow the path rules (no revisits, no skips except
//     the terminal fast-forward, exception exits from any non-final stage)
//   - A rejection record exists if and only if the order is Rejected
//   - Weight is nullable until measured and mutable only while the order
//     still sits at the weighing stage
//
// All mutation goes through validated methods; the struct uses private fields
// to keep the invariants enforceable.
type Order struct {
	id             kernel.UUID
	customerID     kernel.UUID
	shopID         kernel.UUID
	serviceID      kernel.UUID
	deliveryModeID kernel.UUID

	composition   ServiceComposition
	deliveryMode  DeliveryMode
	addOns        []string
	paymentMethod payment.Method

	weightGrams *int
	createdAt   time.Time

	path WorkflowPath

	// Per-track current pointers. currentStage follows the unified path;
	// the sub-pointers hold the latest stage of their own track.
	currentStage     Stage
	processingStage  Stage
	deliveryStage    Stage
	invoiceState     payment.State
	deliveryFeeState payment.State

	rejection *Rejection

	isConstructed bool
}

// NewOrder creates a new Order and resolves its workflow path.
//
// The path is computed exactly once here, from the capability flags the
// catalog supplied, and is immutable afterwards. The order starts at the
// path's first stage: ToPickup for pickup orders (which also arms the
// incoming logistics flow), ToWeigh for drop-off orders.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	shopID kernel.UUID,
	serviceID kernel.UUID,
	deliveryModeID kernel.UUID,
	composition ServiceComposition,
	deliveryMode DeliveryMode,
	addOns []string,
	paymentMethod payment.Method,
) (*Order, error) {
	if err := errors.Join(
		validateRef("order id", id),
		validateRef("customer id", customerID),
		validateRef("shop id", shopID),
		validateRef("service id", serviceID),
		validateRef("delivery mode id", deliveryModeID),
		composition.Validate(),
		deliveryMode.Validate(),
		paymentMethod.Validate(),
	); err != nil {
		return nil, err
	}

	path := ResolvePath(composition, deliveryMode)

	o := &Order{
		id:             id,
		customerID:     customerID,
		shopID:         shopID,
		serviceID:      serviceID,
		deliveryModeID: deliveryModeID,
		composition:    composition,
		deliveryMode:   deliveryMode,
		addOns:         copyStrings(addOns),
		paymentMethod:  paymentMethod,
		createdAt:      time.Now().UTC(),
		path:           path,
		currentStage:   path.First(),
		isConstructed:  true,
	}

	if deliveryMode.PickupRequired() {
		o.deliveryStage = StageToPickup
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-resolving
// the path. It re-checks the cross-field invariants so corrupted rows are
// rejected at the boundary.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	shopID kernel.UUID,
	serviceID kernel.UUID,
	deliveryModeID kernel.UUID,
	composition ServiceComposition,
	deliveryMode DeliveryMode,
	addOns []string,
	paymentMethod payment.Method,
	weightGrams *int,
	path WorkflowPath,
	currentStage Stage,
	processingStage Stage,
	deliveryStage Stage,
	invoiceState payment.State,
	deliveryFeeState payment.State,
	rejection *Rejection,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		validateRef("order id", id),
		validateRef("customer id", customerID),
		validateRef("shop id", shopID),
		validateRef("service id", serviceID),
		validateRef("delivery mode id", deliveryModeID),
		composition.Validate(),
		deliveryMode.Validate(),
		paymentMethod.Validate(),
		path.Validate(),
		currentStage.Validate(),
	); err != nil {
		return nil, err
	}

	if !path.Contains(currentStage) && !currentStage.IsExceptionExit() {
		return nil, fmt.Errorf("restore order %s: current stage %s: %w", id, currentStage, ErrStageNotInPath)
	}

	if (currentStage == StageRejected) != (rejection != nil) {
		return nil, errs.NewValueIsInvalidError("rejection record must exist exactly when the order is rejected")
	}

	return &Order{
		id:               id,
		customerID:       customerID,
		shopID:           shopID,
		serviceID:        serviceID,
		deliveryModeID:   deliveryModeID,
		composition:      composition,
		deliveryMode:     deliveryMode,
		addOns:           copyStrings(addOns),
		paymentMethod:    paymentMethod,
		weightGrams:      copyIntPtr(weightGrams),
		createdAt:        createdAt,
		path:             path,
		currentStage:     currentStage,
		processingStage:  processingStage,
		deliveryStage:    deliveryStage,
		invoiceState:     invoiceState,
		deliveryFeeState: deliveryFeeState,
		rejection:        rejection,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identity.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// ShopID returns the shop handling the order.
func (o *Order) ShopID() kernel.UUID {
	return o.shopID
}

// ServiceID returns the chosen catalog service.
func (o *Order) ServiceID() kernel.UUID {
	return o.serviceID
}

// DeliveryModeID returns the chosen catalog delivery mode.
func (o *Order) DeliveryModeID() kernel.UUID {
	return o.deliveryModeID
}

// Composition returns the service capability flags resolved at creation.
func (o *Order) Composition() ServiceComposition {
	return o.composition
}

// DeliveryMode returns the delivery-mode flags resolved at creation.
func (o *Order) DeliveryMode() DeliveryMode {
	return o.deliveryMode
}

// AddOns returns a copy of the fabric and add-on selections.
func (o *Order) AddOns() []string {
	return copyStrings(o.addOns)
}

// PaymentMethod returns how the customer pays.
func (o *Order) PaymentMethod() payment.Method {
	return o.paymentMethod
}

// WeightGrams returns the measured weight, or nil until measured.
func (o *Order) WeightGrams() *int {
	return copyIntPtr(o.weightGrams)
}

// CreatedAt returns the creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Path returns the resolved workflow path.
func (o *Order) Path() WorkflowPath {
	return o.path
}

// CurrentStage returns the explicit order-status pointer over the unified path.
func (o *Order) CurrentStage() Stage {
	return o.currentStage
}

// ProcessingStage returns the latest processing stage, or StageUnknown if
// processing has not started.
func (o *Order) ProcessingStage() Stage {
	return o.processingStage
}

// DeliveryStage returns the latest logistics stage, or StageUnknown if no
// logistics flow has started.
func (o *Order) DeliveryStage() Stage {
	return o.deliveryStage
}

// InvoiceState returns the service-invoice payment state,
// payment.Unknown until the track is armed by weighing.
func (o *Order) InvoiceState() payment.State {
	return o.invoiceState
}

// DeliveryFeeState returns the delivery-fee payment state,
// payment.Unknown until the track is armed by the delivery handoff.
func (o *Order) DeliveryFeeState() payment.State {
	return o.deliveryFeeState
}

// Rejection returns the rejection record, or nil if the order is not rejected.
func (o *Order) Rejection() *Rejection {
	return o.rejection
}

// AtPaymentGate reports whether the order is waiting at the stage where
// invoice confirmation is what advances it into processing.
func (o *Order) AtPaymentGate() bool {
	return o.currentStage == StageToWeigh
}

// CheckAdvance decides whether an order-status transition to target would be
// legal right now, without performing it.
func (o *Order) CheckAdvance(target Stage) error {
	return o.path.CheckAdvance(o.currentStage, target)
}

// AdvanceTo moves the order-status pointer to a path stage.
//
// The transition must satisfy the path rules: one position forward, or the
// terminal fast-forward. Exception exits are not accepted here; use Cancel or
// Reject, which carry their own requirements.
//
// Side effects on other tracks are maintained in the same mutation:
// a processing target updates the processing pointer, reaching the delivery
// handoff arms the outgoing logistics flow and the delivery-fee payment track.
func (o *Order) AdvanceTo(target Stage) error {
	if target.IsExceptionExit() {
		return errs.NewValueIsInvalidErrorWithCause(
			"target stage",
			fmt.Errorf("%s must be reached via Cancel or Reject", target),
		)
	}

	if err := o.path.CheckAdvance(o.currentStage, target); err != nil {
		return err
	}

	o.currentStage = target

	if target.IsProcessing() {
		o.processingStage = target
	}

	if target == StageForDelivery {
		o.deliveryStage = StageForDelivery
		if o.deliveryFeeState == payment.Unknown {
			o.deliveryFeeState = payment.Pending
		}
	}

	return nil
}

// Cancel moves the order to the Cancelled exception exit.
// Allowed from any non-final stage; no reason is required.
func (o *Order) Cancel() error {
	if o.currentStage.IsFinal() {
		return ErrOrderIsFinal
	}

	o.currentStage = StageCancelled
	return nil
}

// Reject moves the order to the Rejected exception exit and creates the
// rejection record in the same mutation, keeping the record's existence
// equivalent to the Rejected status. The reason is mandatory.
func (o *Order) Reject(reason, note string) (*Rejection, error) {
	if o.currentStage.IsFinal() {
		return nil, ErrOrderIsFinal
	}

	rejection, err := NewRejection(o.id, reason, note)
	if err != nil {
		return nil, err
	}

	o.currentStage = StageRejected
	o.rejection = rejection
	return rejection, nil
}

// RecordWeight stores the measured weight and arms the invoice payment track.
// Only allowed while the order sits at the weighing stage; re-weighing before
// processing starts overwrites the previous measurement.
func (o *Order) RecordWeight(grams int) error {
	if grams <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%d is not greater than 0", grams))
	}

	if o.currentStage != StageToWeigh {
		return ErrNotAwaitingWeighing
	}

	w := grams
	o.weightGrams = &w
	if o.invoiceState == payment.Unknown {
		o.invoiceState = payment.Pending
	}

	return nil
}

// AdvanceDelivery moves one logistics flow a single step forward and returns
// the order-status stage this step forces, or StageUnknown if none.
//
// The step sequence depends on the direction and the fleet variant (see
// DeliverySteps). Logistics flows are strictly linear: no skips and no
// fast-forward. Third-party booking steps require an attached proof
// reference before they are accepted.
//
// When the target is also a path stage, the order-status pointer follows it,
// so the unified progression stays consistent for later validations. The
// forced stage (ToWeigh after arrival, Completed after the outgoing flow
// finishes) is returned to the caller, which applies it through AdvanceTo so
// the cross-track write shares the transaction.
func (o *Order) AdvanceDelivery(direction Direction, target Stage, hasProof bool) (Stage, error) {
	if err := direction.Validate(); err != nil {
		return StageUnknown, err
	}

	if o.currentStage.IsFinal() {
		return StageUnknown, ErrOrderIsFinal
	}

	if direction == DirectionIncoming && !o.deliveryMode.PickupRequired() {
		return StageUnknown, ErrStageNotInPath
	}
	if direction == DirectionOutgoing && !o.deliveryMode.DeliveryRequired() {
		return StageUnknown, ErrStageNotInPath
	}

	steps := DeliverySteps(direction, o.deliveryMode.FleetInHouse())

	targetIdx := indexOfStage(steps, target)
	if targetIdx < 0 {
		return StageUnknown, ErrStageNotInPath
	}

	currentIdx := indexOfStage(steps, o.deliveryStage)

	if targetIdx <= currentIdx {
		return StageUnknown, &StageAlreadyCompletedError{Current: o.deliveryStage, Requested: target}
	}
	if targetIdx > currentIdx+1 {
		return StageUnknown, &InvalidSkipError{Current: o.deliveryStage, Requested: target}
	}

	if deliveryStepNeedsProof(direction, o.deliveryMode.FleetInHouse(), target) && !hasProof {
		return StageUnknown, errs.NewProofIsRequiredError(fmt.Sprintf("record %s delivery step %s", direction, target))
	}

	o.deliveryStage = target
	if o.path.Contains(target) {
		o.currentStage = target
	}

	return deliveryForcedOrderStage(target), nil
}

// PaymentState returns the state of one payment track.
func (o *Order) PaymentState(track Track) (payment.State, error) {
	switch track {
	case TrackInvoice:
		return o.invoiceState, nil
	case TrackDeliveryPayment:
		return o.deliveryFeeState, nil
	default:
		return payment.Unknown, errs.NewValueIsInvalidErrorWithCause(
			"track",
			fmt.Errorf("%s is not a payment track", track),
		)
	}
}

// SubmitPaymentProof moves a payment track from Pending to Submitted.
// Submission always requires a proof reference, whatever the method.
func (o *Order) SubmitPaymentProof(track Track, hasProof bool) error {
	if !hasProof {
		return errs.NewProofIsRequiredError(fmt.Sprintf("submit %s payment", track))
	}

	state, err := o.PaymentState(track)
	if err != nil {
		return err
	}

	next, err := state.Submit()
	if err != nil {
		return err
	}

	return o.setPaymentState(track, next)
}

// ConfirmPayment moves a payment track to Confirmed.
//
// Cash is confirmed by staff directly from Pending with no proof. Any other
// method needs a proof reference: either one submitted earlier (track is
// Submitted) or one attached to the confirmation itself.
func (o *Order) ConfirmPayment(track Track, hasProof bool) error {
	state, err := o.PaymentState(track)
	if err != nil {
		return err
	}

	if !o.paymentMethod.IsCash() && state == payment.Pending && !hasProof {
		return errs.NewProofIsRequiredError(fmt.Sprintf("confirm %s payment", track))
	}

	next, err := state.Confirm()
	if err != nil {
		return err
	}

	return o.setPaymentState(track, next)
}

func (o *Order) setPaymentState(track Track, state payment.State) error {
	switch track {
	case TrackInvoice:
		o.invoiceState = state
	case TrackDeliveryPayment:
		o.deliveryFeeState = state
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"track",
			fmt.Errorf("%s is not a payment track", track),
		)
	}
	return nil
}

func validateRef(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}

func indexOfStage(stages []Stage, s Stage) int {
	for i, stage := range stages {
		if stage == s {
			return i
		}
	}
	return -1
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyIntPtr(in *int) *int {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}
