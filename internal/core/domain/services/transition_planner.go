package services

import (
	"fmt"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/pkg/errs"
)

// PlannedEvent is one event the planner decided must be appended to a track.
// The sequence number is absent on purpose: it is assigned by the persistence
// layer inside the transaction that commits the plan.
type PlannedEvent struct {
	Track    order.Track
	Value    int
	ProofURL string
}

// TransitionPlan is the atomic unit a transition produces: the full set of
// events to append across tracks, plus the rejection record when the
// transition is a rejection. A plan commits entirely or not at all.
type TransitionPlan struct {
	Events    []PlannedEvent
	Rejection *order.Rejection
}

func (p *TransitionPlan) appendEvent(track order.Track, value int, proofURL string) {
	p.Events = append(p.Events, PlannedEvent{Track: track, Value: value, ProofURL: proofURL})
}

// TransitionPlanner is the domain service that turns a requested transition
// into mutations of the Order aggregate plus the cross-track event writes the
// transition entails.
//
// It is the single writer of OrderStatus-track events. Every producer of a
// status change (staff stage selection, the delivery flows, invoice
// confirmation) routes through this service, so the coupling rules live in
// exactly one place:
//   - A processing-group target appends one ProcessingStatus event only
//   - The delivery handoff appends both an OrderStatus event and a
//     DeliveryStatus event, and arms the delivery-fee payment track
//   - A completed logistics flow appends the forced OrderStatus event in the
//     same plan
//   - A rejection carries its rejection record in the same plan
//
// The planner mutates the aggregate in memory; the caller persists the
// aggregate and the plan in one transaction and discards both on failure.
type TransitionPlanner struct{}

// NewTransitionPlanner creates a new TransitionPlanner instance.
func NewTransitionPlanner() TransitionPlanner {
	return TransitionPlanner{}
}

// PlanCreation produces the seed event for a freshly created order: the
// OrderStatus track opens at the path's first stage.
func (TransitionPlanner) PlanCreation(o *order.Order) (TransitionPlan, error) {
	if err := o.Validate(); err != nil {
		return TransitionPlan{}, err
	}

	var plan TransitionPlan
	plan.appendEvent(order.TrackOrderStatus, int(o.CurrentStage()), "")
	return plan, nil
}

// PlanStatusTransition handles a staff-selected order-status transition,
// including the Cancelled and Rejected exits. For Rejected the reason is
// mandatory and the rejection record travels inside the returned plan.
func (p TransitionPlanner) PlanStatusTransition(o *order.Order, target order.Stage, reason, note string) (TransitionPlan, error) {
	if err := o.Validate(); err != nil {
		return TransitionPlan{}, err
	}

	var plan TransitionPlan

	switch target {
	case order.StageCancelled:
		if err := o.Cancel(); err != nil {
			return TransitionPlan{}, err
		}
		plan.appendEvent(order.TrackOrderStatus, int(order.StageCancelled), "")
		return plan, nil

	case order.StageRejected:
		rejection, err := o.Reject(reason, note)
		if err != nil {
			return TransitionPlan{}, err
		}
		plan.appendEvent(order.TrackOrderStatus, int(order.StageRejected), "")
		plan.Rejection = rejection
		return plan, nil

	default:
		return p.planAdvance(o, target)
	}
}

// PlanProcessingTransition handles a processing-track submission. The target
// must belong to the processing group; everything else about legality is the
// same path arithmetic as a status transition.
func (p TransitionPlanner) PlanProcessingTransition(o *order.Order, target order.Stage) (TransitionPlan, error) {
	if err := o.Validate(); err != nil {
		return TransitionPlan{}, err
	}

	if !target.IsProcessing() {
		return TransitionPlan{}, errs.NewValueIsInvalidErrorWithCause(
			"target stage",
			fmt.Errorf("%s is not a processing stage", target),
		)
	}

	return p.planAdvance(o, target)
}

// PlanDeliveryTransition handles one step of a logistics flow. When the step
// completes the flow, the forced OrderStatus transition joins the same plan
// so both tracks commit together.
func (p TransitionPlanner) PlanDeliveryTransition(o *order.Order, direction order.Direction, target order.Stage, proofURL string) (TransitionPlan, error) {
	if err := o.Validate(); err != nil {
		return TransitionPlan{}, err
	}

	forced, err := o.AdvanceDelivery(direction, target, proofURL != "")
	if err != nil {
		return TransitionPlan{}, err
	}

	var plan TransitionPlan
	plan.appendEvent(order.TrackDelivery, int(target), proofURL)

	if forced != order.StageUnknown {
		if err := o.AdvanceTo(forced); err != nil {
			return TransitionPlan{}, err
		}
		plan.appendEvent(order.TrackOrderStatus, int(forced), "")
	}

	return plan, nil
}

// PlanWeightRecorded handles the weighing action. The first measurement arms
// the invoice payment track, which shows up as its Pending event; re-weighing
// while still at the weighing stage updates the order without a new event.
func (TransitionPlanner) PlanWeightRecorded(o *order.Order, grams int) (TransitionPlan, error) {
	if err := o.Validate(); err != nil {
		return TransitionPlan{}, err
	}

	armed := o.InvoiceState() == payment.Unknown

	if err := o.RecordWeight(grams); err != nil {
		return TransitionPlan{}, err
	}

	var plan TransitionPlan
	if armed {
		plan.appendEvent(order.TrackInvoice, int(payment.Pending), "")
	}
	return plan, nil
}

// PlanPaymentSubmission handles a customer submitting payment proof on one of
// the payment tracks.
func (TransitionPlanner) PlanPaymentSubmission(o *order.Order, track order.Track, proofURL string) (TransitionPlan, error) {
	if err := o.Validate(); err != nil {
		return TransitionPlan{}, err
	}

	if err := o.SubmitPaymentProof(track, proofURL != ""); err != nil {
		return TransitionPlan{}, err
	}

	var plan TransitionPlan
	plan.appendEvent(track, int(payment.Submitted), proofURL)
	return plan, nil
}

// PlanPaymentConfirmation handles staff confirming a payment track.
//
// Confirming the invoice while the order waits at the payment gate is what
// moves it into processing; that status transition is routed back through the
// same planning rules instead of being written here directly, so the plan
// carries both the confirmation event and the processing event it triggers.
func (p TransitionPlanner) PlanPaymentConfirmation(o *order.Order, track order.Track, proofURL string) (TransitionPlan, error) {
	if err := o.Validate(); err != nil {
		return TransitionPlan{}, err
	}

	atGate := o.AtPaymentGate()

	if err := o.ConfirmPayment(track, proofURL != ""); err != nil {
		return TransitionPlan{}, err
	}

	var plan TransitionPlan
	plan.appendEvent(track, int(payment.Confirmed), proofURL)

	if track == order.TrackInvoice && atGate {
		follow, err := p.planAdvance(o, order.StageProcessing)
		if err != nil {
			return TransitionPlan{}, err
		}
		plan.Events = append(plan.Events, follow.Events...)
	}

	return plan, nil
}

// planAdvance applies the cross-track write rules for a regular path advance.
func (TransitionPlanner) planAdvance(o *order.Order, target order.Stage) (TransitionPlan, error) {
	feeArmed := o.DeliveryFeeState() == payment.Unknown

	if err := o.AdvanceTo(target); err != nil {
		return TransitionPlan{}, err
	}

	var plan TransitionPlan

	switch {
	case target.IsProcessing():
		plan.appendEvent(order.TrackProcessing, int(target), "")

	case target == order.StageForDelivery:
		plan.appendEvent(order.TrackOrderStatus, int(order.StageForDelivery), "")
		plan.appendEvent(order.TrackDelivery, int(order.StageForDelivery), "")
		if feeArmed {
			plan.appendEvent(order.TrackDeliveryPayment, int(payment.Pending), "")
		}

	default:
		plan.appendEvent(order.TrackOrderStatus, int(target), "")
	}

	return plan, nil
}
