package http

import (
	"time"

	"laundry/internal/core/application/usecases/queries"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body for registering a new laundry order.
type CreateOrderRequest struct {
	CustomerID     string   `json:"customer_id"`
	ShopID         string   `json:"shop_id"`
	ServiceID      string   `json:"service_id"`
	DeliveryModeID string   `json:"delivery_mode_id"`
	AddOns         []string `json:"add_ons,omitempty"`
	PaymentMethod  string   `json:"payment_method"`
}

// CreateOrderResponse returns the identifier assigned to the new order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// ActorRequest identifies who performs a transition.
type ActorRequest struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// SubmitStageRequest is the body for an order-status or processing-track
// transition. Reason and note are only meaningful for a rejection.
type SubmitStageRequest struct {
	Target string       `json:"target"`
	Actor  ActorRequest `json:"actor"`
	Reason string       `json:"reason,omitempty"`
	Note   string       `json:"note,omitempty"`
}

// SubmitDeliveryStageRequest is the body for one step of a logistics flow.
type SubmitDeliveryStageRequest struct {
	Direction string       `json:"direction"`
	Target    string       `json:"target"`
	Actor     ActorRequest `json:"actor"`
	ProofURL  string       `json:"proof_url,omitempty"`
}

// RecordWeightRequest is the body for the weighing action.
type RecordWeightRequest struct {
	Grams int          `json:"grams"`
	Actor ActorRequest `json:"actor"`
}

// PaymentActionRequest is the body for submitting or confirming a payment.
type PaymentActionRequest struct {
	Actor    ActorRequest `json:"actor"`
	ProofURL string       `json:"proof_url,omitempty"`
}

// OrderStateResponse is the per-track snapshot of one order.
type OrderStateResponse struct {
	ID               string   `json:"id"`
	Path             []string `json:"path"`
	CurrentStage     string   `json:"current_stage"`
	ProcessingStage  string   `json:"processing_stage,omitempty"`
	DeliveryStage    string   `json:"delivery_stage,omitempty"`
	InvoiceState     string   `json:"invoice_state,omitempty"`
	DeliveryFeeState string   `json:"delivery_fee_state,omitempty"`
	WeightGrams      *int     `json:"weight_grams,omitempty"`
	RejectionReason  string   `json:"rejection_reason,omitempty"`
}

// TimelineEntry is one row of the customer-facing progress view.
type TimelineEntry struct {
	Stage      string     `json:"stage"`
	Completed  bool       `json:"completed"`
	Active     bool       `json:"active"`
	RecordedAt *time.Time `json:"recorded_at,omitempty"`
}

func toOrderStateResponse(state queries.GetOrderStateQueryResponse) OrderStateResponse {
	path := make([]string, len(state.Path))
	for i, stage := range state.Path {
		path[i] = stage.String()
	}

	response := OrderStateResponse{
		ID:              state.ID.String(),
		Path:            path,
		CurrentStage:    state.CurrentStage.String(),
		WeightGrams:     state.WeightGrams,
		RejectionReason: state.RejectionReason,
	}

	// Unknown means the track was never touched; render it as absent
	if state.ProcessingStage.Validate() == nil {
		response.ProcessingStage = state.ProcessingStage.String()
	}
	if state.DeliveryStage.Validate() == nil {
		response.DeliveryStage = state.DeliveryStage.String()
	}
	if state.InvoiceState.Validate() == nil {
		response.InvoiceState = state.InvoiceState.String()
	}
	if state.DeliveryFeeState.Validate() == nil {
		response.DeliveryFeeState = state.DeliveryFeeState.String()
	}

	return response
}

func toTimelineResponse(entries []queries.TimelineEntryResponse) []TimelineEntry {
	response := make([]TimelineEntry, len(entries))
	for i, entry := range entries {
		response[i] = TimelineEntry{
			Stage:      entry.Stage.String(),
			Completed:  entry.Completed,
			Active:     entry.Active,
			RecordedAt: entry.RecordedAt,
		}
	}
	return response
}
