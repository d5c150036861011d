package order

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"laundry/internal/pkg/errs"
)

// Workflow state conflict sentinels. These form the StateError family of the
// application taxonomy: they are always surfaced to the caller verbatim,
// never swallowed or retried.
var (
	// ErrStageAlreadyCompleted is returned when a requested target stage is at
	// or before the order's current stage.
	ErrStageAlreadyCompleted = errors.New("stage already completed")

	// ErrInvalidSkip is returned when a requested target stage skips ahead by
	// more than one position and is not the path terminal.
	ErrInvalidSkip = errors.New("invalid stage skip")

	// ErrOrderIsFinal is returned when a transition is requested on an order
	// whose status track has reached Completed, Cancelled, or Rejected.
	ErrOrderIsFinal = errors.New("order is in a final stage")

	// ErrStageNotInPath is returned when a stage outside the resolved workflow
	// path is referenced. Such references are an error condition, never
	// silently accepted.
	ErrStageNotInPath = errors.New("stage is not part of the resolved workflow path")
)

// StageAlreadyCompletedError reports a transition to a stage the order has
// already passed. Unwraps to ErrStageAlreadyCompleted.
type StageAlreadyCompletedError struct {
	Current   Stage
	Requested Stage
}

func (e *StageAlreadyCompletedError) Error() string {
	return fmt.Sprintf("stage already completed: order is at %s, %s was requested", e.Current, e.Requested)
}

func (e *StageAlreadyCompletedError) Unwrap() error {
	return ErrStageAlreadyCompleted
}

// InvalidSkipError reports a transition that jumps over intermediate stages.
// Unwraps to ErrInvalidSkip.
type InvalidSkipError struct {
	Current   Stage
	Requested Stage
}

func (e *InvalidSkipError) Error() string {
	return fmt.Sprintf("invalid stage skip: order is at %s, %s skips ahead", e.Current, e.Requested)
}

func (e *InvalidSkipError) Unwrap() error {
	return ErrInvalidSkip
}

// WorkflowPath is the ordered, deduplicated list of stages an order must
// traverse. It is computed exactly once at order creation by ResolvePath and
// treated as immutable for the order's lifetime, even if the resolver changes
// later.
//
// There is a single authoritative resolver: staff stage selection, transition
// validation and the customer-facing timeline all consume the same
// WorkflowPath, so the surfaces can never drift apart.
type WorkflowPath struct {
	stages []Stage
}

// ResolvePath deterministically computes the workflow path for a service
// composition and delivery mode. It is a pure function: identical inputs
// always produce an identical path.
//
// The path is composed from fixed groups in fixed order: incoming logistics
// (only when pickup is required, with the sub-path depending on the fleet),
// weighing, processing (pressing and folding only when the composition
// requires them), outgoing logistics (only when delivery is required), and
// the Completed terminal. Cancelled and Rejected are reachable exits from any
// non-final stage but are never part of the linear sequence.
func ResolvePath(comp ServiceComposition, mode DeliveryMode) WorkflowPath {
	stages := make([]Stage, 0, 12)

	if mode.PickupRequired() {
		if mode.FleetInHouse() {
			stages = append(stages, StageToPickup, StageArrivedAtCustomer)
		} else {
			stages = append(stages, StageToPickup, StageRiderBooked, StageDeliveredInShop)
		}
	}

	stages = append(stages, StageToWeigh)

	stages = append(stages, StageProcessing, StageWashing, StageDrying)
	if comp.RequiresPress() {
		stages = append(stages, StagePressing)
	}
	if comp.RequiresFold() {
		stages = append(stages, StageFolding)
	}

	if mode.DeliveryRequired() {
		stages = append(stages, StageForDelivery, StageOutForDelivery)
	}

	stages = append(stages, StageCompleted)

	return WorkflowPath{stages: dedupeStages(stages)}
}

// RestorePath reconstructs a workflow path from persistence.
// The stage list must be non-empty, contain only valid non-exception stages
// without duplicates, and end with the Completed terminal.
func RestorePath(stages []Stage) (WorkflowPath, error) {
	if len(stages) == 0 {
		return WorkflowPath{}, errs.NewValueIsRequiredError("workflow path stages")
	}

	seen := make(map[Stage]bool, len(stages))
	for _, s := range stages {
		if err := s.Validate(); err != nil {
			return WorkflowPath{}, err
		}
		if s.IsExceptionExit() {
			return WorkflowPath{}, errs.NewValueIsInvalidErrorWithCause(
				"workflow path stages",
				fmt.Errorf("%s is an exception exit and cannot be part of a path", s),
			)
		}
		if seen[s] {
			return WorkflowPath{}, errs.NewValueIsInvalidErrorWithCause(
				"workflow path stages",
				fmt.Errorf("%s appears more than once", s),
			)
		}
		seen[s] = true
	}

	if stages[len(stages)-1] != StageCompleted {
		return WorkflowPath{}, errs.NewValueIsInvalidError("workflow path must end with Completed")
	}

	restored := make([]Stage, len(stages))
	copy(restored, stages)
	return WorkflowPath{stages: restored}, nil
}

func dedupeStages(stages []Stage) []Stage {
	seen := make(map[Stage]bool, len(stages))
	out := stages[:0]
	for _, s := range stages {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// Validate reports whether the path was properly constructed.
func (p WorkflowPath) Validate() error {
	if len(p.stages) == 0 {
		return errs.NewValueIsRequiredError("workflow path must be created via ResolvePath or RestorePath")
	}
	return nil
}

// Stages returns a copy of the ordered stage list.
func (p WorkflowPath) Stages() []Stage {
	out := make([]Stage, len(p.stages))
	copy(out, p.stages)
	return out
}

// Len returns the number of stages in the path.
func (p WorkflowPath) Len() int {
	return len(p.stages)
}

// First returns the stage a freshly created order starts at:
// ToPickup for pickup orders, ToWeigh for drop-off orders.
func (p WorkflowPath) First() Stage {
	if len(p.stages) == 0 {
		return StageUnknown
	}
	return p.stages[0]
}

// Terminal returns the path-ending stage.
func (p WorkflowPath) Terminal() Stage {
	if len(p.stages) == 0 {
		return StageUnknown
	}
	return p.stages[len(p.stages)-1]
}

// IndexOf returns the position of a stage within the path.
func (p WorkflowPath) IndexOf(s Stage) (int, bool) {
	for i, stage := range p.stages {
		if stage == s {
			return i, true
		}
	}
	return 0, false
}

// Contains reports whether the stage is part of the path.
func (p WorkflowPath) Contains(s Stage) bool {
	_, ok := p.IndexOf(s)
	return ok
}

// HasOutgoingLogistics reports whether the path includes the outgoing
// delivery leg.
func (p WorkflowPath) HasOutgoingLogistics() bool {
	return p.Contains(StageForDelivery)
}

// HandoffStage returns the post-processing stage that arms the delivery
// track, if the path has one.
func (p WorkflowPath) HandoffStage() (Stage, bool) {
	if p.HasOutgoingLogistics() {
		return StageForDelivery, true
	}
	return StageUnknown, false
}

// CheckAdvance decides whether moving the order-status track from current to
// target is legal under the path.
//
// Rules:
//   - No transition is accepted once current is final (Completed, Cancelled,
//     Rejected): ErrOrderIsFinal.
//   - Cancelled and Rejected are accepted from any non-final current stage.
//   - A target at or before current signals StageAlreadyCompletedError.
//   - A target more than one position ahead signals InvalidSkipError, unless
//     target is the path terminal: the terminal is reachable from any
//     non-final stage as an explicit fast-forward policy.
//   - A target outside the path signals ErrStageNotInPath.
func (p WorkflowPath) CheckAdvance(current, target Stage) error {
	if current.IsFinal() {
		return ErrOrderIsFinal
	}

	if target.IsExceptionExit() {
		return nil
	}

	targetIdx, ok := p.IndexOf(target)
	if !ok {
		return ErrStageNotInPath
	}

	currentIdx, ok := p.IndexOf(current)
	if !ok {
		return ErrStageNotInPath
	}

	if targetIdx <= currentIdx {
		return &StageAlreadyCompletedError{Current: current, Requested: target}
	}

	if targetIdx > currentIdx+1 && !target.IsTerminal() {
		return &InvalidSkipError{Current: current, Requested: target}
	}

	return nil
}

// IsEqual compares two paths stage by stage.
func (p WorkflowPath) IsEqual(other WorkflowPath) bool {
	if len(p.stages) != len(other.stages) {
		return false
	}
	for i, s := range p.stages {
		if other.stages[i] != s {
			return false
		}
	}
	return true
}

// Encode serializes the path for persistence as comma-separated stage numbers.
// The materialized form is what guarantees immutability across resolver
// changes: restored orders never re-resolve.
func (p WorkflowPath) Encode() string {
	parts := make([]string, len(p.stages))
	for i, s := range p.stages {
		parts[i] = strconv.Itoa(int(s))
	}
	return strings.Join(parts, ",")
}

// DecodePath reconstructs a path from its Encode form.
func DecodePath(encoded string) (WorkflowPath, error) {
	if encoded == "" {
		return WorkflowPath{}, errs.NewValueIsRequiredError("encoded workflow path")
	}

	parts := strings.Split(encoded, ",")
	stages := make([]Stage, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return WorkflowPath{}, errs.NewValueIsInvalidErrorWithCause("encoded workflow path", err)
		}
		stages = append(stages, Stage(n))
	}

	return RestorePath(stages)
}
