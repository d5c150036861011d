package services

import (
	"time"

	"laundry/internal/core/domain/model/order"
)

// TimelineEntry is one row of the customer-facing progress view: a stage of
// the resolved path (or an exception exit), whether it has been reached, and
// when. Exactly one entry of a non-empty timeline is active: the
// highest-index completed one.
type TimelineEntry struct {
	Stage      order.Stage
	Completed  bool
	Active     bool
	RecordedAt *time.Time
}

// TimelineReconstructor merges the event history of an order with its
// resolved workflow path into a single ordered view.
//
// The same path the staff-facing transition logic validates against drives
// the display, so the two surfaces cannot drift apart. Events from every
// stage-bearing track participate: a stage counts as completed when any track
// recorded it, whichever happened first.
type TimelineReconstructor struct{}

// NewTimelineReconstructor creates a new TimelineReconstructor instance.
func NewTimelineReconstructor() TimelineReconstructor {
	return TimelineReconstructor{}
}

// Reconstruct builds the timeline for one order from its path and its full
// event history. Events may arrive in any order; per-track sequence numbers
// decide which event recorded a stage first.
//
// An exception exit (Cancelled or Rejected) is appended as a final entry
// after the path stages and takes over the active flag.
func (TimelineReconstructor) Reconstruct(path order.WorkflowPath, events []*order.StageEvent) []TimelineEntry {
	reached := make(map[order.Stage]*order.StageEvent)
	var exit *order.StageEvent

	for _, e := range events {
		if e == nil || e.Track().IsPayment() {
			continue
		}

		stage := e.Stage()

		if stage.IsExceptionExit() {
			if exit == nil || e.Seq() < exit.Seq() {
				exit = e
			}
			continue
		}

		if prev, ok := reached[stage]; !ok || earlierThan(e, prev) {
			reached[stage] = e
		}
	}

	entries := make([]TimelineEntry, 0, path.Len()+1)
	activeIdx := -1

	for i, stage := range path.Stages() {
		entry := TimelineEntry{Stage: stage}
		if e, ok := reached[stage]; ok {
			entry.Completed = true
			at := e.RecordedAt()
			entry.RecordedAt = &at
			activeIdx = i
		}
		entries = append(entries, entry)
	}

	if exit != nil {
		at := exit.RecordedAt()
		entries = append(entries, TimelineEntry{
			Stage:      exit.Stage(),
			Completed:  true,
			Active:     true,
			RecordedAt: &at,
		})
		return entries
	}

	if activeIdx >= 0 {
		entries[activeIdx].Active = true
	}

	return entries
}

// earlierThan orders two events recording the same stage. Same-track events
// compare by sequence number; across tracks the recording time is the only
// common measure and ties keep the first.
func earlierThan(a, b *order.StageEvent) bool {
	if a.Track() == b.Track() {
		return a.Seq() < b.Seq()
	}
	return a.RecordedAt().Before(b.RecordedAt())
}
