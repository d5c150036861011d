// Package services contains domain services that coordinate behavior across
// the order aggregate's parallel tracks.
//
// TransitionPlanner is the single writer of OrderStatus events: every
// producer of a status change routes through it, and it emits the full
// cross-track event set a transition entails as one atomic plan.
//
// TimelineReconstructor merges the append-only event history with the
// resolved workflow path into the ordered completed/active/pending view used
// by read paths.
package services
