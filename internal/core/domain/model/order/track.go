package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Track identifies one of the independent append-only status dimensions of an
// order. Each track accumulates its own stage events with its own strictly
// increasing sequence numbers.
type Track int

const (
	// TrackUnknown represents an invalid or undefined track.
	TrackUnknown Track = iota

	// TrackOrderStatus is the main lifecycle track following the resolved path.
	TrackOrderStatus

	// TrackProcessing records processing sub-stages (washing, drying, ...).
	TrackProcessing

	// TrackDelivery records logistics stages for both the incoming and the
	// outgoing flow.
	TrackDelivery

	// TrackInvoice records payment states for the service invoice.
	TrackInvoice

	// TrackDeliveryPayment records payment states for the delivery fee.
	TrackDeliveryPayment
)

func getTrackStrings() map[Track]string {
	return map[Track]string{
		TrackUnknown:         "Unknown",
		TrackOrderStatus:     "OrderStatus",
		TrackProcessing:      "Processing",
		TrackDelivery:        "Delivery",
		TrackInvoice:         "Invoice",
		TrackDeliveryPayment: "DeliveryPayment",
	}
}

// Validate checks if the Track value is valid.
func (t Track) Validate() error {
	if t <= TrackUnknown || t > TrackDeliveryPayment {
		return errs.NewValueIsInvalidErrorWithCause("track is invalid", fmt.Errorf("%d is not a valid track", t))
	}
	return nil
}

// String returns the human-readable name of the track.
func (t Track) String() string {
	if str, ok := getTrackStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// TrackFromString parses a track from its string representation.
func TrackFromString(str string) (Track, error) {
	for track, name := range getTrackStrings() {
		if track != TrackUnknown && name == str {
			return track, nil
		}
	}
	return TrackUnknown, errs.NewValueIsInvalidErrorWithCause(
		"track is invalid",
		fmt.Errorf("%q is not a valid track", str),
	)
}

// IsPayment reports whether events on this track carry payment states
// rather than workflow stages.
func (t Track) IsPayment() bool {
	return t == TrackInvoice || t == TrackDeliveryPayment
}
