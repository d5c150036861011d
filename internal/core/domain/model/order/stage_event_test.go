package order_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testActor(t *testing.T, role order.Role) order.Actor {
	t.Helper()
	a, err := order.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func TestNewStageEvent(t *testing.T) {
	orderID := kernel.NewUUID()
	actor := testActor(t, order.RoleShop)

	t.Run("should create a stage event awaiting its sequence number", func(t *testing.T) {
		e, err := order.NewStageEvent(orderID, order.TrackProcessing, int(order.StageWashing), actor, "")

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Equal(t, 0, e.Seq())
		assert.Equal(t, order.TrackProcessing, e.Track())
		assert.Equal(t, order.StageWashing, e.Stage())
		assert.True(t, e.Actor().IsEqual(actor))
		assert.False(t, e.RecordedAt().IsZero())
	})

	t.Run("payment track event exposes a payment state view", func(t *testing.T) {
		e, err := order.NewStageEvent(orderID, order.TrackInvoice, int(payment.Confirmed), actor, "https://proofs/abc.jpg")

		require.NoError(t, err)
		assert.Equal(t, payment.Confirmed, e.PaymentState())
		assert.Equal(t, "https://proofs/abc.jpg", e.ProofURL())
	})

	t.Run("should fail with a stage value invalid for the track", func(t *testing.T) {
		_, err := order.NewStageEvent(orderID, order.TrackInvoice, int(order.StageWashing), actor, "")

		require.Error(t, err)
	})

	t.Run("should fail with an invalid track", func(t *testing.T) {
		_, err := order.NewStageEvent(orderID, order.TrackUnknown, int(order.StageWashing), actor, "")

		require.Error(t, err)
	})

	t.Run("should fail with an invalid actor", func(t *testing.T) {
		var blank order.Actor

		_, err := order.NewStageEvent(orderID, order.TrackProcessing, int(order.StageWashing), blank, "")

		require.Error(t, err)
	})
}

func TestRestoreStageEvent(t *testing.T) {
	orderID := kernel.NewUUID()
	actor := testActor(t, order.RoleRider)

	t.Run("should restore a persisted event with its sequence number", func(t *testing.T) {
		recordedAt := time.Now().UTC().Add(-time.Hour)

		e, err := order.RestoreStageEvent(
			orderID, order.TrackDelivery, int(order.StageRiderBooked), 2, actor, "https://proofs/booking.jpg", recordedAt,
		)

		require.NoError(t, err)
		assert.Equal(t, 2, e.Seq())
		assert.Equal(t, recordedAt, e.RecordedAt())
	})

	t.Run("should fail without a positive sequence number", func(t *testing.T) {
		_, err := order.RestoreStageEvent(
			orderID, order.TrackDelivery, int(order.StageRiderBooked), 0, actor, "", time.Now().UTC(),
		)

		require.Error(t, err)
	})
}

func TestActor(t *testing.T) {
	t.Run("should create actor with a valid role", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := order.NewActor(id, order.RoleCustomer)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(id))
		assert.Equal(t, order.RoleCustomer, a.Role())
	})

	t.Run("should fail with an unknown role", func(t *testing.T) {
		_, err := order.NewActor(kernel.NewUUID(), order.Role("janitor"))

		require.Error(t, err)
	})

	t.Run("should fail with an invalid id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewActor(invalidID, order.RoleShop)

		require.Error(t, err)
	})
}

func TestRejection(t *testing.T) {
	t.Run("should create rejection with reason and optional note", func(t *testing.T) {
		orderID := kernel.NewUUID()

		r, err := order.NewRejection(orderID, "colour bleed risk", "customer declined treatment")

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, "colour bleed risk", r.Reason())
		assert.Equal(t, "customer declined treatment", r.Note())
	})

	t.Run("should fail without a reason", func(t *testing.T) {
		_, err := order.NewRejection(kernel.NewUUID(), "", "note alone is not enough")

		require.Error(t, err)
	})
}
