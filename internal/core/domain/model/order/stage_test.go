package order_test

import (
	"testing"

	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage(t *testing.T) {
	t.Run("should validate known stages", func(t *testing.T) {
		for _, s := range []order.Stage{
			order.StageToPickup,
			order.StageRiderBooked,
			order.StageArrivedAtCustomer,
			order.StageDeliveredInShop,
			order.StageToWeigh,
			order.StageProcessing,
			order.StageWashing,
			order.StageDrying,
			order.StagePressing,
			order.StageFolding,
			order.StageForDelivery,
			order.StageOutForDelivery,
			order.StageDeliveredToCustomer,
			order.StageCompleted,
			order.StageCancelled,
			order.StageRejected,
		} {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject unknown stages", func(t *testing.T) {
		assert.Error(t, order.StageUnknown.Validate())
		assert.Error(t, order.Stage(99).Validate())
	})

	t.Run("should round-trip through string form", func(t *testing.T) {
		s, err := order.StageFromString(order.StageOutForDelivery.String())

		require.NoError(t, err)
		assert.Equal(t, order.StageOutForDelivery, s)
	})

	t.Run("should fail parsing an unknown name", func(t *testing.T) {
		_, err := order.StageFromString("ironing")

		require.Error(t, err)
	})

	t.Run("classification helpers", func(t *testing.T) {
		assert.True(t, order.StageWashing.IsProcessing())
		assert.True(t, order.StageFolding.IsProcessing())
		assert.False(t, order.StageToWeigh.IsProcessing())

		assert.True(t, order.StageCompleted.IsTerminal())
		assert.False(t, order.StageCancelled.IsTerminal())

		assert.True(t, order.StageCancelled.IsExceptionExit())
		assert.True(t, order.StageRejected.IsExceptionExit())
		assert.False(t, order.StageCompleted.IsExceptionExit())

		assert.True(t, order.StageCompleted.IsFinal())
		assert.True(t, order.StageCancelled.IsFinal())
		assert.True(t, order.StageRejected.IsFinal())
		assert.False(t, order.StageDrying.IsFinal())
	})
}

func TestTrack(t *testing.T) {
	t.Run("should validate known tracks", func(t *testing.T) {
		for _, tr := range []order.Track{
			order.TrackOrderStatus,
			order.TrackProcessing,
			order.TrackDelivery,
			order.TrackInvoice,
			order.TrackDeliveryPayment,
		} {
			assert.NoError(t, tr.Validate(), tr.String())
		}
	})

	t.Run("should reject unknown tracks", func(t *testing.T) {
		assert.Error(t, order.TrackUnknown.Validate())
	})

	t.Run("should round-trip through string form", func(t *testing.T) {
		tr, err := order.TrackFromString(order.TrackDeliveryPayment.String())

		require.NoError(t, err)
		assert.Equal(t, order.TrackDeliveryPayment, tr)
	})

	t.Run("payment classification", func(t *testing.T) {
		assert.True(t, order.TrackInvoice.IsPayment())
		assert.True(t, order.TrackDeliveryPayment.IsPayment())
		assert.False(t, order.TrackOrderStatus.IsPayment())
		assert.False(t, order.TrackDelivery.IsPayment())
	})
}

func TestDirection(t *testing.T) {
	t.Run("should round-trip through string form", func(t *testing.T) {
		d, err := order.DirectionFromString(order.DirectionOutgoing.String())

		require.NoError(t, err)
		assert.Equal(t, order.DirectionOutgoing, d)
	})

	t.Run("should fail parsing an unknown direction", func(t *testing.T) {
		_, err := order.DirectionFromString("sideways")

		require.Error(t, err)
	})
}

func TestDeliverySteps(t *testing.T) {
	t.Run("incoming third-party", func(t *testing.T) {
		assert.Equal(t,
			[]order.Stage{order.StageToPickup, order.StageRiderBooked, order.StageDeliveredInShop},
			order.DeliverySteps(order.DirectionIncoming, false),
		)
	})

	t.Run("incoming in-house", func(t *testing.T) {
		assert.Equal(t,
			[]order.Stage{order.StageToPickup, order.StageArrivedAtCustomer},
			order.DeliverySteps(order.DirectionIncoming, true),
		)
	})

	t.Run("outgoing third-party", func(t *testing.T) {
		assert.Equal(t,
			[]order.Stage{order.StageForDelivery, order.StageOutForDelivery, order.StageDeliveredToCustomer},
			order.DeliverySteps(order.DirectionOutgoing, false),
		)
	})

	t.Run("outgoing in-house", func(t *testing.T) {
		assert.Equal(t,
			[]order.Stage{order.StageForDelivery, order.StageDeliveredToCustomer},
			order.DeliverySteps(order.DirectionOutgoing, true),
		)
	})
}
