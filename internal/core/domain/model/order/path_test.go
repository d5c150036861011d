package order_test

import (
	"testing"

	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustComposition(t *testing.T, wash, dry, press, fold bool) order.ServiceComposition {
	t.Helper()
	c, err := order.NewServiceComposition(wash, dry, press, fold)
	require.NoError(t, err)
	return c
}

func mustDeliveryMode(t *testing.T, pickup, delivery, fleetInHouse bool) order.DeliveryMode {
	t.Helper()
	m, err := order.NewDeliveryMode(pickup, delivery, fleetInHouse)
	require.NoError(t, err)
	return m
}

func TestResolvePath(t *testing.T) {
	t.Run("wash dry fold with pickup and delivery on third-party fleet", func(t *testing.T) {
		comp := mustComposition(t, true, true, false, true)
		mode := mustDeliveryMode(t, true, true, false)

		path := order.ResolvePath(comp, mode)

		assert.Equal(t, []order.Stage{
			order.StageToPickup,
			order.StageRiderBooked,
			order.StageDeliveredInShop,
			order.StageToWeigh,
			order.StageProcessing,
			order.StageWashing,
			order.StageDrying,
			order.StageFolding,
			order.StageForDelivery,
			order.StageOutForDelivery,
			order.StageCompleted,
		}, path.Stages())
	})

	t.Run("same capabilities as drop-off with no logistics", func(t *testing.T) {
		comp := mustComposition(t, true, true, false, true)
		mode := mustDeliveryMode(t, false, false, false)

		path := order.ResolvePath(comp, mode)

		assert.Equal(t, []order.Stage{
			order.StageToWeigh,
			order.StageProcessing,
			order.StageWashing,
			order.StageDrying,
			order.StageFolding,
			order.StageCompleted,
		}, path.Stages())
	})

	t.Run("in-house pickup skips rider booking", func(t *testing.T) {
		comp := mustComposition(t, true, true, false, false)
		mode := mustDeliveryMode(t, true, false, true)

		path := order.ResolvePath(comp, mode)

		assert.Equal(t, []order.Stage{
			order.StageToPickup,
			order.StageArrivedAtCustomer,
			order.StageToWeigh,
			order.StageProcessing,
			order.StageWashing,
			order.StageDrying,
			order.StageCompleted,
		}, path.Stages())
		assert.False(t, path.Contains(order.StageRiderBooked))
	})

	t.Run("press only service still passes through the core processing stages", func(t *testing.T) {
		comp := mustComposition(t, false, false, true, false)
		mode := mustDeliveryMode(t, false, false, false)

		path := order.ResolvePath(comp, mode)

		assert.True(t, path.Contains(order.StageWashing))
		assert.True(t, path.Contains(order.StageDrying))
		assert.True(t, path.Contains(order.StagePressing))
		assert.False(t, path.Contains(order.StageFolding))
		assert.Equal(t, order.StageCompleted, path.Terminal())
	})

	t.Run("delivery only mode appends handoff stages", func(t *testing.T) {
		comp := mustComposition(t, true, false, false, false)
		mode := mustDeliveryMode(t, false, true, false)

		path := order.ResolvePath(comp, mode)

		assert.Equal(t, order.StageToWeigh, path.First())
		assert.True(t, path.Contains(order.StageForDelivery))
		assert.True(t, path.Contains(order.StageOutForDelivery))
		assert.True(t, path.HasOutgoingLogistics())

		handoff, ok := path.HandoffStage()
		require.True(t, ok)
		assert.Equal(t, order.StageForDelivery, handoff)
	})

	t.Run("path without delivery has no handoff", func(t *testing.T) {
		comp := mustComposition(t, true, false, false, false)
		mode := mustDeliveryMode(t, false, false, false)

		path := order.ResolvePath(comp, mode)

		assert.False(t, path.HasOutgoingLogistics())
		_, ok := path.HandoffStage()
		assert.False(t, ok)
	})

	t.Run("resolution is deterministic", func(t *testing.T) {
		comp := mustComposition(t, true, true, true, false)
		mode := mustDeliveryMode(t, true, true, true)

		first := order.ResolvePath(comp, mode)
		second := order.ResolvePath(comp, mode)

		assert.True(t, first.IsEqual(second))
	})
}

func TestWorkflowPathCheckAdvance(t *testing.T) {
	comp, err := order.NewServiceComposition(true, true, false, false)
	require.NoError(t, err)
	mode, err := order.NewDeliveryMode(false, false, false)
	require.NoError(t, err)

	// [ToWeigh, Processing, Washing, Drying, Completed]
	path := order.ResolvePath(comp, mode)

	t.Run("should allow single step forward", func(t *testing.T) {
		assert.NoError(t, path.CheckAdvance(order.StageToWeigh, order.StageProcessing))
		assert.NoError(t, path.CheckAdvance(order.StageWashing, order.StageDrying))
	})

	t.Run("should allow fast-forward to terminal stage", func(t *testing.T) {
		assert.NoError(t, path.CheckAdvance(order.StageProcessing, order.StageCompleted))
	})

	t.Run("should allow exception exits from any non-final stage", func(t *testing.T) {
		assert.NoError(t, path.CheckAdvance(order.StageToWeigh, order.StageCancelled))
		assert.NoError(t, path.CheckAdvance(order.StageDrying, order.StageRejected))
	})

	t.Run("should reject revisiting the current stage", func(t *testing.T) {
		err := path.CheckAdvance(order.StageWashing, order.StageWashing)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrStageAlreadyCompleted)

		var completed *order.StageAlreadyCompletedError
		require.ErrorAs(t, err, &completed)
		assert.Equal(t, order.StageWashing, completed.Current)
		assert.Equal(t, order.StageWashing, completed.Requested)
	})

	t.Run("should reject moving backwards", func(t *testing.T) {
		err := path.CheckAdvance(order.StageDrying, order.StageWashing)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrStageAlreadyCompleted)
	})

	t.Run("should reject skipping a non-terminal stage", func(t *testing.T) {
		err := path.CheckAdvance(order.StageToWeigh, order.StageWashing)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidSkip)

		var skip *order.InvalidSkipError
		require.ErrorAs(t, err, &skip)
		assert.Equal(t, order.StageToWeigh, skip.Current)
		assert.Equal(t, order.StageWashing, skip.Requested)
	})

	t.Run("should reject stages outside the path", func(t *testing.T) {
		err := path.CheckAdvance(order.StageToWeigh, order.StageRiderBooked)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrStageNotInPath)
	})

	t.Run("should reject any advance from a final stage", func(t *testing.T) {
		assert.ErrorIs(t, path.CheckAdvance(order.StageCompleted, order.StageCancelled), order.ErrOrderIsFinal)
		assert.ErrorIs(t, path.CheckAdvance(order.StageCancelled, order.StageToWeigh), order.ErrOrderIsFinal)
		assert.ErrorIs(t, path.CheckAdvance(order.StageRejected, order.StageCompleted), order.ErrOrderIsFinal)
	})
}

func TestWorkflowPathEncoding(t *testing.T) {
	t.Run("should round-trip through encode and decode", func(t *testing.T) {
		comp := mustComposition(t, true, true, true, true)
		mode := mustDeliveryMode(t, true, true, false)
		path := order.ResolvePath(comp, mode)

		restored, err := order.DecodePath(path.Encode())

		require.NoError(t, err)
		assert.True(t, path.IsEqual(restored))
	})

	t.Run("should fail on malformed input", func(t *testing.T) {
		_, err := order.DecodePath("4,banana,14")

		require.Error(t, err)
	})

	t.Run("should fail on empty input", func(t *testing.T) {
		_, err := order.DecodePath("")

		require.Error(t, err)
	})
}

func TestRestorePath(t *testing.T) {
	t.Run("should restore a valid stage sequence", func(t *testing.T) {
		path, err := order.RestorePath([]order.Stage{
			order.StageToWeigh,
			order.StageProcessing,
			order.StageCompleted,
		})

		require.NoError(t, err)
		assert.Equal(t, 3, path.Len())
	})

	t.Run("should fail on empty sequence", func(t *testing.T) {
		_, err := order.RestorePath(nil)

		require.Error(t, err)
	})

	t.Run("should fail when the sequence contains an exception exit", func(t *testing.T) {
		_, err := order.RestorePath([]order.Stage{
			order.StageToWeigh,
			order.StageCancelled,
			order.StageCompleted,
		})

		require.Error(t, err)
	})

	t.Run("should fail when the sequence does not end at the terminal stage", func(t *testing.T) {
		_, err := order.RestorePath([]order.Stage{
			order.StageToWeigh,
			order.StageProcessing,
		})

		require.Error(t, err)
	})

	t.Run("should fail on duplicate stages", func(t *testing.T) {
		_, err := order.RestorePath([]order.Stage{
			order.StageToWeigh,
			order.StageToWeigh,
			order.StageCompleted,
		})

		require.Error(t, err)
	})
}
