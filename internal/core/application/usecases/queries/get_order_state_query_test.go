package queries_test

import (
	"testing"
	"time"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderStateQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrderStateQuery(kernel.NewUUID())

	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetOrderStateQuery_InvalidID(t *testing.T) {
	var invalidID kernel.UUID

	_, err := queries.NewGetOrderStateQuery(invalidID)

	require.Error(t, err)
}

func TestGetOrderStateQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderStateQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderStateQueryIsNotConstructed)
}

func TestNewGetOrderTimelineQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrderTimelineQuery(kernel.NewUUID())

	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestGetOrderTimelineQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderTimelineQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderTimelineQueryIsNotConstructed)
}

func TestNewGetOrdersAwaitingPaymentQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrdersAwaitingPaymentQuery(24 * time.Hour)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 24*time.Hour, query.OlderThan())
}

func TestNewGetOrdersAwaitingPaymentQuery_NegativeAge(t *testing.T) {
	_, err := queries.NewGetOrdersAwaitingPaymentQuery(-time.Hour)

	require.Error(t, err)
}
