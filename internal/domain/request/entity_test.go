//go:build unit

package request_test

import (
	"testing"

	"shopdispatch/internal/domain/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func validItems() []request.Item {
	return []request.Item{
		{Title: "Milk 2L", Quantity: 2},
		{Title: "Bread", Quantity: 1},
	}
}

func TestNewShoppingRequest(t *testing.T) {
	customerID := uuid.New()
	origin := request.Origin{StoreName: "Checkers Rosebank"}
	dest := request.Destination{Address: "12 Oxford Rd"}

	t.Run("basic success case", func(t *testing.T) {
		r, err := request.NewShoppingRequest(customerID, origin, dest, request.FeeSnapshot{SubtotalFees: 51}, validItems())
		require.NoError(t, err)
		require.NotNil(t, r)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, customerID, r.CustomerID())
		assert.Equal(t, request.StatusPending, r.Status())
		assert.True(t, r.IsPending())
		assert.Nil(t, r.AcceptedBy())
		assert.Len(t, r.Items(), 2)
	})

	t.Run("requires at least one item", func(t *testing.T) {
		_, err := request.NewShoppingRequest(customerID, origin, dest, request.FeeSnapshot{}, nil)
		assert.ErrorIs(t, err, request.ErrNoItems)

		_, err = request.NewShoppingRequest(customerID, origin, dest, request.FeeSnapshot{}, []request.Item{})
		assert.ErrorIs(t, err, request.ErrNoItems)
	})

	t.Run("rejects empty item title", func(t *testing.T) {
		_, err := request.NewShoppingRequest(customerID, origin, dest, request.FeeSnapshot{}, []request.Item{{Title: "", Quantity: 1}})
		assert.ErrorIs(t, err, request.ErrEmptyItemTitle)
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		_, err := request.NewShoppingRequest(customerID, origin, dest, request.FeeSnapshot{}, []request.Item{{Title: "Eggs", Quantity: -1}})
		assert.ErrorIs(t, err, request.ErrInvalidQuantity)
	})

	t.Run("zero quantity defaults to one", func(t *testing.T) {
		r, err := request.NewShoppingRequest(customerID, origin, dest, request.FeeSnapshot{}, []request.Item{{Title: "Eggs"}})
		require.NoError(t, err)
		assert.Equal(t, 1, r.Items()[0].Quantity)
	})

	t.Run("fee snapshot carried verbatim", func(t *testing.T) {
		fees := request.FeeSnapshot{SubtotalFees: 51, ServiceFee: 8, PickPackFee: 13, Tip: 20}
		r, err := request.NewShoppingRequest(customerID, origin, dest, fees, validItems())
		require.NoError(t, err)
		assert.Equal(t, fees, r.Fees())
	})
}

func TestDispatchPoint(t *testing.T) {
	customerID := uuid.New()
	items := validItems()

	t.Run("prefers destination coordinates", func(t *testing.T) {
		r, err := request.NewShoppingRequest(customerID,
			request.Origin{StoreName: "Store", Lat: floatPtr(-26.1), Lng: floatPtr(28.0)},
			request.Destination{Address: "Home", Lat: floatPtr(-26.2041), Lng: floatPtr(28.0473)},
			request.FeeSnapshot{}, items)
		require.NoError(t, err)

		lat, lng, ok := r.DispatchPoint()
		require.True(t, ok)
		assert.Equal(t, -26.2041, lat)
		assert.Equal(t, 28.0473, lng)
	})

	t.Run("falls back to origin coordinates", func(t *testing.T) {
		r, err := request.NewShoppingRequest(customerID,
			request.Origin{StoreName: "Store", Lat: floatPtr(-26.1), Lng: floatPtr(28.0)},
			request.Destination{Address: "Home"},
			request.FeeSnapshot{}, items)
		require.NoError(t, err)

		lat, lng, ok := r.DispatchPoint()
		require.True(t, ok)
		assert.Equal(t, -26.1, lat)
		assert.Equal(t, 28.0, lng)
	})

	t.Run("no coordinates anywhere", func(t *testing.T) {
		r, err := request.NewShoppingRequest(customerID,
			request.Origin{StoreName: "Store"},
			request.Destination{Address: "Home"},
			request.FeeSnapshot{}, items)
		require.NoError(t, err)

		_, _, ok := r.DispatchPoint()
		assert.False(t, ok)
	})

	t.Run("partial destination coordinates do not count", func(t *testing.T) {
		r, err := request.NewShoppingRequest(customerID,
			request.Origin{StoreName: "Store", Lat: floatPtr(-26.1), Lng: floatPtr(28.0)},
			request.Destination{Address: "Home", Lat: floatPtr(-26.2)},
			request.FeeSnapshot{}, items)
		require.NoError(t, err)

		lat, _, ok := r.DispatchPoint()
		require.True(t, ok)
		assert.Equal(t, -26.1, lat)
	})
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    request.Status
		to      request.Status
		allowed bool
	}{
		{request.StatusPending, request.StatusAccepted, true},
		{request.StatusPending, request.StatusCancelled, true},
		{request.StatusPending, request.StatusCompleted, false},
		{request.StatusAccepted, request.StatusCompleted, true},
		{request.StatusAccepted, request.StatusCancelled, true},
		{request.StatusAccepted, request.StatusPending, false},
		{request.StatusCancelled, request.StatusPending, false},
		{request.StatusCancelled, request.StatusAccepted, false},
		{request.StatusCompleted, request.StatusCancelled, false},
		{request.StatusCompleted, request.StatusAccepted, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}

	t.Run("terminal states", func(t *testing.T) {
		assert.False(t, request.StatusPending.IsTerminal())
		assert.False(t, request.StatusAccepted.IsTerminal())
		assert.True(t, request.StatusCancelled.IsTerminal())
		assert.True(t, request.StatusCompleted.IsTerminal())
	})

	t.Run("validity", func(t *testing.T) {
		assert.True(t, request.StatusPending.IsValid())
		assert.False(t, request.Status("unknown").IsValid())
	})
}
