//go:build e2e

package booking_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"vehicle-rental/internal/handler/dto/response"
	"vehicle-rental/tests/common/dbtest"
	"vehicle-rental/tests/common/httptest"
	"vehicle-rental/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/api/bookings"

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) TestListBookings() {
	s.Run("Normal case: newest pickup first, paged by cursor", func() {
		t := s.T()
		golf, ok := dbtest.MustCatalog(t).VehicleByCode("VW-GOLF-01")
		require.True(t, ok)
		userID := uuid.New()
		other := uuid.New()
		token := s.JWT.GenerateToken(t, userID)

		base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		var ids []uuid.UUID
		for i := range 3 {
			pickup := base.AddDate(0, 0, i*7)
			ids = append(ids, dbtest.CreateTestBooking(t, s.DB, golf.ID, userID, pickup, pickup.AddDate(0, 0, 2), 90))
		}
		dbtest.CreateTestBooking(t, s.DB, golf.ID, other, base, base.AddDate(0, 0, 1), 45)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?limit=2", nil, token)
		var first response.BookingListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &first)
		require.Len(t, first.Items, 2)
		assert.Equal(t, ids[2].String(), first.Items[0].ID)
		assert.Equal(t, ids[1].String(), first.Items[1].ID)
		assert.Equal(t, "Volkswagen Golf", first.Items[0].VehicleName)
		require.NotEmpty(t, first.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			bookingsURL+"?limit=2&after="+url.QueryEscape(first.NextCursor), nil, token)
		var second response.BookingListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &second)
		require.Len(t, second.Items, 1)
		assert.Equal(t, ids[0].String(), second.Items[0].ID)
		assert.Empty(t, second.NextCursor)
	})

	s.Run("Normal case: no bookings yields an empty list", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, s.JWT.GenerateToken(t, uuid.New()))

		var got response.BookingListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.NotNil(t, got.Items)
		assert.Empty(t, got.Items)
	})

	s.Run("Error case: malformed cursor", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?after=%25%25", nil, s.JWT.GenerateToken(t, uuid.New()))

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("Error case: missing token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, "")

		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
	})
}
