//go:build e2e

package vehicle_test

import (
	"net/http"
	"testing"

	"vehicle-rental/internal/handler/dto/response"
	"vehicle-rental/tests/common/dbtest"
	"vehicle-rental/tests/common/httptest"
	"vehicle-rental/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const vehiclesURL = "/api/vehicles"

type VehicleSuite struct {
	e2e.SharedSuite
}

func TestVehicleSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(VehicleSuite))
}

func codes(items []*response.VehicleResponse) []string {
	out := make([]string, len(items))
	for i, v := range items {
		out[i] = v.Code
	}
	return out
}

// =============================================================================
// TestSearchVehicles - one-shot catalog search
// =============================================================================

func (s *VehicleSuite) TestSearchVehicles() {
	s.Run("Normal case: whole catalog sorted by price ascending", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, vehiclesURL, nil, "")

		var page response.VehiclePageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		want := []string{"FIAT-500-01", "VW-GOLF-01", "TESLA-M3-01", "BMW-X5-01", "MB-VITO-01"}
		if diff := cmp.Diff(want, codes(page.Items)); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 5, page.Total)
		assert.False(t, page.HasMore)
	})

	s.Run("Normal case: filters combine across fields", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			vehiclesURL+"?gear=automatic&only_available=true&sort=price_desc", nil, "")

		var page response.VehiclePageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		assert.Equal(t, []string{"BMW-X5-01", "TESLA-M3-01"}, codes(page.Items))
	})

	s.Run("Normal case: pickup location matches split and annotated entries", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, vehiclesURL+"?pickup=berlin", nil, "")

		var page response.VehiclePageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		assert.ElementsMatch(t, []string{"FIAT-500-01", "TESLA-M3-01"}, codes(page.Items))
	})

	s.Run("Normal case: price range is inclusive", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, vehiclesURL+"?min_price=45&max_price=120", nil, "")

		var page response.VehiclePageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		assert.Equal(t, []string{"VW-GOLF-01", "TESLA-M3-01", "BMW-X5-01"}, codes(page.Items))
	})

	s.Run("Normal case: paging reports the next limit", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, vehiclesURL+"?offset=0&limit=2", nil, "")

		var page response.VehiclePageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		assert.Len(t, page.Items, 2)
		assert.True(t, page.HasMore)
		assert.Positive(t, page.NextLimit)
	})

	s.Run("Error case: unknown sort key", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, vehiclesURL+"?sort=random", nil, "")

		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("Error case: negative price", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, vehiclesURL+"?min_price=-1", nil, "")

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
	})
}

// =============================================================================
// TestVehicleCatalog - detail, facets and highlights
// =============================================================================

func (s *VehicleSuite) TestVehicleCatalog() {
	s.Run("Normal case: vehicle detail", func() {
		t := s.T()
		golf, ok := dbtest.MustCatalog(t).VehicleByCode("VW-GOLF-01")
		require.True(t, ok)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, vehiclesURL+"/"+golf.ID.String(), nil, "")

		var got response.VehicleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, "Volkswagen", got.Brand)
		assert.Equal(t, 45.0, got.DailyRate)
		assert.Equal(t, []string{"Bremen", "Hamburg"}, got.Locations)
	})

	s.Run("Error case: unknown vehicle", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, vehiclesURL+"/"+uuid.NewString(), nil, "")

		assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Normal case: facets list every brand once", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, vehiclesURL+"/facets", nil, "")

		var facets response.FacetsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &facets)
		assert.Len(t, facets.Brands, 5)
	})

	s.Run("Normal case: highlights", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, vehiclesURL+"/highlights", nil, "")

		var h response.HighlightsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &h)
		require.Len(t, h.SpecialOffers, 1)
		assert.Equal(t, "TESLA-M3-01", h.SpecialOffers[0].Code)
	})

	s.Run("Normal case: locations", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/locations", nil, "")

		var got []*response.LocationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Len(t, got, 3)
	})
}

// =============================================================================
// TestVehicleReviews - review list and rating summary
// =============================================================================

func (s *VehicleSuite) TestVehicleReviews() {
	reviewsURL := func(id uuid.UUID) string {
		return vehiclesURL + "/" + id.String() + "/reviews"
	}

	s.Run("Normal case: newest first with average and count", func() {
		t := s.T()
		catalog := dbtest.MustCatalog(t)
		golf, ok := catalog.VehicleByCode("VW-GOLF-01")
		require.True(t, ok)
		require.Len(t, catalog.ReviewsOf("VW-GOLF-01"), 3)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reviewsURL(golf.ID), nil, "")

		var got response.VehicleReviewsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, golf.ID.String(), got.VehicleID)
		assert.Equal(t, 3, got.ReviewCount)
		assert.Equal(t, 4.0, got.AverageRating)
		require.Len(t, got.Reviews, 3)
		dates := []string{got.Reviews[0].Date, got.Reviews[1].Date, got.Reviews[2].Date}
		if diff := cmp.Diff([]string{"2025-05-18", "2025-04-09", "2025-03-02"}, dates); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, "J", got.Reviews[0].Initial)
		assert.Equal(t, "?", got.Reviews[1].Initial)
	})

	s.Run("Normal case: vehicle without reviews", func() {
		t := s.T()
		x5, ok := dbtest.MustCatalog(t).VehicleByCode("BMW-X5-01")
		require.True(t, ok)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reviewsURL(x5.ID), nil, "")

		var got response.VehicleReviewsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, 0, got.ReviewCount)
		assert.Equal(t, 0.0, got.AverageRating)
		assert.NotNil(t, got.Reviews)
		assert.Empty(t, got.Reviews)
	})

	s.Run("Error case: unknown vehicle", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reviewsURL(uuid.New()), nil, "")

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Vehicle not found")
	})

	s.Run("Error case: malformed id", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, vehiclesURL+"/abc/reviews", nil, "")

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
	})
}
