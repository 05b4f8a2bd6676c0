//go:build e2e

package search_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"vehicle-rental/internal/handler/dto/request"
	"vehicle-rental/internal/handler/dto/response"
	"vehicle-rental/internal/pkg/ptr"
	"vehicle-rental/tests/common/httptest"
	"vehicle-rental/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const sessionsURL = "/api/search-sessions"

type SearchSessionSuite struct {
	e2e.SharedSuite
}

func TestSearchSessionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SearchSessionSuite))
}

func (s *SearchSessionSuite) create(t *testing.T, body any) response.SearchViewResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL, body, "")
	var view response.SearchViewResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &view)
	require.NotEmpty(t, view.SessionID)
	assert.Equal(t, sessionsURL+"/"+view.SessionID, w.Header().Get("Location"))
	return view
}

// settled polls until every accepted edit has been applied.
func (s *SearchSessionSuite) settled(t *testing.T, id string) response.SearchViewResponse {
	t.Helper()
	var view response.SearchViewResponse
	require.Eventually(t, func() bool {
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, sessionsURL+"/"+id, nil, "")
		if w.Code != http.StatusOK {
			return false
		}
		view = response.SearchViewResponse{}
		if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
			return false
		}
		return !view.Pending && view.Status != "idle" && view.Status != "loading"
	}, 5*time.Second, 50*time.Millisecond, "search session did not settle")
	return view
}

func (s *SearchSessionSuite) TestSearchSessionLifecycle() {
	s.Run("Normal case: initial criteria are applied after the quiet period", func() {
		t := s.T()

		created := s.create(t, request.CriteriaRequest{Brands: &[]string{"BMW", "Tesla"}})
		view := s.settled(t, created.SessionID)

		assert.Equal(t, "ready", view.Status)
		assert.Equal(t, 2, view.Total)
		assert.ElementsMatch(t, []string{"bmw", "tesla"}, view.Criteria.Brands)
	})

	s.Run("Normal case: edits bump the generation and replace the view", func() {
		t := s.T()

		created := s.create(t, nil)
		first := s.settled(t, created.SessionID)
		require.Equal(t, 5, first.Total)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, sessionsURL+"/"+created.SessionID,
			request.CriteriaRequest{
				Toggle:        &request.ToggleRequest{Field: "gear", Value: "Automatic"},
				OnlyAvailable: ptr.Of(true),
			}, "")
		var patched response.SearchViewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &patched)
		assert.True(t, patched.Pending)

		view := s.settled(t, created.SessionID)
		assert.Greater(t, view.Generation, first.Generation)
		assert.Equal(t, 2, view.Total)
		assert.True(t, view.Criteria.OnlyAvailable)
	})

	s.Run("Normal case: clearing the price band removes the upper bound", func() {
		t := s.T()

		created := s.create(t, request.CriteriaRequest{MaxPrice: ptr.Of(50.0)})
		view := s.settled(t, created.SessionID)
		require.NotNil(t, view.Criteria.MaxPrice)
		assert.Equal(t, 2, view.Total)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, sessionsURL+"/"+created.SessionID,
			request.CriteriaRequest{ClearPrice: true}, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		view = s.settled(t, created.SessionID)
		assert.Nil(t, view.Criteria.MaxPrice)
		assert.Equal(t, 5, view.Total)
	})

	s.Run("Error case: unknown session", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, sessionsURL+"/"+uuid.NewString(), nil, "")

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Search session not found")
	})

	s.Run("Error case: invalid seat band", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL,
			request.CriteriaRequest{Seats: &[]string{"3"}}, "")

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid seat band")
	})
}
