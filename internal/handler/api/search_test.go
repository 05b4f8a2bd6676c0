//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"vehicle-rental/internal/domain/filter"
	"vehicle-rental/internal/handler/api"
	resdto "vehicle-rental/internal/handler/dto/response"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/usecase/catalog"
	"vehicle-rental/tests/common/builder"
	"vehicle-rental/tests/common/httptest"
	catalogmock "vehicle-rental/tests/mock/catalog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SearchSessionHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	sessions  *catalogmock.MockSearchSessions
	router    *gin.Engine
	sessionID uuid.UUID
}

func (s *SearchSessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.sessions = catalogmock.NewMockSearchSessions(s.ctrl)
	s.sessionID = uuid.New()

	h := api.NewSearchSessionHandler(s.sessions)
	s.router = gin.New()
	s.router.POST("/api/search-sessions", h.Create)
	s.router.GET("/api/search-sessions/:id", h.Get)
	s.router.PATCH("/api/search-sessions/:id", h.Update)
}

func (s *SearchSessionHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSearchSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SearchSessionHandlerTestSuite))
}

func (s *SearchSessionHandlerTestSuite) readyView(c filter.Criteria, n int) catalog.View {
	mutations := make([]func(*builder.VehicleBuilder), n)
	for i := range mutations {
		mutations[i] = func(b *builder.VehicleBuilder) {}
	}
	return catalog.View{
		SessionID:  s.sessionID,
		Vehicles:   builder.Catalog(mutations...),
		Criteria:   c,
		Generation: 1,
		Status:     catalog.StatusReady,
		ComputedAt: time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (s *SearchSessionHandlerTestSuite) TestCreate() {
	s.Run("success: empty body starts with default criteria", func() {
		s.sessions.EXPECT().Create(filter.NewCriteria()).Return(s.readyView(filter.NewCriteria(), 20))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/search-sessions", nil, "")

		var res resdto.SearchViewResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		httptest.AssertHeaders(s.T(), w, map[string]string{"Location": "/api/search-sessions/" + s.sessionID.String()})
		assert.Equal(s.T(), "ready", res.Status)
		assert.Len(s.T(), res.Items, filter.FirstPageSize)
		assert.Equal(s.T(), 20, res.Total)
		assert.True(s.T(), res.HasMore)
		assert.Equal(s.T(), "price_asc", res.Criteria.Sort)
		assert.Nil(s.T(), res.Criteria.MaxPrice)
	})

	s.Run("success: initial criteria are applied", func() {
		s.sessions.EXPECT().Create(gomock.Any()).DoAndReturn(func(c filter.Criteria) catalog.View {
			assert.Equal(s.T(), []string{"suv"}, c.Selected(filter.FieldType))
			assert.Equal(s.T(), "Hamburg", c.Pickup())
			return s.readyView(c, 1)
		})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/search-sessions",
			map[string]any{"types": []string{"SUV"}, "pickup": "Hamburg"}, "")

		var res resdto.SearchViewResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		assert.Equal(s.T(), []string{"suv"}, res.Criteria.Types)
	})

	s.Run("error: invalid initial criteria", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/search-sessions",
			map[string]any{"min_price": 100, "max_price": 10}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid price range")
	})
}

func (s *SearchSessionHandlerTestSuite) TestUpdate() {
	url := "/api/search-sessions/" + s.sessionID.String()

	s.Run("success: patch is applied on top of the current criteria", func() {
		current := filter.NewCriteria()
		require.NoError(s.T(), current.Select(filter.FieldBrand, "BMW"))
		current.SetLocations("Bremen", "Hamburg")

		s.sessions.EXPECT().Update(s.sessionID, gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, mutate func(*filter.Criteria) error) (catalog.View, error) {
				c := current
				require.NoError(s.T(), mutate(&c))
				assert.Equal(s.T(), []string{"audi", "bmw"}, c.Selected(filter.FieldBrand))
				assert.Equal(s.T(), "Hamburg", c.Pickup())
				assert.Equal(s.T(), "Bremen", c.Dropoff())
				assert.Equal(s.T(), 80.0, c.Price().Max)
				v := s.readyView(c, 3)
				v.Pending = true
				return v, nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{
			"toggle":         map[string]any{"field": "brand", "value": "Audi"},
			"swap_locations": true,
			"max_price":      80,
		}, "")

		var res resdto.SearchViewResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		assert.True(s.T(), res.Pending)
		require.NotNil(s.T(), res.Criteria.MaxPrice)
		assert.Equal(s.T(), 80.0, *res.Criteria.MaxPrice)
	})

	s.Run("error: rejected mutation", func() {
		s.sessions.EXPECT().Update(s.sessionID, gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, mutate func(*filter.Criteria) error) (catalog.View, error) {
				c := filter.NewCriteria()
				err := mutate(&c)
				return catalog.View{}, errs.Mark(err, errs.ErrDomainValidation)
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"toggle": map[string]any{"field": "colour", "value": "red"}}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Unknown filter field")
	})

	s.Run("error: session expired", func() {
		s.sessions.EXPECT().Update(s.sessionID, gomock.Any()).
			Return(catalog.View{}, errs.Mark(errs.New("gone"), errs.ErrSearchSessionNotFound))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"sort": "name_asc"}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Search session not found")
	})
}

func (s *SearchSessionHandlerTestSuite) TestGet() {
	url := "/api/search-sessions/" + s.sessionID.String()

	s.Run("success: second page", func() {
		s.sessions.EXPECT().View(s.sessionID).Return(s.readyView(filter.NewCriteria(), 15), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?offset=12&limit=8", nil, "")

		var res resdto.SearchViewResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		assert.Len(s.T(), res.Items, 3)
		assert.False(s.T(), res.HasMore)
		assert.Equal(s.T(), 12, res.Offset)
	})

	s.Run("success: failed fetch is reported in the view", func() {
		v := s.readyView(filter.NewCriteria(), 0)
		v.Status = catalog.StatusFailed
		v.Err = "catalog unavailable"
		s.sessions.EXPECT().View(s.sessionID).Return(v, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var res resdto.SearchViewResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		assert.Equal(s.T(), "failed", res.Status)
		assert.Equal(s.T(), "catalog unavailable", res.Error)
		assert.NotNil(s.T(), res.Items)
	})

	s.Run("error: malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/search-sessions/123", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
	})
}
