//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"vehicle-rental/internal/domain/review"
	"vehicle-rental/internal/handler/api"
	resdto "vehicle-rental/internal/handler/dto/response"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/usecase/queries"
	"vehicle-rental/tests/common/builder"
	"vehicle-rental/tests/common/httptest"
	queriesmock "vehicle-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	reviews *queriesmock.MockReviewQueries
	router  *gin.Engine
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.reviews = queriesmock.NewMockReviewQueries(s.ctrl)

	s.router = gin.New()
	s.router.GET("/api/vehicles/:id/reviews", api.NewReviewHandler(s.reviews).ListByVehicle)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

func (s *ReviewHandlerTestSuite) TestListByVehicle() {
	vehicleID := uuid.New()
	path := "/api/vehicles/" + vehicleID.String() + "/reviews"

	s.Run("success", func() {
		reviews := builder.Reviews(vehicleID, 5, 4)
		s.reviews.EXPECT().ListByVehicle(gomock.Any(), vehicleID).Return(&queries.VehicleReviews{
			VehicleID: vehicleID,
			Reviews:   reviews,
			Summary:   review.Summarize(reviews),
		}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")

		var res resdto.VehicleReviewsResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		assert.Equal(s.T(), 4.5, res.AverageRating)
		assert.Equal(s.T(), 2, res.ReviewCount)
		require.Len(s.T(), res.Reviews, 2)
		assert.Equal(s.T(), "2025-05-20", res.Reviews[0].Date)
		assert.Equal(s.T(), "2025-05-19", res.Reviews[1].Date)
		assert.Equal(s.T(), "L", res.Reviews[0].Initial)
	})

	s.Run("success: no reviews renders an empty list", func() {
		s.reviews.EXPECT().ListByVehicle(gomock.Any(), vehicleID).
			Return(&queries.VehicleReviews{VehicleID: vehicleID, Reviews: []*review.Review{}}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")

		assert.Equal(s.T(), http.StatusOK, w.Code)
		assert.Contains(s.T(), w.Body.String(), `"reviews":[]`)
		assert.Contains(s.T(), w.Body.String(), `"review_count":0`)
	})

	s.Run("error: unknown vehicle", func() {
		s.reviews.EXPECT().ListByVehicle(gomock.Any(), vehicleID).
			Return(nil, errs.Mark(errs.New("no rows"), errs.ErrVehicleNotFound))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Vehicle not found")
	})

	s.Run("error: malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/vehicles/not-a-uuid/reviews", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
	})
}
