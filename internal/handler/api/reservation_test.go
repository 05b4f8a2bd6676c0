//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"vehicle-rental/internal/domain/booking"
	"vehicle-rental/internal/domain/pricing"
	"vehicle-rental/internal/domain/reservation"
	"vehicle-rental/internal/handler/api"
	resdto "vehicle-rental/internal/handler/dto/response"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/usecase/commands"
	"vehicle-rental/tests/common/httptest"
	"vehicle-rental/tests/common/testutil"
	commandsmock "vehicle-rental/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	cmds     *commandsmock.MockReservationCommands
	handler  *api.ReservationHandler
	router   *gin.Engine
	userID   uuid.UUID
	draftID  uuid.UUID
	draftURL string
}

// fakeAuth trusts any bearer token that parses as a user id.
func fakeAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok {
			if id, err := uuid.Parse(raw); err == nil {
				c.Set("user_id", id)
			}
		}
		c.Next()
	}
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.cmds = commandsmock.NewMockReservationCommands(s.ctrl)
	s.handler = api.NewReservationHandler(s.cmds)
	s.userID = uuid.New()
	s.draftID = uuid.New()
	s.draftURL = "/api/reservations/" + s.draftID.String()

	s.router = gin.New()
	g := s.router.Group("/api/reservations", fakeAuth())
	g.POST("", s.handler.Start)
	g.GET("/:id", s.handler.Get)
	g.PUT("/:id/billing", s.handler.UpdateBilling)
	g.PUT("/:id/rental", s.handler.UpdateRental)
	g.PUT("/:id/payment", s.handler.UpdatePayment)
	g.PUT("/:id/consent", s.handler.UpdateConsent)
	g.POST("/:id/advance", s.handler.Advance)
	g.POST("/:id/back", s.handler.Back)
	g.POST("/:id/submit", s.handler.Submit)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) view(step reservation.Step) *commands.DraftView {
	now := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	return &commands.DraftView{
		ID:   s.draftID,
		Step: step,
		Vehicle: reservation.VehicleSnapshot{
			ID:        uuid.New(),
			Name:      "VW Golf",
			DailyRate: 40,
			Locations: []string{"Bremen"},
		},
		Quote:     pricing.Quote{Days: 3, DailyRate: 40, Subtotal: 120, Total: 120},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *ReservationHandlerTestSuite) TestStart() {
	vehicleID := uuid.New()
	valid := map[string]any{
		"vehicle_id": vehicleID.String(),
		"rental": map[string]any{
			"pickup_location": "Bremen",
			"pickup_date":     "2025-01-10",
		},
	}

	s.Run("success: draft is created with the rental prefill", func() {
		s.cmds.EXPECT().
			Start(gomock.Any(), vehicleID, reservation.RentalWindow{PickupLocation: "Bremen", PickupDate: "2025-01-10"}).
			Return(s.view(reservation.StepBilling), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations", valid, "")

		var res resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		httptest.AssertHeaders(s.T(), w, map[string]string{"Location": s.draftURL})
		assert.Equal(s.T(), "billing", res.Step)
		assert.Equal(s.T(), "120.00", res.Quote.Display)
	})

	cases := []struct {
		name string
		body map[string]any
	}{
		{"missing vehicle id", testutil.DtoMap(s.T(), valid, testutil.Field("vehicle_id", nil))},
		{"malformed vehicle id", testutil.DtoMap(s.T(), valid, testutil.Field("vehicle_id", "nope"))},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations", tc.body, "")
			httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
		})
	}

	s.Run("error: unknown vehicle", func() {
		s.cmds.EXPECT().Start(gomock.Any(), vehicleID, gomock.Any()).
			Return(nil, errs.Mark(errs.New("no rows"), errs.ErrVehicleNotFound))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations", valid, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Vehicle not found")
	})
}

func (s *ReservationHandlerTestSuite) TestUpdatePayment() {
	s.Run("success: card number is masked and the cvv never returned", func() {
		view := s.view(reservation.StepPayment)
		view.Payment = reservation.PaymentDetails{
			Method: reservation.PaymentCard,
			Card:   reservation.CardDetails{Number: "4111 1111 1111 1234", Holder: "Erika", Expiry: "12/29", CVV: "123"},
		}
		s.cmds.EXPECT().
			UpdatePayment(gomock.Any(), s.draftID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, p reservation.PaymentDetails) (*commands.DraftView, error) {
				assert.Equal(s.T(), reservation.PaymentCard, p.Method)
				assert.Equal(s.T(), "123", p.Card.CVV)
				return view, nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.draftURL+"/payment", map[string]any{
			"method":      "credit",
			"card_number": "4111 1111 1111 1234",
			"card_holder": "Erika",
			"card_expiry": "12/29",
			"card_cvv":    "123",
		}, "")

		var res resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		assert.Equal(s.T(), "************1234", res.Payment.CardNumber)
		assert.NotContains(s.T(), w.Body.String(), `"123"`)
	})

	s.Run("error: unknown method is rejected before the draft is touched", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.draftURL+"/payment",
			map[string]any{"method": "cheque"}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Unknown payment method")
	})

	s.Run("error: payment step is not active", func() {
		s.cmds.EXPECT().UpdatePayment(gomock.Any(), s.draftID, gomock.Any()).
			Return(nil, reservation.ErrStepNotActive)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.draftURL+"/payment",
			map[string]any{"method": "paypal", "paypal_email": "a@b.de"}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Step is not active")
	})
}

func (s *ReservationHandlerTestSuite) TestAdvance() {
	s.Run("success", func() {
		s.cmds.EXPECT().Advance(gomock.Any(), s.draftID).Return(s.view(reservation.StepRental), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.draftURL+"/advance", nil, "")

		var res resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		assert.Equal(s.T(), "rental", res.Step)
	})

	s.Run("error: field errors are returned in detail", func() {
		s.cmds.EXPECT().Advance(gomock.Any(), s.draftID).Return(nil, &reservation.ValidationError{
			Step:   reservation.StepBilling,
			Fields: reservation.FieldErrors{"name": "is required"},
		})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.draftURL+"/advance", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Validation failed")
		var body struct {
			Detail struct {
				Step   string            `json:"step"`
				Fields map[string]string `json:"fields"`
			} `json:"detail"`
		}
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(s.T(), "billing", body.Detail.Step)
		assert.Equal(s.T(), map[string]string{"name": "is required"}, body.Detail.Fields)
	})

	s.Run("error: malformed draft id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations/xyz/advance", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: draft expired", func() {
		s.cmds.EXPECT().Advance(gomock.Any(), s.draftID).
			Return(nil, errs.Mark(errs.New("draft"), errs.ErrDraftNotFound))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.draftURL+"/advance", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Reservation draft not found")
	})
}

func (s *ReservationHandlerTestSuite) TestBack() {
	s.Run("success", func() {
		s.cmds.EXPECT().Back(gomock.Any(), s.draftID, reservation.StepBilling).
			Return(s.view(reservation.StepBilling), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.draftURL+"/back", map[string]any{"step": "Billing"}, "")

		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
	})

	s.Run("error: unknown step", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.draftURL+"/back", map[string]any{"step": "summary"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Unknown step")
	})

	s.Run("error: forward jump", func() {
		s.cmds.EXPECT().Back(gomock.Any(), s.draftID, reservation.StepPayment).
			Return(nil, reservation.ErrCannotGoBack)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.draftURL+"/back", map[string]any{"step": "payment"}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Cannot go back")
	})
}

func (s *ReservationHandlerTestSuite) TestSubmit() {
	created := booking.Reconstruct(uuid.New(), s.draftID, uuid.New(), s.userID, "Bremen", "Hamburg",
		time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC), time.Date(2025, 1, 12, 9, 0, 0, 0, time.UTC),
		80, booking.StatusConfirmed, time.Now(), time.Now())

	s.Run("success: authenticated user books the draft", func() {
		s.cmds.EXPECT().Submit(gomock.Any(), s.draftID, s.userID).
			Return(&commands.SubmitResult{Booking: created, DraftID: s.draftID}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.draftURL+"/submit", nil, s.userID.String())

		var res resdto.SubmitResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		require.NotNil(s.T(), res.Booking)
		assert.Equal(s.T(), created.ID().String(), res.Booking.ID)
		assert.Equal(s.T(), "2025-01-10T09:00:00Z", res.Booking.Pickup)
	})

	s.Run("error: anonymous caller is sent to login", func() {
		s.cmds.EXPECT().Submit(gomock.Any(), s.draftID, uuid.Nil).Return(nil, commands.ErrAuthenticationRequired)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.draftURL+"/submit", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Authentication required")
		assert.Contains(s.T(), w.Body.String(), `"redirect":"/login"`)
	})

	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{
			name:   "timeout",
			err:    errs.Mark(errs.Mark(context.DeadlineExceeded, commands.ErrBookingSubmissionFailed), commands.ErrSubmissionTimedOut),
			status: http.StatusGatewayTimeout,
			msg:    "timed out",
		},
		{
			name:   "backend failure",
			err:    errs.Mark(errs.New("connection reset"), commands.ErrBookingSubmissionFailed),
			status: http.StatusBadGateway,
			msg:    "Booking submission failed",
		},
		{
			name:   "vehicle taken",
			err:    errs.Mark(errs.Mark(errs.New("not available"), errs.ErrVehicleUnavailable), commands.ErrBookingSubmissionFailed),
			status: http.StatusConflict,
			msg:    "Vehicle not available",
		},
		{
			name:   "double submit",
			err:    commands.ErrSubmissionInProgress,
			status: http.StatusConflict,
			msg:    "in progress",
		},
		{
			name:   "not at confirmation",
			err:    reservation.ErrNotReadyToSubmit,
			status: http.StatusConflict,
			msg:    "not ready",
		},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			s.cmds.EXPECT().Submit(gomock.Any(), s.draftID, s.userID).Return(nil, tc.err)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.draftURL+"/submit", nil, s.userID.String())

			httptest.AssertErrorResponse(s.T(), w, tc.status, tc.msg)
		})
	}
}
