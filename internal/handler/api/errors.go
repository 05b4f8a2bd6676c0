package api

import (
	"net/http"

	"vehicle-rental/internal/domain/filter"
	"vehicle-rental/internal/domain/reservation"
	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/handler/httperr"
	"vehicle-rental/internal/handler/middleware"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/usecase/commands"
	"vehicle-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

// Order matters: a timed out submission is also a failed one.
var errorMappings = []errorMapping{
	{commands.ErrAuthenticationRequired, http.StatusUnauthorized, "Authentication required"},

	{errs.ErrVehicleNotFound, http.StatusNotFound, "Vehicle not found"},
	{errs.ErrDraftNotFound, http.StatusNotFound, "Reservation draft not found"},
	{errs.ErrSearchSessionNotFound, http.StatusNotFound, "Search session not found"},

	{reservation.ErrStepNotActive, http.StatusConflict, "Step is not active"},
	{reservation.ErrCannotGoBack, http.StatusConflict, "Cannot go back to that step"},
	{reservation.ErrNoNextStep, http.StatusConflict, "Already at the last step"},
	{reservation.ErrNotReadyToSubmit, http.StatusConflict, "Reservation is not ready to submit"},
	{commands.ErrSubmissionInProgress, http.StatusConflict, "Booking submission in progress"},
	{errs.ErrVehicleUnavailable, http.StatusConflict, "Vehicle not available"},

	{filter.ErrInvalidPriceRange, http.StatusBadRequest, "Invalid price range"},
	{filter.ErrUnknownSortKey, http.StatusBadRequest, "Unknown sort key"},
	{filter.ErrUnknownField, http.StatusBadRequest, "Unknown filter field"},
	{vehicle.ErrInvalidSeatBand, http.StatusBadRequest, "Invalid seat band"},
	{reservation.ErrUnknownStep, http.StatusBadRequest, "Unknown step"},
	{reservation.ErrUnknownPaymentMethod, http.StatusBadRequest, "Unknown payment method"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Invalid request"},

	{commands.ErrSubmissionTimedOut, http.StatusGatewayTimeout, "Booking service timed out"},
	{commands.ErrBookingSubmissionFailed, http.StatusBadGateway, "Booking submission failed"},
	{errs.ErrCatalogUnavailable, http.StatusBadGateway, "Vehicle catalog unavailable"},
}

type validationDetail struct {
	Step   string            `json:"step"`
	Fields map[string]string `json:"fields"`
}

// respondError maps usecase and domain errors onto HTTP responses.
func respondError(c *gin.Context, err error) {
	var ve *reservation.ValidationError
	if errs.As(err, &ve) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed",
			validationDetail{Step: ve.Step.String(), Fields: ve.Fields})
		return
	}

	for _, m := range errorMappings {
		if !errs.Is(err, m.target) {
			continue
		}
		var detail any
		if m.status == http.StatusUnauthorized {
			detail = gin.H{"redirect": middleware.LoginPath}
		}
		httperr.AbortWithError(c, m.status, err, m.msg, detail)
		return
	}

	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func bindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
}
