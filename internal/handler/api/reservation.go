package api

import (
	"net/http"

	reqdto "vehicle-rental/internal/handler/dto/request"
	resdto "vehicle-rental/internal/handler/dto/response"
	"vehicle-rental/internal/handler/middleware"
	"vehicle-rental/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
}

func NewReservationHandler(cmds commands.ReservationCommands) *ReservationHandler {
	return &ReservationHandler{cmds: cmds}
}

// @Summary Start reservation
// @Description Open a booking draft for a vehicle, optionally prefilled with the search's rental window
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.StartReservationRequest true "Vehicle and rental prefill"
// @Success 201 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) Start(c *gin.Context) {
	var req reqdto.StartReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	view, err := h.cmds.Start(c.Request.Context(), req.VehicleID, req.Rental.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/api/reservations/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromDraftView(view))
}

// @Summary Get reservation draft
// @Tags reservations
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	view, err := h.cmds.Get(c.Request.Context(), id)
	h.respond(c, view, err)
}

// @Summary Update billing details
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body reqdto.BillingRequest true "Billing details"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/billing [put]
func (h *ReservationHandler) UpdateBilling(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	var req reqdto.BillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	view, err := h.cmds.UpdateBilling(c.Request.Context(), id, req.ToDomain())
	h.respond(c, view, err)
}

// @Summary Update rental window
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body reqdto.RentalRequest true "Rental window"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/rental [put]
func (h *ReservationHandler) UpdateRental(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	var req reqdto.RentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	view, err := h.cmds.UpdateRental(c.Request.Context(), id, req.ToDomain())
	h.respond(c, view, err)
}

// @Summary Update payment details
// @Description Select a payment method and fill its fields. Fields of other methods are discarded.
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body reqdto.PaymentRequest true "Payment details"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/payment [put]
func (h *ReservationHandler) UpdatePayment(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	var req reqdto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	payment, err := req.ToDomain()
	if err != nil {
		respondError(c, err)
		return
	}
	view, err := h.cmds.UpdatePayment(c.Request.Context(), id, payment)
	h.respond(c, view, err)
}

// @Summary Update consent
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body reqdto.ConsentRequest true "Consent flags"
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/consent [put]
func (h *ReservationHandler) UpdateConsent(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	var req reqdto.ConsentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	view, err := h.cmds.UpdateConsent(c.Request.Context(), id, req.ToDomain())
	h.respond(c, view, err)
}

// @Summary Advance to the next step
// @Description Validates the current step. Field errors are returned in detail.fields.
// @Tags reservations
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/advance [post]
func (h *ReservationHandler) Advance(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	view, err := h.cmds.Advance(c.Request.Context(), id)
	h.respond(c, view, err)
}

// @Summary Go back to an earlier step
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body reqdto.BackRequest true "Target step"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/back [post]
func (h *ReservationHandler) Back(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	var req reqdto.BackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	step, err := req.ToDomain()
	if err != nil {
		respondError(c, err)
		return
	}
	view, err := h.cmds.Back(c.Request.Context(), id, step)
	h.respond(c, view, err)
}

// @Summary Submit reservation
// @Description Book the confirmed draft. Anonymous callers get 401 with a login redirect.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 201 {object} resdto.SubmitResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Failure 504 {object} map[string]string
// @Router /reservations/{id}/submit [post]
func (h *ReservationHandler) Submit(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	// uuid.Nil when anonymous; the usecase turns that into ErrAuthenticationRequired
	userID, _ := middleware.GetUserID(c)

	result, err := h.cmds.Submit(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSubmitResult(result))
}

func (h *ReservationHandler) respond(c *gin.Context, view *commands.DraftView, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}

func draftID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		bindError(c, err)
		return uuid.Nil, false
	}
	return id, true
}
