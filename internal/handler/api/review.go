package api

import (
	"net/http"

	resdto "vehicle-rental/internal/handler/dto/response"
	"vehicle-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	q queries.ReviewQueries
}

func NewReviewHandler(q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{q: q}
}

// @Summary List vehicle reviews
// @Description Reviews of one vehicle, newest first, with the average rating and count
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} resdto.VehicleReviewsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vehicles/{id}/reviews [get]
func (h *ReviewHandler) ListByVehicle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		bindError(c, err)
		return
	}
	res, err := h.q.ListByVehicle(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVehicleReviews(res))
}
