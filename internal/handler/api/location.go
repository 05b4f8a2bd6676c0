package api

import (
	"net/http"

	resdto "vehicle-rental/internal/handler/dto/response"
	"vehicle-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	q queries.LocationQueries
}

func NewLocationHandler(q queries.LocationQueries) *LocationHandler {
	return &LocationHandler{q: q}
}

// @Summary List locations
// @Description Pickup and dropoff locations offered in the search form
// @Tags locations
// @Produce json
// @Success 200 {array} resdto.LocationResponse
// @Router /locations [get]
func (h *LocationHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromLocations(views)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
