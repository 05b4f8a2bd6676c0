package api

import (
	"net/http"

	reqdto "vehicle-rental/internal/handler/dto/request"
	resdto "vehicle-rental/internal/handler/dto/response"
	"vehicle-rental/internal/handler/middleware"
	"vehicle-rental/internal/usecase/commands"
	"vehicle-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	q queries.BookingQueries
}

func NewBookingHandler(q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{q: q}
}

// @Summary List my bookings
// @Description Newest pickup first, keyset paginated
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param after query string false "Cursor from next_cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondError(c, commands.ErrAuthenticationRequired)
		return
	}
	var req reqdto.BookingListQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	items, next, err := h.q.ListByUser(c.Request.Context(), userID, req.Cursor(), req.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromBookingList(items, next)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
