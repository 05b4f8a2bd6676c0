package api

import (
	"net/http"

	reqdto "vehicle-rental/internal/handler/dto/request"
	resdto "vehicle-rental/internal/handler/dto/response"
	"vehicle-rental/internal/pkg/config"
	"vehicle-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VehicleHandler struct {
	q        queries.VehicleQueries
	pageSize int
}

func NewVehicleHandler(q queries.VehicleQueries, cfg config.Config) *VehicleHandler {
	return &VehicleHandler{q: q, pageSize: cfg.Catalog.PageSize}
}

// @Summary Search vehicles
// @Description Filter and sort the catalog in one request
// @Tags vehicles
// @Produce json
// @Param brand query []string false "Brands (repeat or comma separate)"
// @Param type query []string false "Vehicle types"
// @Param gear query []string false "Transmissions"
// @Param fuel query []string false "Fuel kinds"
// @Param seats query []string false "Seat bands: 2, 4, 6, 8+"
// @Param min_price query number false "Minimum daily rate"
// @Param max_price query number false "Maximum daily rate"
// @Param pickup query string false "Pickup location"
// @Param dropoff query string false "Dropoff location"
// @Param only_available query bool false "Hide unavailable vehicles"
// @Param sort query string false "price_asc, price_desc, name_asc or name_desc"
// @Param offset query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.VehiclePageResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /vehicles [get]
func (h *VehicleHandler) Search(c *gin.Context) {
	var req reqdto.VehicleSearchQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}
	criteria, err := req.Criteria()
	if err != nil {
		respondError(c, err)
		return
	}

	limit := req.Limit
	if limit == 0 && req.Offset == 0 {
		limit = h.pageSize
	}
	page, err := h.q.Search(c.Request.Context(), criteria, req.Offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVehiclePage(page))
}

// @Summary Get vehicle
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} resdto.VehicleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		bindError(c, err)
		return
	}
	v, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVehicle(v))
}

// @Summary Filter facets
// @Description Selectable brands, types and seat bands with counts, plus the price bounds
// @Tags vehicles
// @Produce json
// @Success 200 {object} resdto.FacetsResponse
// @Failure 502 {object} map[string]string
// @Router /vehicles/facets [get]
func (h *VehicleHandler) Facets(c *gin.Context) {
	facets, err := h.q.Facets(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromFacets(facets)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Highlights
// @Description Featured vehicles and special offers
// @Tags vehicles
// @Produce json
// @Success 200 {object} resdto.HighlightsResponse
// @Failure 502 {object} map[string]string
// @Router /vehicles/highlights [get]
func (h *VehicleHandler) Highlights(c *gin.Context) {
	highlights, err := h.q.Highlights(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHighlights(highlights))
}
