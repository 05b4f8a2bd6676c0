package api

import (
	"net/http"

	"vehicle-rental/internal/domain/filter"
	reqdto "vehicle-rental/internal/handler/dto/request"
	resdto "vehicle-rental/internal/handler/dto/response"
	"vehicle-rental/internal/usecase/catalog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SearchSessionHandler struct {
	sessions catalog.SearchSessions
}

func NewSearchSessionHandler(sessions catalog.SearchSessions) *SearchSessionHandler {
	return &SearchSessionHandler{sessions: sessions}
}

// @Summary Create search session
// @Description Start a debounced search. The first result is computed once the quiet window elapses; until then the view is pending.
// @Tags search
// @Accept json
// @Produce json
// @Param request body reqdto.CriteriaRequest false "Initial criteria"
// @Success 201 {object} resdto.SearchViewResponse
// @Failure 400 {object} map[string]string
// @Router /search-sessions [post]
func (h *SearchSessionHandler) Create(c *gin.Context) {
	var req reqdto.CriteriaRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
	}
	criteria := filter.NewCriteria()
	if err := req.Apply(&criteria); err != nil {
		respondError(c, err)
		return
	}

	view := h.sessions.Create(criteria)
	c.Header("Location", "/api/search-sessions/"+view.SessionID.String())
	c.JSON(http.StatusCreated, resdto.FromSearchView(view, 0, 0))
}

// @Summary Update search criteria
// @Description Change the criteria. Rapid updates are coalesced; the response shows pending until the recompute lands.
// @Tags search
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.CriteriaRequest true "Criteria changes"
// @Success 200 {object} resdto.SearchViewResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /search-sessions/{id} [patch]
func (h *SearchSessionHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		bindError(c, err)
		return
	}
	var req reqdto.CriteriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	view, err := h.sessions.Update(id, req.Apply)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSearchView(view, 0, 0))
}

// @Summary Get search session
// @Description Current visible list of the session, paged
// @Tags search
// @Produce json
// @Param id path string true "Session ID"
// @Param offset query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.SearchViewResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /search-sessions/{id} [get]
func (h *SearchSessionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		bindError(c, err)
		return
	}
	var page reqdto.SearchPageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		bindError(c, err)
		return
	}

	view, err := h.sessions.View(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSearchView(view, page.Offset, page.Limit))
}
