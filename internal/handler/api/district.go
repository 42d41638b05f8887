package api

import (
	"net/http"

	resdto "football-field-booking/internal/handler/dto/response"
	"football-field-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DistrictHandler struct {
	q queries.DistrictQueries
}

func NewDistrictHandler(q queries.DistrictQueries) *DistrictHandler {
	return &DistrictHandler{q: q}
}

// @Summary List districts
// @Description Reference data for the district_id availability filter.
// @Tags districts
// @Produce json
// @Success 200 {array} resdto.DistrictResponse
// @Router /api/districts [get]
func (h *DistrictHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDistrictViews(views))
}
