package api

import (
	"net/http"

	"football-field-booking/internal/domain/user"
	reqdto "football-field-booking/internal/handler/dto/request"
	resdto "football-field-booking/internal/handler/dto/response"
	"football-field-booking/internal/handler/httperr"
	"football-field-booking/internal/handler/middleware"
	"football-field-booking/internal/usecase/commands"
	"football-field-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FieldHandler struct {
	cmds commands.FieldCommands
	q    queries.FieldQueries
}

func NewFieldHandler(cmds commands.FieldCommands, q queries.FieldQueries) *FieldHandler {
	return &FieldHandler{cmds: cmds, q: q}
}

// @Summary List fields
// @Description List fields. Owners only see their own fields.
// @Tags fields
// @Produce json
// @Param name query string false "Exact name"
// @Param address query string false "Exact address"
// @Success 200 {array} resdto.FieldResponse
// @Failure 400 {object} httperr.Response
// @Router /api/fields [get]
func (h *FieldHandler) List(c *gin.Context) {
	var query reqdto.FieldListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	views, err := h.q.List(c.Request.Context(), query.ToFilters(), middleware.GetActor(c))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFieldViews(views))
}

// @Summary Get field
// @Tags fields
// @Produce json
// @Param id path string true "Field ID"
// @Success 200 {object} resdto.FieldResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/fields/{id} [get]
func (h *FieldHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidID, nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFieldView(view))
}

// @Summary Create field
// @Description Create a field owned by the caller. Requires the owner role.
// @Tags fields
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateFieldRequest true "Create field request"
// @Success 201 {object} resdto.FieldResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/fields [post]
func (h *FieldHandler) Create(c *gin.Context) {
	actor, err := middleware.MustActor(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand(), actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.FieldID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/fields/"+result.FieldID.String())
	c.JSON(http.StatusCreated, resdto.FromFieldView(view))
}

// @Summary Update field
// @Description Partially update a field. Only its owner may do this.
// @Tags fields
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Field ID"
// @Param request body reqdto.UpdateFieldRequest true "Update field request"
// @Success 200 {object} resdto.FieldResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/fields/{id} [patch]
func (h *FieldHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidID, nil)
		return
	}
	actor, err := middleware.MustActor(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateFieldRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, msgInvalidRequest, nil)
		return
	}
	h.update(c, id, req.ToCommand(), actor)
}

// @Summary Replace field
// @Description Update a field with a full body. Omitted optional members keep their value. Only its owner may do this.
// @Tags fields
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Field ID"
// @Param request body reqdto.ReplaceFieldRequest true "Replace field request"
// @Success 200 {object} resdto.FieldResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/fields/{id} [put]
func (h *FieldHandler) Replace(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidID, nil)
		return
	}
	actor, err := middleware.MustActor(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized", nil)
		return
	}
	var req reqdto.ReplaceFieldRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, msgInvalidRequest, nil)
		return
	}
	h.update(c, id, req.ToCommand(), actor)
}

func (h *FieldHandler) update(c *gin.Context, id uuid.UUID, cmd commands.UpdateFieldRequest, actor user.Actor) {
	if err := h.cmds.Update(c.Request.Context(), id, cmd, actor); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFieldView(view))
}

// @Summary Delete field
// @Description Delete a field with its images and bookings. Only its owner may do this.
// @Tags fields
// @Security BearerAuth
// @Param id path string true "Field ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/fields/{id} [delete]
func (h *FieldHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidID, nil)
		return
	}
	actor, err := middleware.MustActor(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id, actor); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Available fields
// @Description Fields open and not booked during the window, optionally nearest first.
// @Description Naive timestamps are read in the booking timezone. Malformed filters never fail the request.
// @Tags fields
// @Produce json
// @Param district_id query string false "District ID"
// @Param start_time query string false "Window start (ISO-8601)"
// @Param end_time query string false "Window end (ISO-8601)"
// @Param latitude query number false "Reference latitude"
// @Param longitude query number false "Reference longitude"
// @Success 200 {array} resdto.FieldResponse
// @Router /api/available-fields [get]
func (h *FieldHandler) Available(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	views, err := h.q.FindAvailable(c.Request.Context(), query.ToFilters())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFieldViews(views))
}
