package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "football-field-booking/internal/handler/dto/request"
	resdto "football-field-booking/internal/handler/dto/response"
	"football-field-booking/internal/handler/httperr"
	"football-field-booking/internal/handler/middleware"
	"football-field-booking/internal/pkg/errs"
	"football-field-booking/internal/usecase/commands"
	"football-field-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
	loc  *time.Location
}

// NewBookingHandler takes the zone naive request timestamps are read in.
func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, loc *time.Location) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, loc: loc}
}

// @Summary Create booking
// @Description Book a field. Rejected slots return 400 with non_field_errors.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, err := middleware.MustActor(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	cmd, err := req.ToCommand(h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, msgTimestampFormat)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), cmd, actor)
	if err != nil {
		// the field is a body reference here, not the addressed resource
		if errors.Is(err, errs.ErrFieldNotFound) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, gin.H{"field": "Field does not exist"})
			return
		}
		abortWithUseCaseError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.BookingID, actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/bookings/"+result.BookingID.String())
	c.JSON(http.StatusCreated, resdto.FromBookingView(view, h.loc))
}

// @Summary List bookings
// @Description Users see their own bookings, owners also see bookings on their fields, admins see all.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param field__name query string false "Exact field name"
// @Param start_time query string false "Exact start time (ISO-8601)"
// @Param end_time query string false "Exact end time (ISO-8601)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	actor, err := middleware.MustActor(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized", nil)
		return
	}
	var query reqdto.BookingListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, err.Error())
		return
	}
	filters, err := query.ToFilters(h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, msgTimestampFormat)
		return
	}
	views, err := h.q.List(c.Request.Context(), filters, actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views, h.loc))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
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
	view, err := h.q.GetByID(c.Request.Context(), id, actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view, h.loc))
}

// @Summary Delete booking
// @Description The booker, the field owner or an admin may cancel a booking.
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
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
