package api

import (
	"context"
	"net/http"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Request a booking
// @Description Creates a WAITING booking. A repeated Idempotency-Key replays the first response.
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param Idempotency-Key header string false "Client retry key"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	bookerID, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), bookerID, req.ToUseCase())
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), bookerID, result.BookingID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBooking(*view))
}

// @Summary Approve or reject a booking
// @Description Item owner only, while the booking is WAITING
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param bookingId path int true "Booking ID"
// @Param approved query bool true "Decision"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{bookingId} [patch]
func (h *BookingHandler) Decide(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	var dq reqdto.DecisionQuery
	if err := c.ShouldBindQuery(&dq); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid approved flag", err.Error())
		return
	}
	if err := h.cmds.Decide(c.Request.Context(), actor, bookingID, *dq.Approved); err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, bookingID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(*view))
}

// @Summary Get booking
// @Description Visible to the booker and the item owner
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param bookingId path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{bookingId} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, bookingID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(*view))
}

// @Summary List own bookings
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "First row (default 0)"
// @Param size query int false "Page size (default 10)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListByBooker(c *gin.Context) {
	h.list(c, h.q.ListByBooker)
}

// @Summary List bookings of own items
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "First row (default 0)"
// @Param size query int false "Page size (default 10)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/owner [get]
func (h *BookingHandler) ListByOwner(c *gin.Context) {
	h.list(c, h.q.ListByOwner)
}

type bookingLister func(ctx context.Context, userID int64, state string, page readmodel.Page) ([]readmodel.BookingRM, error)

func (h *BookingHandler) list(c *gin.Context, fetch bookingLister) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	var lq reqdto.BookingListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid paging", err.Error())
		return
	}
	bookings, err := fetch(c.Request.Context(), actor, lq.State, lq.ToPage())
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookings(bookings))
}
