package api

import (
	"net/http"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	cmds commands.RequestCommands
	q    queries.RequestQueries
}

func NewRequestHandler(cmds commands.RequestCommands, q queries.RequestQueries) *RequestHandler {
	return &RequestHandler{cmds: cmds, q: q}
}

// @Summary Post an item request
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param request body reqdto.CreateItemRequestRequest true "What is wanted"
// @Success 201 {object} resdto.RequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	requester, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.CreateItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), requester, req.ToUseCase())
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), requester, result.RequestID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRequestView(*view))
}

// @Summary List own requests
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Success 200 {array} resdto.RequestResponse
// @Failure 404 {object} httperr.Response
// @Router /requests [get]
func (h *RequestHandler) ListOwn(c *gin.Context) {
	requester, ok := actorID(c)
	if !ok {
		return
	}
	views, err := h.q.Own(c.Request.Context(), requester)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestViews(views))
}

// @Summary List other users' requests
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param from query int false "First row (default 0)"
// @Param size query int false "Page size (default 10)"
// @Success 200 {array} resdto.RequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests/all [get]
func (h *RequestHandler) ListOthers(c *gin.Context) {
	viewer, ok := actorID(c)
	if !ok {
		return
	}
	var pq reqdto.PageQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid paging", err.Error())
		return
	}
	views, err := h.q.Others(c.Request.Context(), viewer, pq.ToPage())
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestViews(views))
}

// @Summary Get request
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param requestId path int true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 404 {object} httperr.Response
// @Router /requests/{requestId} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	viewer, ok := actorID(c)
	if !ok {
		return
	}
	requestID, ok := pathID(c, "requestId")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), viewer, requestID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestView(*view))
}
