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

type ItemHandler struct {
	cmds     commands.ItemCommands
	comments commands.CommentCommands
	q        queries.ItemQueries
}

func NewItemHandler(cmds commands.ItemCommands, comments commands.CommentCommands, q queries.ItemQueries) *ItemHandler {
	return &ItemHandler{cmds: cmds, comments: comments, q: q}
}

// @Summary Create item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param request body reqdto.CreateItemRequest true "Create item request"
// @Success 201 {object} resdto.ItemDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	ownerID, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), ownerID, req.ToUseCase())
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), ownerID, result.ItemID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromItemView(*view))
}

// @Summary Update item
// @Description Owner-only partial update
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param itemId path int true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Update item request"
// @Success 200 {object} resdto.ItemDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	if err := h.cmds.Update(c.Request.Context(), actor, itemID, req.ToUseCase()); err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, itemID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(*view))
}

// @Summary Delete item
// @Tags items
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param itemId path int true "Item ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), actor, itemID); err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get item
// @Description Comments are always included; last/next bookings only for the owner
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param itemId path int true "Item ID"
// @Success 200 {object} resdto.ItemDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	viewer, ok := actorID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), viewer, itemID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(*view))
}

// @Summary List own items
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param from query int false "First row (default 0)"
// @Param size query int false "Page size (default 10)"
// @Success 200 {array} resdto.ItemDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items [get]
func (h *ItemHandler) ListOwn(c *gin.Context) {
	owner, ok := actorID(c)
	if !ok {
		return
	}
	var pq reqdto.PageQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid paging", err.Error())
		return
	}
	views, err := h.q.ListByOwner(c.Request.Context(), owner, pq.ToPage())
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Search available items
// @Description Case-insensitive match on name or description; blank text returns []
// @Tags items
// @Produce json
// @Param text query string false "Search text"
// @Param from query int false "First row (default 0)"
// @Param size query int false "Page size (default 10)"
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Router /items/search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	var sq reqdto.SearchQuery
	if err := c.ShouldBindQuery(&sq); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid paging", err.Error())
		return
	}
	items, err := h.q.Search(c.Request.Context(), sq.Text, sq.ToPage())
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItems(items))
}

// @Summary Comment on item
// @Description Allowed only after the author has rented the item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param itemId path int true "Item ID"
// @Param request body reqdto.CreateCommentRequest true "Comment"
// @Success 201 {object} resdto.CommentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId}/comment [post]
func (h *ItemHandler) Comment(c *gin.Context) {
	author, ok := actorID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	result, err := h.comments.Create(c.Request.Context(), author, itemID, req.ToUseCase())
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	view, err := h.q.GetComment(c.Request.Context(), result.CommentID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromComment(*view))
}
