package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "github.com/dogecoinfoundation/doge-prize/internal/handler/dto/request"
	resdto "github.com/dogecoinfoundation/doge-prize/internal/handler/dto/response"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/commands"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PoolHandler struct {
	poolUseCase commands.PoolCommands
	poolQueries queries.PoolQueries
}

func NewPoolHandler(poolUseCase commands.PoolCommands, poolQueries queries.PoolQueries) *PoolHandler {
	return &PoolHandler{
		poolUseCase: poolUseCase,
		poolQueries: poolQueries,
	}
}

func (h *PoolHandler) List(c *gin.Context) {
	views, err := h.poolQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromPoolEntryViews(views))
}

func (h *PoolHandler) Upsert(c *gin.Context) {
	var req reqdto.UpsertPoolEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.poolUseCase.Upsert(c.Request.Context(), req.Amount, req.Quantity)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPoolEntryView(view))
}

func (h *PoolHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid prize pool entry ID",
		})
		return
	}

	var req reqdto.UpdatePoolEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.poolUseCase.Update(c.Request.Context(), id, req.Amount, req.Quantity)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPoolEntryView(view))
}

func (h *PoolHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid prize pool entry ID",
		})
		return
	}

	if err := h.poolUseCase.Delete(c.Request.Context(), id); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PoolHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidPoolEntry):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Amount must be positive and quantity non-negative",
		})
	case errors.Is(err, commands.ErrPoolEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Prize pool entry not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
