package api

import (
	"net/http"
	"strconv"

	"github.com/dogecoinfoundation/doge-prize/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditQueries queries.AuditQueries
}

func NewAuditHandler(auditQueries queries.AuditQueries) *AuditHandler {
	return &AuditHandler{auditQueries: auditQueries}
}

func (h *AuditHandler) List(c *gin.Context) {
	var filter queries.AuditFilter
	filter.EntityType = c.Query("entityType")
	if raw := c.Query("entityId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid entity ID",
			})
			return
		}
		filter.EntityID = id
	}

	views, err := h.auditQueries.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}
