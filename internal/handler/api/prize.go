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

// maxCSVUploadBytes bounds prize import files.
const maxCSVUploadBytes = 5 << 20

type PrizeHandler struct {
	prizeUseCase commands.PrizeCommands
	prizeQueries queries.PrizeQueries
}

func NewPrizeHandler(prizeUseCase commands.PrizeCommands, prizeQueries queries.PrizeQueries) *PrizeHandler {
	return &PrizeHandler{
		prizeUseCase: prizeUseCase,
		prizeQueries: prizeQueries,
	}
}

func (h *PrizeHandler) List(c *gin.Context) {
	views, err := h.prizeQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromPrizeViews(views))
}

func (h *PrizeHandler) Create(c *gin.Context) {
	var req reqdto.CreatePrizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.prizeUseCase.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPrizeView(view))
}

func (h *PrizeHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid prize ID",
		})
		return
	}

	var req reqdto.UpdatePrizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.prizeUseCase.Update(c.Request.Context(), id, req.ToParams())
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPrizeView(view))
}

func (h *PrizeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid prize ID",
		})
		return
	}

	if err := h.prizeUseCase.Delete(c.Request.Context(), id); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PrizeHandler) ImportCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "A CSV file is required",
		})
		return
	}
	if fileHeader.Size > maxCSVUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "CSV file is too large",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to read CSV file",
		})
		return
	}
	defer file.Close()

	imported, err := h.prizeUseCase.ImportCSV(c.Request.Context(), file, fileHeader.Filename)
	if err != nil {
		var csvErr *commands.CSVValidationError
		if errors.As(err, &csvErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "CSV validation failed",
				"details": csvErr.Problems,
			})
			return
		}
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ImportPrizesResponse{
		Success:  true,
		Imported: imported,
	})
}

func (h *PrizeHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrCodeRequired):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Redemption code is required",
		})
	case errors.Is(err, commands.ErrInvalidPrizeType):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid prize type",
		})
	case errors.Is(err, commands.ErrInvalidPrizeState):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid prize status",
		})
	case errors.Is(err, commands.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "A positive amount is required for this prize type",
		})
	case errors.Is(err, commands.ErrDuplicateCode):
		c.JSON(http.StatusConflict, gin.H{
			"error": "A prize with this redemption code already exists",
		})
	case errors.Is(err, commands.ErrPrizeNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Prize not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
