package api

import (
	"errors"
	"net/http"

	reqdto "github.com/dogecoinfoundation/doge-prize/internal/handler/dto/request"
	resdto "github.com/dogecoinfoundation/doge-prize/internal/handler/dto/response"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type RedeemHandler struct {
	redeemUseCase commands.RedeemCommands
}

func NewRedeemHandler(redeemUseCase commands.RedeemCommands) *RedeemHandler {
	return &RedeemHandler{redeemUseCase: redeemUseCase}
}

func (h *RedeemHandler) Redeem(c *gin.Context) {
	var req reqdto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, resdto.RedeemResponse{
			Valid: false,
			Error: "Redemption code is required",
		})
		return
	}

	result, err := h.redeemUseCase.Redeem(c.Request.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCodeRequired):
			c.JSON(http.StatusBadRequest, resdto.RedeemResponse{
				Valid: false,
				Error: "Redemption code is required",
			})
		case errors.Is(err, commands.ErrPrizeNotFound):
			c.JSON(http.StatusNotFound, resdto.RedeemResponse{
				Valid: false,
				Error: "Invalid redemption code",
			})
		case errors.Is(err, commands.ErrPoolExhausted):
			c.JSON(http.StatusNotFound, resdto.RedeemResponse{
				Valid: false,
				Error: "No prizes available in the pool",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.RedeemResponse{
		Valid:   true,
		Prize:   resdto.FromPrizeView(result.Prize),
		Message: result.Message,
	})
}
