package api

import (
	"errors"
	"net/http"

	reqdto "github.com/dogecoinfoundation/doge-prize/internal/handler/dto/request"
	resdto "github.com/dogecoinfoundation/doge-prize/internal/handler/dto/response"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type TransferHandler struct {
	transferUseCase commands.TransferCommands
}

func NewTransferHandler(transferUseCase commands.TransferCommands) *TransferHandler {
	return &TransferHandler{transferUseCase: transferUseCase}
}

func (h *TransferHandler) Transfer(c *gin.Context) {
	var req reqdto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, resdto.TransferResponse{
			Success: false,
			Error:   "Redemption code and wallet address are required",
		})
		return
	}

	result, err := h.transferUseCase.Transfer(c.Request.Context(), req.Code, req.WalletAddress)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrWalletAddressRequired):
			c.JSON(http.StatusBadRequest, resdto.TransferResponse{
				Success: false,
				Error:   "Redemption code and wallet address are required",
			})
		case errors.Is(err, commands.ErrPrizeNotFound):
			c.JSON(http.StatusNotFound, resdto.TransferResponse{
				Success: false,
				Error:   "Invalid redemption code",
			})
		case errors.Is(err, commands.ErrAlreadyTransferred):
			c.JSON(http.StatusBadRequest, resdto.TransferResponse{
				Success: false,
				Error:   "Prize has already been transferred",
			})
		case errors.Is(err, commands.ErrNotRedeemed):
			c.JSON(http.StatusBadRequest, resdto.TransferResponse{
				Success: false,
				Error:   "Prize must be redeemed before it can be transferred",
			})
		case errors.Is(err, commands.ErrSendFailed):
			c.JSON(http.StatusInternalServerError, resdto.TransferResponse{
				Success: false,
				Error:   "Failed to send transaction",
			})
		case errors.Is(err, commands.ErrPostSendUpdateFailed):
			c.JSON(http.StatusInternalServerError, resdto.TransferResponse{
				Success: false,
				Error:   "Transaction sent but failed to update prize status",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.TransferResponse{
		Success:         true,
		Message:         result.Message,
		TransactionHash: result.TransactionID,
		Prize:           resdto.FromPrizeView(result.Prize),
	})
}
