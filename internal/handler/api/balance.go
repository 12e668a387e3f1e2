package api

import (
	"errors"
	"net/http"

	resdto "github.com/dogecoinfoundation/doge-prize/internal/handler/dto/response"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BalanceHandler struct {
	balanceQueries queries.BalanceQueries
	walletQueries  queries.WalletQueries
}

func NewBalanceHandler(balanceQueries queries.BalanceQueries, walletQueries queries.WalletQueries) *BalanceHandler {
	return &BalanceHandler{
		balanceQueries: balanceQueries,
		walletQueries:  walletQueries,
	}
}

// RequiredBalance reports how much DOGE the wallet must hold to cover every
// active prize plus the full pool.
func (h *BalanceHandler) RequiredBalance(c *gin.Context) {
	report, err := h.balanceQueries.RequiredBalance(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequiredBalanceReport(report))
}

func (h *BalanceHandler) WalletBalance(c *gin.Context) {
	report, err := h.walletQueries.BalanceReport(c.Request.Context())
	if err != nil {
		if errors.Is(err, queries.ErrWalletUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Wallet is unavailable",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromWalletBalanceReport(report))
}
