package response

import (
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/queries"
)

type RequiredBalanceResponse struct {
	Success bool `json:"success"`
	queries.RequiredBalanceReport
}

type WalletBalanceResponse struct {
	Success bool `json:"success"`
	queries.WalletBalanceReport
}

func FromRequiredBalanceReport(r *queries.RequiredBalanceReport) RequiredBalanceResponse {
	return RequiredBalanceResponse{Success: true, RequiredBalanceReport: *r}
}

func FromWalletBalanceReport(r *queries.WalletBalanceReport) WalletBalanceResponse {
	return WalletBalanceResponse{Success: true, WalletBalanceReport: *r}
}
