package response

import (
	"time"

	"github.com/dogecoinfoundation/doge-prize/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type PrizeResponse struct {
	ID             int64     `json:"id"`
	RedemptionCode string    `json:"redemptionCode"`
	Amount         float64   `json:"amount"`
	Type           string    `json:"type"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromPrizeView(v *queries.PrizeView) *PrizeResponse {
	if v == nil {
		return nil
	}
	var resp PrizeResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromPrizeViews(views []*queries.PrizeView) []*PrizeResponse {
	resps := make([]*PrizeResponse, 0, len(views))
	for _, v := range views {
		resps = append(resps, FromPrizeView(v))
	}
	return resps
}

// RedeemResponse is the public redemption envelope. Valid reports whether
// the code exists; Message carries the human-readable outcome either way.
type RedeemResponse struct {
	Valid   bool           `json:"valid"`
	Prize   *PrizeResponse `json:"prize,omitempty"`
	Message string         `json:"message,omitempty"`
	Error   string         `json:"error,omitempty"`
}

type TransferResponse struct {
	Success         bool           `json:"success"`
	Message         string         `json:"message,omitempty"`
	TransactionHash string         `json:"transactionHash,omitempty"`
	Prize           *PrizeResponse `json:"prize,omitempty"`
	Error           string         `json:"error,omitempty"`
}

type ImportPrizesResponse struct {
	Success  bool  `json:"success"`
	Imported int64 `json:"imported"`
}
