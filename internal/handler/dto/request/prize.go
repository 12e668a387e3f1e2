package request

import (
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/commands"
)

type CreatePrizeRequest struct {
	RedemptionCode string  `json:"redemptionCode" binding:"required"`
	Type           string  `json:"type" binding:"required"`
	Amount         float64 `json:"amount"`
}

func (r CreatePrizeRequest) ToParams() commands.CreatePrizeParams {
	return commands.CreatePrizeParams{
		RedemptionCode: r.RedemptionCode,
		Type:           r.Type,
		Amount:         r.Amount,
	}
}

type UpdatePrizeRequest struct {
	RedemptionCode string  `json:"redemptionCode" binding:"required"`
	Type           string  `json:"type" binding:"required"`
	Amount         float64 `json:"amount"`
	Status         string  `json:"status" binding:"required"`
}

func (r UpdatePrizeRequest) ToParams() commands.UpdatePrizeParams {
	return commands.UpdatePrizeParams{
		RedemptionCode: r.RedemptionCode,
		Type:           r.Type,
		Amount:         r.Amount,
		Status:         r.Status,
	}
}
