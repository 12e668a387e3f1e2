package request

type UpsertPoolEntryRequest struct {
	Amount   float64 `json:"amount" binding:"required"`
	Quantity int32   `json:"quantity" binding:"required"`
}

type UpdatePoolEntryRequest struct {
	Amount   float64 `json:"amount" binding:"required"`
	Quantity int32   `json:"quantity"`
}
