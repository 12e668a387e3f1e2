package queries

import "time"

// Read models. JSON field names match the original client contract.

type PrizeView struct {
	ID             int64     `json:"id"`
	RedemptionCode string    `json:"redemptionCode"`
	Amount         float64   `json:"amount"`
	Type           string    `json:"type"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type PoolEntryView struct {
	ID        int64     `json:"id"`
	Amount    float64   `json:"amount"`
	Quantity  int32     `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AuditEntryView struct {
	ID         int64     `json:"id"`
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   int64     `json:"entityId"`
	Details    *string   `json:"details"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RequiredBalanceReport states how much DOGE the wallet must hold to cover
// every outstanding obligation.
type RequiredBalanceReport struct {
	RequiredBalance         float64 `json:"requiredBalance"`
	ActivePrizesCount       int     `json:"activePrizesCount"`
	SpecificPrizesBalance   float64 `json:"specificPrizesBalance"`
	ActiveRandomPrizesCount int     `json:"activeRandomPrizesCount"`
	PrizePoolTotal          float64 `json:"prizePoolTotal"`
}

type WalletBalanceReport struct {
	AvailableBalance float64  `json:"availableBalance"`
	PendingBalance   float64  `json:"pendingBalance"`
	TotalBalance     float64  `json:"totalBalance"`
	Addresses        []string `json:"addresses"`
}
