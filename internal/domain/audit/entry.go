package audit

import "time"

type Action string

const (
	ActionCreate   Action = "CREATE"
	ActionUpdate   Action = "UPDATE"
	ActionRedeem   Action = "REDEEM"
	ActionDelete   Action = "DELETE"
	ActionSend     Action = "SEND"
	ActionTransfer Action = "TRANSFER"
)

type EntityType string

const (
	EntityPrize          EntityType = "PRIZE"
	EntityDoge           EntityType = "DOGE"
	EntityRedemptionCode EntityType = "REDEMPTION_CODE"
	EntityPrizePool      EntityType = "PRIZE_POOL"
)

// Entry is one append-only audit record. Entries are written after the
// primary operation commits and are never read back by the engines.
type Entry struct {
	ID         int64
	Action     Action
	EntityType EntityType
	EntityID   int64
	Details    string
	CreatedAt  time.Time
}
