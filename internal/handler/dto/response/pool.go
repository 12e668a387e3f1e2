package response

import (
	"time"

	"github.com/dogecoinfoundation/doge-prize/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type PoolEntryResponse struct {
	ID        int64     `json:"id"`
	Amount    float64   `json:"amount"`
	Quantity  int32     `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromPoolEntryView(v *queries.PoolEntryView) *PoolEntryResponse {
	if v == nil {
		return nil
	}
	var resp PoolEntryResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromPoolEntryViews(views []*queries.PoolEntryView) []*PoolEntryResponse {
	resps := make([]*PoolEntryResponse, 0, len(views))
	for _, v := range views {
		resps = append(resps, FromPoolEntryView(v))
	}
	return resps
}
