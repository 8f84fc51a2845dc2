package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/pointsmall/internal/redemption/internal/domain"
)

type ListReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListResp struct {
	Total       int64        `json:"total,omitempty"`
	Redemptions []Redemption `json:"redemptions,omitempty"`
}

type Redemption struct {
	SN              string `json:"sn,omitempty"`
	VoucherId       int64  `json:"voucherId,omitempty"`
	VoucherTitle    string `json:"voucherTitle,omitempty"`
	VoucherCategory string `json:"voucherCategory,omitempty"`
	PointsUsed      int64  `json:"pointsUsed,omitempty"`
	RedeemedAt      int64  `json:"redeemedAt,omitempty"`
}

type RedeemResult struct {
	SN              string `json:"sn,omitempty"`
	VoucherTitle    string `json:"voucherTitle,omitempty"`
	PointsUsed      int64  `json:"pointsUsed,omitempty"`
	RemainingPoints int64  `json:"remainingPoints"`
}

type Stats struct {
	TotalRedemptions int64           `json:"totalRedemptions"`
	TotalPointsUsed  int64           `json:"totalPointsUsed"`
	CategoryCounts   []CategoryCount `json:"categoryCounts,omitempty"`
}

type CategoryCount struct {
	Category string `json:"category,omitempty"`
	Count    int64  `json:"count,omitempty"`
}

func newRedemptions(rs []domain.Redemption) []Redemption {
	return slice.Map(rs, func(idx int, src domain.Redemption) Redemption {
		return Redemption{
			SN:              src.SN,
			VoucherId:       src.VoucherId,
			VoucherTitle:    src.VoucherTitle,
			VoucherCategory: src.VoucherCategory,
			PointsUsed:      src.PointsUsed,
			RedeemedAt:      src.RedeemedAt,
		}
	})
}
