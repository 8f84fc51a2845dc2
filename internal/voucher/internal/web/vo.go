package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/pointsmall/internal/voucher/internal/domain"
)

type ListReq struct {
	Category  string `json:"category,omitempty"`
	MinPoints int64  `json:"minPoints,omitempty"`
	MaxPoints int64  `json:"maxPoints,omitempty"`
	Offset    int    `json:"offset,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Sort      string `json:"sort,omitempty"`
}

type ListResp struct {
	Total    int64     `json:"total,omitempty"`
	Vouchers []Voucher `json:"vouchers,omitempty"`
}

type DetailReq struct {
	Id int64 `json:"id"`
}

type SaveReq struct {
	Voucher Voucher `json:"voucher"`
}

type DeleteReq struct {
	Id int64 `json:"id"`
}

type Voucher struct {
	Id                 int64  `json:"id,omitempty"`
	SN                 string `json:"sn,omitempty"`
	Title              string `json:"title,omitempty"`
	Desc               string `json:"desc,omitempty"`
	Category           string `json:"category,omitempty"`
	Brand              string `json:"brand,omitempty"`
	Image              string `json:"image,omitempty"`
	Terms              string `json:"terms,omitempty"`
	PointsCost         int64  `json:"pointsCost,omitempty"`
	OriginalPrice      int64  `json:"originalPrice,omitempty"`
	DiscountPercentage int64  `json:"discountPercentage,omitempty"`
	TotalLimit         int64  `json:"totalLimit,omitempty"`
	RemainingLimit     int64  `json:"remainingLimit,omitempty"`
	UserLimit          int64  `json:"userLimit,omitempty"`
	ExpiryDate         int64  `json:"expiryDate,omitempty"`
	Status             uint8  `json:"status,omitempty"`
	RedemptionCount    int64  `json:"redemptionCount,omitempty"`
}

type AnalyticsResp struct {
	TopRedeemed   []Voucher      `json:"topRedeemed,omitempty"`
	LowRedeemed   []Voucher      `json:"lowRedeemed,omitempty"`
	CategoryStats []CategoryStat `json:"categoryStats,omitempty"`
	Recent        []Voucher      `json:"recent,omitempty"`
}

type CategoryStat struct {
	Category         string  `json:"category,omitempty"`
	TotalVouchers    int64   `json:"totalVouchers,omitempty"`
	TotalRedemptions int64   `json:"totalRedemptions,omitempty"`
	AvgPointsCost    float64 `json:"avgPointsCost,omitempty"`
}

func newVoucher(v domain.Voucher) Voucher {
	return Voucher{
		Id:                 v.Id,
		SN:                 v.SN,
		Title:              v.Title,
		Desc:               v.Desc,
		Category:           v.Category,
		Brand:              v.Brand,
		Image:              v.Image,
		Terms:              v.Terms,
		PointsCost:         v.PointsCost,
		OriginalPrice:      v.OriginalPrice,
		DiscountPercentage: v.DiscountPercentage,
		TotalLimit:         v.TotalLimit,
		RemainingLimit:     v.RemainingLimit,
		UserLimit:          v.UserLimit,
		ExpiryDate:         v.ExpiryDate,
		Status:             v.Status.ToUint8(),
		RedemptionCount:    v.RedemptionCount,
	}
}

func newVouchers(vs []domain.Voucher) []Voucher {
	return slice.Map(vs, func(idx int, src domain.Voucher) Voucher {
		return newVoucher(src)
	})
}

func newCategoryStats(stats []domain.CategoryStat) []CategoryStat {
	return slice.Map(stats, func(idx int, src domain.CategoryStat) CategoryStat {
		return CategoryStat{
			Category:         src.Category,
			TotalVouchers:    src.TotalVouchers,
			TotalRedemptions: src.TotalRedemptions,
			AvgPointsCost:    src.AvgPointsCost,
		}
	})
}
