// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import "time"

type Voucher struct {
	Id       int64
	SN       string
	Title    string
	Desc     string
	Category string
	Brand    string
	Image    string
	Terms    string
	// 兑换一次需要的积分
	PointsCost int64
	// 原价，单位为分
	OriginalPrice      int64
	DiscountPercentage int64
	// 总库存，创建之后不允许修改
	TotalLimit int64
	// 剩余库存，只会被兑换引擎条件扣减
	RemainingLimit int64
	// 单个用户最多兑换次数
	UserLimit int64
	// 过期时间，毫秒时间戳
	ExpiryDate int64
	Status     Status
	// 成功兑换次数，和 RemainingLimit 同步变化
	RedemptionCount int64
	Ctime           int64
	Utime           int64
}

func (v Voucher) Expired(now time.Time) bool {
	return now.UnixMilli() >= v.ExpiryDate
}

// Available 上架、未过期并且还有库存
func (v Voucher) Available(now time.Time) bool {
	return v.Status == StatusOnShelf && !v.Expired(now) && v.RemainingLimit > 0
}

type Status uint8

const (
	// StatusOffShelf 下架
	StatusOffShelf Status = 1
	// StatusOnShelf 上架
	StatusOnShelf Status = 2
)

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

type Query struct {
	// 为空或者 all 表示不按分类过滤
	Category  string
	MinPoints int64
	MaxPoints int64
	Offset    int
	Limit     int
	// newest/points_asc/points_desc/popular，非法值回落到 newest
	Sort string
}

type Analytics struct {
	TopRedeemed   []Voucher
	LowRedeemed   []Voucher
	CategoryStats []CategoryStat
	Recent        []Voucher
}

type CategoryStat struct {
	Category         string
	TotalVouchers    int64
	TotalRedemptions int64
	AvgPointsCost    float64
}
