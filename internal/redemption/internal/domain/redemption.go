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

type Redemption struct {
	Id int64
	// SN 对外展示的兑换流水号
	SN        string
	Uid       int64
	VoucherId int64
	// 冗余快照，券下架或者改名之后历史记录不受影响
	VoucherTitle    string
	VoucherCategory string
	PointsUsed      int64
	// 兑换时刻，毫秒时间戳
	RedeemedAt int64
}

type RedeemResult struct {
	SN              string
	VoucherTitle    string
	PointsUsed      int64
	RemainingPoints int64
}

// Stats 单个用户的兑换统计
type Stats struct {
	TotalRedemptions int64
	TotalPointsUsed  int64
	CategoryCounts   []CategoryCount
}

type CategoryCount struct {
	Category string
	Count    int64
}
