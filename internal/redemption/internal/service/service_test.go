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

package service

import (
	"testing"
	"time"

	"github.com/ecodeclub/pointsmall/internal/user"
	"github.com/ecodeclub/pointsmall/internal/voucher"
	"github.com/stretchr/testify/assert"
)

func TestRedemptionService_checkPreconditions(t *testing.T) {
	t.Parallel()
	svc := &redemptionService{}
	now := time.UnixMilli(1700000000000)
	availableVoucher := voucher.Voucher{
		Status:         voucher.StatusOnShelf,
		ExpiryDate:     now.UnixMilli() + 3600_000,
		RemainingLimit: 10,
		PointsCost:     500,
		UserLimit:      2,
	}
	richUser := user.User{Id: 1, Points: 10000, Status: user.StatusActive}
	testCases := []struct {
		name     string
		user     user.User
		voucher  func() voucher.Voucher
		redeemed int64
		wantErr  error
	}{
		{
			name:    "一切正常",
			user:    richUser,
			voucher: func() voucher.Voucher { return availableVoucher },
		},
		{
			name: "券已下架",
			user: richUser,
			voucher: func() voucher.Voucher {
				v := availableVoucher
				v.Status = voucher.StatusOffShelf
				return v
			},
			wantErr: ErrVoucherUnavailable,
		},
		{
			name: "券已过期",
			user: richUser,
			voucher: func() voucher.Voucher {
				v := availableVoucher
				v.ExpiryDate = now.UnixMilli()
				return v
			},
			wantErr: ErrVoucherUnavailable,
		},
		{
			name: "库存耗尽",
			user: richUser,
			voucher: func() voucher.Voucher {
				v := availableVoucher
				v.RemainingLimit = 0
				return v
			},
			wantErr: ErrVoucherUnavailable,
		},
		{
			name:    "账号已停用",
			user:    user.User{Id: 1, Points: 10000, Status: user.StatusInactive},
			voucher: func() voucher.Voucher { return availableVoucher },
			wantErr: ErrUserInactive,
		},
		{
			name: "停用优先于券不可兑换",
			user: user.User{Id: 1, Points: 10000, Status: user.StatusInactive},
			voucher: func() voucher.Voucher {
				v := availableVoucher
				v.Status = voucher.StatusOffShelf
				return v
			},
			wantErr: ErrUserInactive,
		},
		{
			name:    "积分不足",
			user:    user.User{Id: 1, Points: 499, Status: user.StatusActive},
			voucher: func() voucher.Voucher { return availableVoucher },
			wantErr: ErrInsufficientPoints,
		},
		{
			name:    "积分恰好够",
			user:    user.User{Id: 1, Points: 500, Status: user.StatusActive},
			voucher: func() voucher.Voucher { return availableVoucher },
		},
		{
			name:     "达到单用户上限",
			user:     richUser,
			voucher:  func() voucher.Voucher { return availableVoucher },
			redeemed: 2,
			wantErr:  ErrUserLimitReached,
		},
		{
			name: "下架优先于积分不足",
			user: user.User{Id: 1, Points: 0, Status: user.StatusActive},
			voucher: func() voucher.Voucher {
				v := availableVoucher
				v.Status = voucher.StatusOffShelf
				return v
			},
			wantErr: ErrVoucherUnavailable,
		},
		{
			name:     "积分不足优先于兑换上限",
			user:     user.User{Id: 1, Points: 0, Status: user.StatusActive},
			voucher:  func() voucher.Voucher { return availableVoucher },
			redeemed: 2,
			wantErr:  ErrInsufficientPoints,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := svc.checkPreconditions(tc.user, tc.voucher(), tc.redeemed, now)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
