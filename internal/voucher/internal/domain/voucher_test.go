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

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVoucher_Available(t *testing.T) {
	t.Parallel()
	now := time.UnixMilli(1700000000000)
	testCases := []struct {
		name    string
		voucher Voucher
		want    bool
	}{
		{
			name: "上架_未过期_有库存",
			voucher: Voucher{
				Status:         StatusOnShelf,
				ExpiryDate:     now.UnixMilli() + 1000,
				RemainingLimit: 1,
			},
			want: true,
		},
		{
			name: "已下架",
			voucher: Voucher{
				Status:         StatusOffShelf,
				ExpiryDate:     now.UnixMilli() + 1000,
				RemainingLimit: 1,
			},
			want: false,
		},
		{
			name: "已过期",
			voucher: Voucher{
				Status:         StatusOnShelf,
				ExpiryDate:     now.UnixMilli() - 1000,
				RemainingLimit: 1,
			},
			want: false,
		},
		{
			name: "恰好到过期时刻",
			voucher: Voucher{
				Status:         StatusOnShelf,
				ExpiryDate:     now.UnixMilli(),
				RemainingLimit: 1,
			},
			want: false,
		},
		{
			name: "库存耗尽",
			voucher: Voucher{
				Status:         StatusOnShelf,
				ExpiryDate:     now.UnixMilli() + 1000,
				RemainingLimit: 0,
			},
			want: false,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.voucher.Available(now))
		})
	}
}

func TestVoucher_Expired(t *testing.T) {
	t.Parallel()
	now := time.UnixMilli(1700000000000)
	assert.True(t, Voucher{ExpiryDate: now.UnixMilli()}.Expired(now))
	assert.True(t, Voucher{ExpiryDate: now.UnixMilli() - 1}.Expired(now))
	assert.False(t, Voucher{ExpiryDate: now.UnixMilli() + 1}.Expired(now))
}
