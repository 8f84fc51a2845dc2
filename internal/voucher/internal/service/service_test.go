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

	"github.com/ecodeclub/pointsmall/internal/voucher/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestVoucherService_validate(t *testing.T) {
	t.Parallel()
	svc := &voucherService{}
	future := time.Now().Add(time.Hour).UnixMilli()
	valid := domain.Voucher{
		Title:      "星巴克中杯拿铁",
		Category:   "food",
		PointsCost: 500,
		TotalLimit: 100,
		UserLimit:  2,
		ExpiryDate: future,
	}
	testCases := []struct {
		name    string
		voucher func() domain.Voucher
		wantErr error
	}{
		{
			name:    "合法",
			voucher: func() domain.Voucher { return valid },
		},
		{
			name: "缺标题",
			voucher: func() domain.Voucher {
				v := valid
				v.Title = ""
				return v
			},
			wantErr: ErrInvalidVoucher,
		},
		{
			name: "缺分类",
			voucher: func() domain.Voucher {
				v := valid
				v.Category = ""
				return v
			},
			wantErr: ErrInvalidVoucher,
		},
		{
			name: "积分非正数",
			voucher: func() domain.Voucher {
				v := valid
				v.PointsCost = 0
				return v
			},
			wantErr: ErrInvalidVoucher,
		},
		{
			name: "创建时总库存非正数",
			voucher: func() domain.Voucher {
				v := valid
				v.TotalLimit = 0
				return v
			},
			wantErr: ErrInvalidVoucher,
		},
		{
			name: "更新时可以不传总库存",
			voucher: func() domain.Voucher {
				v := valid
				v.Id = 123
				v.TotalLimit = 0
				return v
			},
		},
		{
			name: "单用户限额非正数",
			voucher: func() domain.Voucher {
				v := valid
				v.UserLimit = 0
				return v
			},
			wantErr: ErrInvalidVoucher,
		},
		{
			name: "过期时间在当前时刻之前",
			voucher: func() domain.Voucher {
				v := valid
				v.ExpiryDate = time.Now().Add(-time.Hour).UnixMilli()
				return v
			},
			wantErr: ErrInvalidVoucher,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := svc.validate(tc.voucher())
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
