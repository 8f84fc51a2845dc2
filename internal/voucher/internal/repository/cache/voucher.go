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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/pointsmall/internal/voucher/internal/domain"
)

type VoucherCache interface {
	GetDetail(ctx context.Context, id int64) (domain.Voucher, error)
	SetDetail(ctx context.Context, v domain.Voucher) error
	DelDetail(ctx context.Context, id int64) error
	GetAnalytics(ctx context.Context) (domain.Analytics, error)
	SetAnalytics(ctx context.Context, a domain.Analytics) error
	DelAnalytics(ctx context.Context) error
}

type VoucherECache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewVoucherECache(ec ecache.Cache, expiration time.Duration) VoucherCache {
	return &VoucherECache{
		ec: &ecache.NamespaceCache{
			Namespace: "voucher:",
			C:         ec,
		},
		expiration: expiration,
	}
}

func (c *VoucherECache) GetDetail(ctx context.Context, id int64) (domain.Voucher, error) {
	var res domain.Voucher
	err := c.ec.Get(ctx, c.detailKey(id)).JSONScan(&res)
	return res, err
}

func (c *VoucherECache) SetDetail(ctx context.Context, v domain.Voucher) error {
	val, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.ec.Set(ctx, c.detailKey(v.Id), val, c.expiration)
}

func (c *VoucherECache) DelDetail(ctx context.Context, id int64) error {
	_, err := c.ec.Delete(ctx, c.detailKey(id))
	return err
}

func (c *VoucherECache) GetAnalytics(ctx context.Context) (domain.Analytics, error) {
	var res domain.Analytics
	err := c.ec.Get(ctx, c.analyticsKey()).JSONScan(&res)
	return res, err
}

func (c *VoucherECache) SetAnalytics(ctx context.Context, a domain.Analytics) error {
	val, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return c.ec.Set(ctx, c.analyticsKey(), val, c.expiration)
}

func (c *VoucherECache) DelAnalytics(ctx context.Context) error {
	_, err := c.ec.Delete(ctx, c.analyticsKey())
	return err
}

func (c *VoucherECache) detailKey(id int64) string {
	return fmt.Sprintf("detail:%d", id)
}

func (c *VoucherECache) analyticsKey() string {
	return "analytics"
}
