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

package voucher

import (
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/pointsmall/internal/voucher/internal/event"
	"github.com/ecodeclub/pointsmall/internal/voucher/internal/repository/cache"
	"github.com/ecodeclub/pointsmall/internal/voucher/internal/repository/dao"
	"github.com/ecodeclub/pointsmall/internal/voucher/internal/service"
	"github.com/ego-component/egorm"
)

// 详情和统计缓存的过期时间，缓存是兜底，主动清理为主
const cacheExpiration = 10 * time.Minute

func initCache(ec ecache.Cache) cache.VoucherCache {
	return cache.NewVoucherECache(ec, cacheExpiration)
}

func initRedemptionEventConsumer(svc service.VoucherService, q mq.MQ) *event.RedemptionEventConsumer {
	c, err := event.NewRedemptionEventConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	return c
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.VoucherDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewVoucherGORMDAO(db)
}
