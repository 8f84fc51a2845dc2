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

//go:build wireinject

package voucher

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/pointsmall/internal/voucher/internal/job"
	"github.com/ecodeclub/pointsmall/internal/voucher/internal/repository"
	"github.com/ecodeclub/pointsmall/internal/voucher/internal/service"
	"github.com/ecodeclub/pointsmall/internal/voucher/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ) *Module {
	wire.Build(
		InitTablesOnce,
		initCache,
		repository.NewVoucherRepository,
		service.NewVoucherService,
		initRedemptionEventConsumer,
		job.NewDeactivateExpiredVouchersJob,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
