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

package redemption

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/pointsmall/internal/redemption/internal/repository"
	"github.com/ecodeclub/pointsmall/internal/redemption/internal/service"
	"github.com/ecodeclub/pointsmall/internal/redemption/internal/web"
	"github.com/ecodeclub/pointsmall/internal/user"
	"github.com/ecodeclub/pointsmall/internal/voucher"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ, userSvc user.Service, voucherSvc voucher.Service) *Module {
	wire.Build(
		InitTablesOnce,
		repository.NewRedemptionRepository,
		initRedemptionEventProducer,
		service.NewRedemptionService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
