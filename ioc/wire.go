//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/pointsmall/internal/ai"
	"github.com/ecodeclub/pointsmall/internal/redemption"
	"github.com/ecodeclub/pointsmall/internal/user"
	"github.com/ecodeclub/pointsmall/internal/voucher"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitMQ,
		InitSession,
		InitUserModule,
		voucher.InitModule,
		InitRedemptionModule,
		InitAIModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		wire.FieldsOf(new(*voucher.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*redemption.Module), "Hdl"),
		wire.FieldsOf(new(*ai.Module), "Hdl"),
		initGinxServer,
		InitAdminServer,
		initCronJobs,
		initConsumers)
	return new(App), nil
}
