package ioc

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/pointsmall/internal/redemption"
	"github.com/ecodeclub/pointsmall/internal/user"
	"github.com/ecodeclub/pointsmall/internal/voucher"
	"github.com/ego-component/egorm"
)

func InitRedemptionModule(db *egorm.Component, q mq.MQ,
	um *user.Module, vm *voucher.Module) *redemption.Module {
	return redemption.InitModule(db, q, um.Svc, vm.Svc)
}
