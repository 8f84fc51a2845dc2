package ioc

import (
	"github.com/ecodeclub/pointsmall/internal/user"
	"github.com/ecodeclub/pointsmall/internal/voucher"
)

func initConsumers(um *user.Module, vm *voucher.Module) []Consumer {
	return []Consumer{um.C, vm.C}
}
