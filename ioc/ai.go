package ioc

import (
	"github.com/ecodeclub/pointsmall/internal/ai"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

func InitAIModule(db *egorm.Component) *ai.Module {
	var cfg ai.Config
	err := econf.UnmarshalKey("ai", &cfg)
	if err != nil {
		panic(err)
	}
	return ai.InitModule(db, cfg)
}
