package user

import (
	"github.com/ecodeclub/pointsmall/internal/user/internal/event"
	"github.com/ecodeclub/pointsmall/internal/user/internal/web"
)

type Module struct {
	Svc Service
	Hdl *web.Handler
	C   *event.WelcomePointsConsumer
}
