package redemption

import (
	"github.com/ecodeclub/pointsmall/internal/redemption/internal/web"
)

type Module struct {
	Svc Service
	Hdl *web.Handler
}
