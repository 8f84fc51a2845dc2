package ai

import (
	"github.com/ecodeclub/pointsmall/internal/ai/internal/web"
)

type Module struct {
	Svc Service
	Hdl *web.Handler
}
