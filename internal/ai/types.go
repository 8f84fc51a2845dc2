package ai

import (
	"github.com/ecodeclub/pointsmall/internal/ai/internal/service"
	"github.com/ecodeclub/pointsmall/internal/ai/internal/web"
)

type Service = service.ChatService
type Handler = web.Handler
