package voucher

import (
	"github.com/ecodeclub/pointsmall/internal/voucher/internal/event"
	"github.com/ecodeclub/pointsmall/internal/voucher/internal/job"
	"github.com/ecodeclub/pointsmall/internal/voucher/internal/web"
)

type Module struct {
	Svc      Service
	Hdl      *web.Handler
	AdminHdl *web.AdminHandler
	ExpJob   *job.DeactivateExpiredVouchersJob
	C        *event.RedemptionEventConsumer
}
