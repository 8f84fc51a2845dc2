package redemption

import (
	"github.com/ecodeclub/pointsmall/internal/redemption/internal/domain"
	"github.com/ecodeclub/pointsmall/internal/redemption/internal/service"
	"github.com/ecodeclub/pointsmall/internal/redemption/internal/web"
)

type Redemption = domain.Redemption
type RedeemResult = domain.RedeemResult
type Stats = domain.Stats
type Service = service.RedemptionService
type Handler = web.Handler

var (
	ErrVoucherNotFound    = service.ErrVoucherNotFound
	ErrUserNotFound       = service.ErrUserNotFound
	ErrUserInactive       = service.ErrUserInactive
	ErrVoucherUnavailable = service.ErrVoucherUnavailable
	ErrInsufficientPoints = service.ErrInsufficientPoints
	ErrUserLimitReached   = service.ErrUserLimitReached
	ErrConcurrentConflict = service.ErrConcurrentConflict
)
