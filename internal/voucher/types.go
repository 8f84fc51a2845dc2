package voucher

import (
	"github.com/ecodeclub/pointsmall/internal/voucher/internal/domain"
	"github.com/ecodeclub/pointsmall/internal/voucher/internal/service"
	"github.com/ecodeclub/pointsmall/internal/voucher/internal/web"
)

type Voucher = domain.Voucher
type Status = domain.Status
type Query = domain.Query
type Service = service.VoucherService
type Handler = web.Handler
type AdminHandler = web.AdminHandler

const (
	StatusOffShelf = domain.StatusOffShelf
	StatusOnShelf  = domain.StatusOnShelf
)

var (
	ErrVoucherNotFound = service.ErrVoucherNotFound
	ErrStockChanged    = service.ErrStockChanged
)
