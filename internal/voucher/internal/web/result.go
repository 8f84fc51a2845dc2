package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/pointsmall/internal/voucher/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	voucherNotFoundResult = ginx.Result{
		Code: errs.VoucherNotFound.Code,
		Msg:  errs.VoucherNotFound.Msg,
	}
	invalidVoucherResult = ginx.Result{
		Code: errs.InvalidVoucher.Code,
		Msg:  errs.InvalidVoucher.Msg,
	}
	totalLimitFixedResult = ginx.Result{
		Code: errs.TotalLimitFixed.Code,
		Msg:  errs.TotalLimitFixed.Msg,
	}
)
