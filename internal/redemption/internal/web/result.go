package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/pointsmall/internal/redemption/internal/errs"
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
	voucherUnavailableResult = ginx.Result{
		Code: errs.VoucherUnavailable.Code,
		Msg:  errs.VoucherUnavailable.Msg,
	}
	insufficientPointsResult = ginx.Result{
		Code: errs.InsufficientPoints.Code,
		Msg:  errs.InsufficientPoints.Msg,
	}
	userLimitReachedResult = ginx.Result{
		Code: errs.UserLimitReached.Code,
		Msg:  errs.UserLimitReached.Msg,
	}
	concurrentConflictResult = ginx.Result{
		Code: errs.ConcurrentConflict.Code,
		Msg:  errs.ConcurrentConflict.Msg,
	}
	userNotFoundResult = ginx.Result{
		Code: errs.UserNotFound.Code,
		Msg:  errs.UserNotFound.Msg,
	}
	userInactiveResult = ginx.Result{
		Code: errs.UserInactive.Code,
		Msg:  errs.UserInactive.Msg,
	}
)
