package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/pointsmall/internal/user/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidCredentialResult = ginx.Result{
		Code: errs.InvalidCredential.Code,
		Msg:  errs.InvalidCredential.Msg,
	}
	userInactiveResult = ginx.Result{
		Code: errs.UserInactive.Code,
		Msg:  errs.UserInactive.Msg,
	}
	duplicateEmailResult = ginx.Result{
		Code: errs.DuplicateEmail.Code,
		Msg:  errs.DuplicateEmail.Msg,
	}
)
