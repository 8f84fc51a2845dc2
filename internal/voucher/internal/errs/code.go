package errs

var (
	SystemError     = ErrorCode{Code: 502001, Msg: "系统错误"}
	VoucherNotFound = ErrorCode{Code: 502002, Msg: "兑换券不存在"}
	InvalidVoucher  = ErrorCode{Code: 502003, Msg: "兑换券数据非法"}
	TotalLimitFixed = ErrorCode{Code: 502004, Msg: "总库存不允许修改"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
