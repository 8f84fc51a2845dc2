package errs

var (
	SystemError        = ErrorCode{Code: 503001, Msg: "系统错误"}
	VoucherNotFound    = ErrorCode{Code: 503002, Msg: "兑换券不存在"}
	VoucherUnavailable = ErrorCode{Code: 503003, Msg: "兑换券不可兑换"}
	InsufficientPoints = ErrorCode{Code: 503004, Msg: "积分不足"}
	UserLimitReached   = ErrorCode{Code: 503005, Msg: "已达到兑换上限"}
	// ConcurrentConflict 并发冲突，客户端可以重试
	ConcurrentConflict = ErrorCode{Code: 503006, Msg: "兑换人数过多，请稍后重试"}
	UserNotFound       = ErrorCode{Code: 503007, Msg: "用户不存在"}
	UserInactive       = ErrorCode{Code: 503008, Msg: "账号已被停用"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
