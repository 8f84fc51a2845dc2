package errs

var (
	SystemError   = ErrorCode{Code: 504001, Msg: "系统错误"}
	EmptyQuestion = ErrorCode{Code: 504002, Msg: "提问内容不能为空"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
