package errs

var (
	SystemError       = ErrorCode{Code: 501001, Msg: "系统错误"}
	InvalidCredential = ErrorCode{Code: 501002, Msg: "账号或者密码不正确"}
	UserInactive      = ErrorCode{Code: 501003, Msg: "账号已被停用"}
	DuplicateEmail    = ErrorCode{Code: 501004, Msg: "邮箱已被占用"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
