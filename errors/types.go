package errors

// 客户端错误分类。错误码与后端信封业务码保持同域，
// 598/599 为客户端自用的传输类错误码（不会出现在后端响应中）。
const (
	CodeUnauthorized = 401
	CodeForbidden    = 403
	CodeNotFound     = 404
	CodeServerError  = 500
	// CodeTimeout 请求超时（客户端判定）
	CodeTimeout = 598
	// CodeUnreachable 网络不可达（客户端判定）
	CodeUnreachable = 599
)

// 统一的用户可见错误文案
const (
	MsgUnauthorized   = "未授权，请先登录"
	MsgSessionExpired = "登录已过期，请重新登录"
	MsgForbidden      = "无权限访问"
	MsgNotFound       = "请求的资源不存在"
	MsgServerError    = "服务器内部错误"
	MsgTimeout        = "请求超时，请稍后重试"
	MsgUnreachable    = "网络连接失败，请检查网络"
	MsgRequestFailed  = "请求失败"
)

// metadataHandled 标记该错误已在请求层处理过（已触发登录跳转等副作用），
// 上层 UI 不应重复弹出提示
const metadataHandled = "handled"

// Unauthorized 本地未登录：没有任何凭证，未发起网络请求
func Unauthorized() *Error {
	return New(CodeUnauthorized, MsgUnauthorized)
}

// SessionExpired 本地有凭证但服务端/缓存判定会话已失效
func SessionExpired() *Error {
	return New(CodeUnauthorized, MsgSessionExpired)
}

// Forbidden 已认证但无权限，不触发登出
func Forbidden() *Error {
	return New(CodeForbidden, MsgForbidden)
}

// NotFound 资源不存在
func NotFound() *Error {
	return New(CodeNotFound, MsgNotFound)
}

// ServerError 服务端内部错误
func ServerError() *Error {
	return New(CodeServerError, MsgServerError)
}

// Timeout 请求超时，可重试
func Timeout(cause error) *Error {
	return New(CodeTimeout, MsgTimeout).WithCause(cause)
}

// Unreachable 网络不可达，可重试
func Unreachable(cause error) *Error {
	return New(CodeUnreachable, MsgUnreachable).WithCause(cause)
}

// RequestFailed 后端返回的业务错误，message 为空时使用默认文案
func RequestFailed(code int, message string) *Error {
	if message == "" {
		message = MsgRequestFailed
	}
	return New(code, "%s", message)
}

// Temporary 判断错误是否为可重试的传输类错误。
// 业务错误（信封非 200 码、4xx/5xx）不可重试
func Temporary(err error) bool {
	switch Code(err) {
	case CodeTimeout, CodeUnreachable:
		return true
	}
	return false
}

// Handled 标记错误已在请求层处理完副作用
func Handled(e *Error) *Error {
	return e.WithMetadata(map[string]string{metadataHandled: "true"})
}

// IsHandled 判断错误是否已被请求层处理，
// 调用方据此跳过重复的错误提示
func IsHandled(err error) bool {
	e := FromError(err)
	if e == nil {
		return false
	}
	return e.Metadata[metadataHandled] == "true"
}
