package auth

import "net/http"

// 凭证请求头
const (
	HeaderAuthorization = "Authorization"
	HeaderSessionID     = "X-Session-Id"
)

// Scheme 凭证的请求头携带方式。
// admin 后台和小程序对接的是同一族后端，但凭证格式各自演进：
// 两端按两套并行的认证方案处理，不假定 token 格式互通
type Scheme interface {
	// Apply 将凭证写入请求头。token 为空时不做任何修改
	Apply(h http.Header, token string)

	// Name 方案名，用于日志
	Name() string
}

// BearerScheme admin 后台的 Bearer Token 方案
type BearerScheme struct{}

// Apply 实现 Scheme 接口
func (BearerScheme) Apply(h http.Header, token string) {
	if token == "" {
		return
	}
	h.Set(HeaderAuthorization, "Bearer "+token)
}

// Name 实现 Scheme 接口
func (BearerScheme) Name() string { return "bearer" }

// SessionScheme 小程序的 Session ID 方案
type SessionScheme struct{}

// Apply 实现 Scheme 接口
func (SessionScheme) Apply(h http.Header, token string) {
	if token == "" {
		return
	}
	h.Set(HeaderSessionID, token)
}

// Name 实现 Scheme 接口
func (SessionScheme) Name() string { return "session" }
