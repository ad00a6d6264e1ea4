package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTExpired 判断 Bearer JWT 是否已过本地携带的过期时间。
// 只解析不校验签名：签名校验是服务端的事，这里只做免网络的快速判断。
// 非 JWT 或不带 exp 的凭证无法本地判断，返回 false 交给服务端验证
func JWTExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(time.Now())
}
