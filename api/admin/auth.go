package admin

import (
	"context"

	"github.com/yuesf/travel/auth"
	"github.com/yuesf/travel/client"
)

// AuthService 管理员认证接口
type AuthService struct {
	client *client.Client
	mgr    *auth.Manager
}

// Login 管理员登录，成功后持久化 JWT
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var result LoginResult
	err := s.client.Do(ctx, client.RequestConfig{
		Path:     "/admin/auth/login",
		Method:   "POST",
		Body:     LoginRequest{Username: username, Password: password},
		NeedAuth: client.Bool(false),
	}, &result)
	if err != nil {
		return nil, err
	}

	if err := s.mgr.SetToken(result.Token); err != nil {
		return nil, err
	}
	return &result, nil
}

// Logout 登出。无论服务端结果如何，本地凭证都会清除
func (s *AuthService) Logout(ctx context.Context) error {
	err := s.client.Post(ctx, "/admin/auth/logout", nil, nil)
	s.mgr.Logout()
	return err
}
