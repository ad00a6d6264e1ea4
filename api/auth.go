package api

import (
	"context"

	"github.com/yuesf/travel/auth"
	"github.com/yuesf/travel/client"
)

// AuthService 认证接口，使用微信 session 机制
type AuthService struct {
	client *client.Client
	mgr    *auth.Manager
}

// WechatLogin 微信登录。
// 成功后持久化 sessionId 和用户信息，后续请求自动携带
func (s *AuthService) WechatLogin(ctx context.Context, code string) (*LoginResult, error) {
	var result LoginResult
	err := s.client.Do(ctx, client.RequestConfig{
		Path:     "/miniprogram/auth/login",
		Method:   "POST",
		Body:     LoginRequest{Code: code},
		NeedAuth: client.Bool(false),
	}, &result)
	if err != nil {
		return nil, err
	}

	if err := s.mgr.SetToken(result.SessionID); err != nil {
		return nil, err
	}
	if result.UserInfo != nil {
		if err := s.mgr.SetUserInfo(result.UserInfo); err != nil {
			return nil, err
		}
	}
	return &result, nil
}

// RefreshSession 刷新 session，换取新的 sessionId
func (s *AuthService) RefreshSession(ctx context.Context, code string) (*LoginResult, error) {
	var result LoginResult
	err := s.client.Do(ctx, client.RequestConfig{
		Path:     "/miniprogram/auth/refresh",
		Method:   "POST",
		Body:     LoginRequest{Code: code},
		NeedAuth: client.Bool(false),
	}, &result)
	if err != nil {
		return nil, err
	}

	if err := s.mgr.SetToken(result.SessionID); err != nil {
		return nil, err
	}
	return &result, nil
}

// Logout 登出。无论服务端结果如何，本地会话都会清除
func (s *AuthService) Logout(ctx context.Context) error {
	err := s.client.Post(ctx, "/miniprogram/auth/logout", nil, nil)
	s.mgr.Logout()
	return err
}

// Info 获取当前登录用户信息
func (s *AuthService) Info(ctx context.Context) (*auth.UserInfo, error) {
	var info auth.UserInfo
	if err := s.client.Get(ctx, "/miniprogram/auth/info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// UpdateInfo 更新用户信息并刷新本地缓存
func (s *AuthService) UpdateInfo(ctx context.Context, info *auth.UserInfo) error {
	if err := s.client.Put(ctx, "/miniprogram/auth/info", info, nil); err != nil {
		return err
	}
	return s.mgr.SetUserInfo(info)
}
