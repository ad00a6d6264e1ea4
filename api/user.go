package api

import (
	"context"

	"github.com/yuesf/travel/auth"
	"github.com/yuesf/travel/client"
)

// UserService 用户中心接口
type UserService struct {
	client *client.Client
}

// Info 获取用户信息
func (s *UserService) Info(ctx context.Context) (*auth.UserInfo, error) {
	var info auth.UserInfo
	if err := s.client.Get(ctx, "/miniprogram/user/info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// UpdateInfo 更新用户信息
func (s *UserService) UpdateInfo(ctx context.Context, info *auth.UserInfo) error {
	return s.client.Put(ctx, "/miniprogram/user/info", info, nil)
}
