package api

import (
	"context"
	"fmt"

	"github.com/yuesf/travel/client"
)

// AddressService 收货地址接口
type AddressService struct {
	client *client.Client
}

// List 获取地址列表
func (s *AddressService) List(ctx context.Context) ([]Address, error) {
	var list []Address
	if err := s.client.Get(ctx, "/miniprogram/addresses", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Get 获取单个地址
func (s *AddressService) Get(ctx context.Context, id int64) (*Address, error) {
	var addr Address
	if err := s.client.Get(ctx, fmt.Sprintf("/miniprogram/addresses/%d", id), nil, &addr); err != nil {
		return nil, err
	}
	return &addr, nil
}

// Create 新建地址
func (s *AddressService) Create(ctx context.Context, addr Address) (*Address, error) {
	var created Address
	if err := s.client.Post(ctx, "/miniprogram/addresses", addr, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update 更新地址
func (s *AddressService) Update(ctx context.Context, id int64, addr Address) error {
	return s.client.Put(ctx, fmt.Sprintf("/miniprogram/addresses/%d", id), addr, nil)
}

// Delete 删除地址
func (s *AddressService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/miniprogram/addresses/%d", id), nil)
}

// SetDefault 设为默认地址
func (s *AddressService) SetDefault(ctx context.Context, id int64) error {
	return s.client.Put(ctx, fmt.Sprintf("/miniprogram/addresses/%d/default", id), nil, nil)
}
